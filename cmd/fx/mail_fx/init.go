package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"limetrip/internal/services"
)

var Module = fx.Provide(
	provideMailService)

func provideMailService() (services.IMailService, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP_HOST not set, booking confirmation mail disabled")
		return services.NewNoopMailService(), nil
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: os.Getenv("SMTP_FROM_NAME"),
		UseSSL:   port == 465,
		AppName:  "LimeTrip",
	})
}
