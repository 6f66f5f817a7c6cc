package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"time"
)

type IMailService interface {
	SendBookingConfirmation(to, guestName, stayName, checkIn, checkOut string) error
}

// SMTPConfig holds the SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // 587 (STARTTLS) or 465 (SMTPS)
	Username string
	Password string
	From     string // envelope from, e.g. "no-reply@limetrip.app"
	FromName string
	UseSSL   bool // true for SMTPS 465, false for STARTTLS 587

	AppName string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	tpl := template.Must(template.New("bookingHTML").Parse(bookingHTMLTemplate))
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: tpl,
	}, nil
}

type bookingMailData struct {
	GuestName string
	StayName  string
	CheckIn   string
	CheckOut  string
	AppName   string
	Year      int
}

func (s *smtpMailService) SendBookingConfirmation(to, guestName, stayName, checkIn, checkOut string) error {
	var body bytes.Buffer
	err := s.htmlTpl.Execute(&body, bookingMailData{
		GuestName: guestName,
		StayName:  stayName,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your %s booking is confirmed", s.cfg.AppName)
	return s.send(to, subject, body.String())
}

func (s *smtpMailService) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if !s.cfg.UseSSL {
		return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
	}

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return err
	}
	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg.Bytes()); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

const bookingHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Booking confirmed</title>
</head>
<body style="margin:0;padding:24px;background:#f0fdfa;font-family:-apple-system,Segoe UI,Roboto,Helvetica,Arial,sans-serif;color:#134e4a;">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px;border:1px solid #ccfbf1;">
    <h2 style="margin-top:0;color:#0f766e;">Booking confirmed</h2>
    <p>Hi {{.GuestName}},</p>
    <p>Your stay at <strong>{{.StayName}}</strong> is booked.</p>
    <table style="border-collapse:collapse;margin:16px 0;">
      <tr><td style="padding:4px 16px 4px 0;color:#64748b;">Check-in</td><td>{{.CheckIn}}</td></tr>
      <tr><td style="padding:4px 16px 4px 0;color:#64748b;">Check-out</td><td>{{.CheckOut}}</td></tr>
    </table>
    <p>See you on the island!</p>
    <p style="color:#94a3b8;font-size:12px;margin-bottom:0;">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

// noopMailService is wired when SMTP is not configured.
type noopMailService struct{}

func NewNoopMailService() IMailService {
	return &noopMailService{}
}

func (n *noopMailService) SendBookingConfirmation(to, guestName, stayName, checkIn, checkOut string) error {
	log.Printf("Mail disabled, skipping booking confirmation to %s", to)
	return nil
}
