package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"limetrip/cmd/fx/account_fx"
	"limetrip/cmd/fx/assistant_fx"
	"limetrip/cmd/fx/catalog_fx"
	"limetrip/cmd/fx/db_fx"
	"limetrip/cmd/fx/mail_fx"
	"limetrip/cmd/fx/onboarding_fx"
	"limetrip/internal/api/controllers"
	"limetrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		assistant_fx.Module,
		onboarding_fx.Module,
		catalog_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	assistantController *controllers.AssistantController,
	onboardingController *controllers.OnboardingController,
	catalogController *controllers.CatalogController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, assistantController, onboardingController, catalogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	assistantController *controllers.AssistantController,
	onboardingController *controllers.OnboardingController,
	catalogController *controllers.CatalogController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	r.POST("/ask", middleware.JWTAuthMiddleware(), assistantController.Ask)

	onboarding := r.Group("/api/tourism-onboarding")
	onboarding.Use(middleware.JWTAuthMiddleware())
	onboarding.GET("/status", onboardingController.Status)
	onboarding.GET("/trip", onboardingController.Trip)
	onboarding.POST("/complete", onboardingController.Complete)
	onboarding.POST("/book-accommodation", onboardingController.BookAccommodation)
	onboarding.POST("/book-activity", onboardingController.BookActivity)

	activities := r.Group("/activities")
	activities.GET("", catalogController.ListActivities)
	activities.GET("/:id", catalogController.GetActivity)

	r.GET("/interests", catalogController.ListInterests)
}
