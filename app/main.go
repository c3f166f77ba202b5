package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"raktasewa/config"
	"raktasewa/domain"
	"raktasewa/services/donor/delivery"
	"raktasewa/services/donor/repository"
	"raktasewa/services/donor/usecase"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on process environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetCorsOrigins(),
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	db, err := config.BootDB(context.Background())
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	donorRepo := repository.NewDonorRepository(db)
	transport := pickTransport()

	donorUC := usecase.NewDonorUseCase(donorRepo, config.GetPhonePolicy(), time.Second*10)
	contactUC := usecase.NewContactUseCase(donorRepo, transport, time.Second*15)

	delivery.NewDonorDelivery(app, donorUC)
	delivery.NewContactDelivery(app, contactUC)
	delivery.NewHealthDelivery(app, db)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}

// pickTransport selects the relay strategy once at startup: Twilio when
// credentials are present, otherwise WhatsApp when enabled, otherwise
// deep links only.
func pickTransport() domain.MessageTransport {
	if config.TwilioConfigured() {
		client, err := config.InitTwilio()
		if err != nil {
			log.Fatalf("Failed to initialize Twilio: %v", err)
		}
		from, err := config.GetTwilioFrom()
		if err != nil {
			log.Fatalf("Failed to initialize Twilio: %v", err)
		}
		log.Info("Twilio client ready")
		return repository.NewTwilioTransport(client, *from)
	}

	if config.WhatsappConfigured() {
		meow, err := config.InitMeow()
		if err != nil {
			log.Fatalf("Failed to initialize WhatsApp: %v", err)
		}
		log.Info("WhatsApp relay ready")
		return repository.NewWhatsappTransport(meow)
	}

	log.Info("No SMS provider configured, will return deep links only")
	return repository.NewDeepLinkTransport(log)
}
