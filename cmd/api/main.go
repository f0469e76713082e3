package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/lead-exchange/internal/infra/database"
	"github.com/xavierca1/lead-exchange/internal/infra/http/handlers"
	"github.com/xavierca1/lead-exchange/internal/infra/http/middleware"
	"github.com/xavierca1/lead-exchange/internal/infra/integration/stripe"
	"github.com/xavierca1/lead-exchange/internal/infra/mail"
	"github.com/xavierca1/lead-exchange/internal/infra/queue"
	"github.com/xavierca1/lead-exchange/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatalf("rabbitmq connection failed: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	brokerRepo := database.NewBrokerRepository(db)
	unlockRepo := database.NewUnlockRepository(db)
	statusRepo := database.NewLeadStatusRepository(db)

	// Gateways and adapters
	gateway := stripe.NewClient(os.Getenv("STRIPE_SECRET_KEY"), os.Getenv("STRIPE_API_URL"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	// Worker: consumes sold-lead events and emails the winning broker.
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	appBaseURL := os.Getenv("APP_BASE_URL")
	if appBaseURL == "" {
		appBaseURL = "http://localhost:3000"
	}

	// Use cases
	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, mailSender)
	startCheckoutUC := usecase.NewStartCheckoutUseCase(leadRepo, brokerRepo, gateway, appBaseURL, time.Now)
	finalizeUC := usecase.NewFinalizeUnlockUseCase(unlockRepo, leadRepo, brokerRepo, producer, time.Now)
	saveProfileUC := usecase.NewSaveBrokerProfileUseCase(brokerRepo)
	updateStatusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, statusRepo)

	// Handlers
	leadHandler := handlers.NewLeadHandler(submitLeadUC)
	brokerHandler := handlers.NewBrokerHandler(brokerRepo, leadRepo, statusRepo, saveProfileUC, updateStatusUC)
	checkoutHandler := handlers.NewCheckoutHandler(startCheckoutUC)
	webhookHandler := handlers.NewWebhookHandler(finalizeUC, os.Getenv("STRIPE_WEBHOOK_SECRET"), time.Now)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{appBaseURL},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/leads", leadHandler.HandleSubmit)
	r.Post("/checkout", checkoutHandler.Handle)
	r.Post("/webhook/stripe", webhookHandler.Handle)

	r.Put("/brokers/profile", brokerHandler.HandleSaveProfile)
	r.Route("/brokers/{brokerID}", func(r chi.Router) {
		r.Get("/leads/preview", brokerHandler.HandlePreviewFeed)
		r.Get("/leads/unlocked", brokerHandler.HandleUnlockedFeed)
		r.Put("/leads/{leadID}/status", brokerHandler.HandleUpdateLeadStatus)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("lead exchange listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
