package main

import (
	"context"
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/app/delivery/http/routers"
	"hospicare-service/internal/app/drivers/database"
	"hospicare-service/internal/app/drivers/logger"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/app/services/core/appointments"
	"hospicare-service/internal/app/services/core/doctors"
	"hospicare-service/internal/app/services/shared/paymentgateway"
	"hospicare-service/internal/app/services/shared/ratelimiter"
	sharedredis "hospicare-service/internal/app/services/shared/redis"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	if err := models.ValidateFeeTable(); err != nil {
		log.Fatalf("Fee table does not match the department enumeration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Payment gateway
	paymentGatewayService := paymentgateway.NewRazorpayService(bootstrap.InternalConfig, bootstrap.Logger)
	signatureVerifier := paymentgateway.NewSignatureVerifier(bootstrap.InternalConfig)
	verificationLimiter := ratelimiter.NewAttemptLimiter(
		redisRepository,
		bootstrap.Logger,
		"payment-verify",
		bootstrap.InternalConfig.PaymentGateway.VerifyWindowInSeconds,
		bootstrap.InternalConfig.PaymentGateway.VerifyMaxAttempts,
	)

	// Doctor resolution
	doctorMongoRepository := doctors.NewDoctorMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	doctorResolver := doctors.NewDoctorResolver(doctorMongoRepository, bootstrap.Logger)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorResolver,
		paymentGatewayService,
		signatureVerifier,
		verificationLimiter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, appointmentController)
}
