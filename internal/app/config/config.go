package config

import (
	"hospicare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "hospicare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                   utils.GetEnvString("APP_ENV", "development"),
			Port:                                  utils.GetEnvString("APP_PORT", ":8080"),
			Version:                               utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:                        utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                           utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:              utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:               utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			PaymentGatewayRequestTimeoutInSeconds: utils.GetEnvInt("APP_PAYMENT_GATEWAY_REQUEST_TIMEOUT_IN_SECONDS", 15),
		},
		PaymentGateway: AppPaymentGateway{
			BaseUrl:               utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.razorpay.com"),
			KeyID:                 utils.GetEnvString("PAYMENT_GATEWAY_KEY_ID", ""),
			KeySecret:             utils.GetEnvString("PAYMENT_GATEWAY_KEY_SECRET", ""),
			Currency:              utils.GetEnvString("PAYMENT_GATEWAY_CURRENCY", "INR"),
			AllowTestSignature:    utils.GetEnvBool("PAYMENT_GATEWAY_ALLOW_TEST_SIGNATURE", false),
			VerifyMaxAttempts:     utils.GetEnvInt("PAYMENT_GATEWAY_VERIFY_MAX_ATTEMPTS", 10),
			VerifyWindowInSeconds: utils.GetEnvInt("PAYMENT_GATEWAY_VERIFY_WINDOW_IN_SECONDS", 60),
		},
		Admin: AppAdmin{
			APIKey: utils.GetEnvString("ADMIN_API_KEY", ""),
		},
	}
}
