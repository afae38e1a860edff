package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App            App
		PaymentGateway AppPaymentGateway
		Admin          AppAdmin
	}

	App struct {
		Env                                   string
		Port                                  string
		Version                               string
		EndpointPrefix                        string
		MaxRequests                           int
		ShutdownTimeoutInSeconds              int
		RequestTimeoutInSeconds               int
		PaymentGatewayRequestTimeoutInSeconds int
	}

	AppPaymentGateway struct {
		BaseUrl            string
		KeyID              string
		KeySecret          string
		Currency           string
		AllowTestSignature bool
		// VerifyMaxAttempts limits signature verification attempts per order
		// within VerifyWindowInSeconds. Zero disables the limiter.
		VerifyMaxAttempts     int
		VerifyWindowInSeconds int
	}

	AppAdmin struct {
		APIKey string
	}
)
