package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must contain at least %s characters",
	"max":      "maximum at %s characters long",
	"len":      "must contain exactly %s digits",
	"numeric":  "must contain only digits",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientDoctorConflict                = "doctors conflict, please contact through email or phone"
	ErrClientUnknownDepartment             = "invalid department"
	ErrClientPaymentVerificationFailed     = "payment verification failed"
	ErrClientPaymentGatewayUnavailable     = "payment service is currently unavailable"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientTooManyVerificationAttempts   = "too many verification attempts, please try again later"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevInvalidAPIKey              = "invalid or missing admin api key"
	ErrDevDoctorNotFound             = "no active doctor matches the given name and department"
	ErrDevDoctorConflict             = "more than one active doctor matches the given name and department"
	ErrDevUnknownDepartment          = "department is not part of the fee table enumeration"
	ErrDevSignatureMismatch          = "payment signature does not match the expected HMAC digest"
	ErrDevGatewayCreateOrder         = "payment gateway order creation failed"
	ErrDevGatewayDecodeResponse      = "failed to decode payment gateway response"
	ErrDevAppointmentNotFound        = "appointment does not exist"
	ErrDevVerificationQuotaExceeded  = "payment verification attempt quota exceeded for this order"
	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "provided string is not a valid object id"
)
