package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_ADMIN_AUTH_KEY           contextKey = "admin_auth"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionAppointments = "appointments"
)

const (
	RoleDoctor = "Doctor"
)

const (
	// FilterAll is the sentinel meaning "no constraint" on a query field.
	FilterAll = "All"
)

const (
	// TestSignatureDummy is accepted as a valid payment signature only when
	// the gateway bypass flag is enabled outside production.
	TestSignatureDummy = "signature_test_dummy"

	ReceiptLabelPrefix = "receipt_order_"
)
