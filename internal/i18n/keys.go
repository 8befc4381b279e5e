package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyDatabaseUnavailable indicates the database cannot be reached.
	ErrKeyDatabaseUnavailable = "error.database_unavailable"
	// ErrKeyValidationItems indicates an order without items.
	ErrKeyValidationItems = "error.validation.items"
	// ErrKeyValidationTotalWeight indicates a negative total weight.
	ErrKeyValidationTotalWeight = "error.validation.total_weight"
	// ErrKeyContainerSpecNotFound indicates an unknown container spec id.
	ErrKeyContainerSpecNotFound = "error.container_spec_not_found"
	// ErrKeyInvalidID indicates a malformed object id.
	ErrKeyInvalidID = "error.invalid_id"
)

// Success message translation keys.
const (
	// SuccessKeyOrderCreated indicates a successfully stored order.
	SuccessKeyOrderCreated = "success.order_created"
	// SuccessKeySummaryGenerated indicates a successful summary preview.
	SuccessKeySummaryGenerated = "success.summary_generated"
)
