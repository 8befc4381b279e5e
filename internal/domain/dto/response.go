package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-08-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"items: must contain at least one item"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-08-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// SummaryResponse is the rendered order summary preview.
// @Description Rendered order summary text and computed total
type SummaryResponse struct {
	// Summary is the formatted summary text, ready to copy into chat.
	Summary string `json:"summary" example:"28/8 ร้านป้าแดง\n..."`
	// TotalCost is the computed order total in baht. Zero for
	// withdrawal slips.
	TotalCost float64 `json:"total_cost" example:"300"`
} // @name SummaryResponse

// ContainerSpecResponse is one catalog container specification.
type ContainerSpecResponse struct {
	ID          string  `json:"id" example:"foam_medium"`
	Type        string  `json:"type" example:"foam"`
	Size        string  `json:"size" example:"medium"`
	Name        string  `json:"name" example:"กล่องโฟมกลาง"`
	Price       float64 `json:"price" example:"80"`
	Capacity    float64 `json:"capacity" example:"10"`
	Description string  `json:"description,omitempty"`
} // @name ContainerSpecResponse

// ContainerSuggestionItem is one suggested container line.
type ContainerSuggestionItem struct {
	SpecID   string  `json:"spec_id" example:"foam_large"`
	Name     string  `json:"name" example:"กล่องโฟมใหญ่"`
	Quantity int     `json:"quantity" example:"2"`
	Price    float64 `json:"price" example:"100"`
} // @name ContainerSuggestionItem

// SuggestContainersResponse is the suggested allocation for a weight.
// @Description Suggested container allocation for a total order weight
type SuggestContainersResponse struct {
	TotalWeight float64                   `json:"total_weight" example:"23.5"`
	Suggestions []ContainerSuggestionItem `json:"suggestions"`
	// TotalPrice is the summed container price of the suggestion.
	TotalPrice float64 `json:"total_price" example:"260"`
} // @name SuggestContainersResponse
