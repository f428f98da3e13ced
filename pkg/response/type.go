package response

const (
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal failure detail from API clients.
	DefaultErrorMessage = "something went wrong"

	InternalServerErrorCode = 500
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}
