// Package apierror defines the error body shape and the fixed vocabulary of
// error codes shared by handlers and middleware.
package apierror

// Error codes carried in Response bodies. Clients switch on these strings
// rather than on messages.
const (
	CodeNotFound      = "not-found"
	CodeInvalidID     = "invalid-id"
	CodeInvalidData   = "invalid-data"
	CodeInternalError = "internal-error"
	CodeUnauthorized  = "unauthorized"
	CodeForbidden     = "forbidden"
	CodeRateLimited   = "rate-limited"
)

// Response is the error body for every non-2xx response.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
