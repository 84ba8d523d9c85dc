package request

// SignupRequest carries the query parameters of a signup or unregister call.
// Only presence is validated; email format is deliberately not checked.
type SignupRequest struct {
	Email string `validate:"required"`
}
