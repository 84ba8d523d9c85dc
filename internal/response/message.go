package response

// MessageResponse confirms a successful signup or unregistration.
type MessageResponse struct {
	Message string `json:"message"`
}
