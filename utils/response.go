package utils

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	// Fields carries per-field validation messages for locally rejected input.
	Fields map[string]string `json:"fields,omitempty"`
}
