// Package response contains the bodies written back to API callers.
package response

// A struct type that represents a message with a status and body.
// Message has the following properties:
// - Status: The status of the message.
// - Body: The body of the message.
type Message struct {
	Status string
	Body   string
}

// ErrorResponse carries a single error message, e.g. {"error": "Internal Server Error"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError describes one rejected input field.
type FieldError struct {
	Type     string      `json:"type"`
	Value    interface{} `json:"value,omitempty"`
	Msg      string      `json:"msg"`
	Path     string      `json:"path,omitempty"`
	Location string      `json:"location,omitempty"`
}

// ValidationErrorResponse is returned with status 400 when a payload is rejected.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// UpdateResult summarizes the outcome of an update.
type UpdateResult struct {
	GeneratedMaps []map[string]interface{} `json:"generatedMaps"`
	Raw           []interface{}            `json:"raw"`
	Affected      int64                    `json:"affected"`
}

// HealthResponse reports whether the service can reach its database.
type HealthResponse struct {
	Status string `json:"status"`
}
