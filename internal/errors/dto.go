package errors

// ErrorResponse is the wire shape of every failure body: {"error": <message>}.
type ErrorResponse struct {
	Error string `json:"error"`
}
