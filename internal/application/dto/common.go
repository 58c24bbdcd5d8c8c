package dto

// ErrorResponse uniform error envelope. ErrorCode carries the legacy numeric
// code for duplicate-key failures (11000) and names the missing field for
// MissingParam via Message.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	ErrorCode  int    `json:"errorCode,omitempty"`
}

// MessageResponse plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
