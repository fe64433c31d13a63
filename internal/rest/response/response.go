package response

import "time"

const DateTimeFormat = time.RFC3339

// Body is the JSON envelope of every API response.
type Body struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success wraps data in a success envelope. data may be nil.
func Success(data any) Body {
	return Body{Status: "success", Data: data}
}

// Fail wraps a client-caused failure message.
func Fail(message string) Body {
	return Body{Status: "fail", Message: message}
}

// Error wraps a server-side failure message.
func Error(message string) Body {
	return Body{Status: "error", Message: message}
}
