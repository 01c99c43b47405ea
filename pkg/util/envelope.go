package util

import "net/http"

// Status marks a successful outcome with its code triple, mirroring the
// shape of the error taxonomy.
type Status struct {
	HTTPStatus int
	Code       string
	Message    string
}

var (
	StatusOK      = Status{HTTPStatus: http.StatusOK, Code: "S001", Message: "success"}
	StatusCreated = Status{HTTPStatus: http.StatusCreated, Code: "S002", Message: "created"}
)

// Envelope is the uniform response body. Every endpoint, success or failure,
// serializes to this shape.
type Envelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Wrap builds an envelope for a successful response.
func Wrap(status Status, data any) Envelope {
	return Envelope{Code: status.Code, Message: status.Message, Data: data}
}

// WrapError builds an envelope for a taxonomy error. Data is always null.
func WrapError(err *APIError) Envelope {
	return Envelope{Code: err.Code, Message: err.Message, Data: nil}
}
