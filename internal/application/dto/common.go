package dto

// DateLayout formato de fecha de calendario en la API (fechas de caducidad y
// de eventos).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
