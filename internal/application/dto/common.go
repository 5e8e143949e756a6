package dto

// ErrorResponse cuerpo de error HTTP. Available solo se llena para
// INSUFFICIENT_STOCK (cantidad disponible del producto).
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available *int64 `json:"available,omitempty"`
}
