package http

// APIResponse represents the standard error/status envelope. Classification
// results themselves are written bare for frontend compatibility; the
// envelope is used for validation and internal errors.
type APIResponse struct {
	Status  int         `json:"status" example:"400"`
	Message string      `json:"message" example:"Bad Request"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError represents one field-level validation failure.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"SNR"`
	Message string                 `json:"message,omitempty" example:"SNR is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
