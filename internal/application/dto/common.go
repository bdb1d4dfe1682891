package dto

// ErrorResponse cuerpo de error HTTP. Code es estable (NOT_FOUND, VALIDATION, CONFLICT,
// BUSINESS_RULE, UNAUTHORIZED, FORBIDDEN, INTERNAL); Message es para humanos.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Path    string   `json:"path"`
	Status  int      `json:"status"`
	Fields  []string `json:"fields,omitempty"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
