package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	developerHandler         developerHandler
	developerInfoHandler     developerInfoHandler
	projectHandler           projectHandler
	projectTechnologyHandler projectTechnologyHandler
	technologyHandler        technologyHandler
	healthHandler            healthHandler
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string   `json:"message"`
	Status  string   `json:"status"`
	Field   string   `json:"field,omitempty"`
	Keys    []string `json:"keys,omitempty"`
	Options []string `json:"options,omitempty"`
	Details string   `json:"details,omitempty"`
	Cause   string   `json:"cause,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}
