package models

// Every endpoint answers with its own concrete record type so that the
// required keys are guaranteed at compile time. Timestamps are
// preformatted strings (util.Timestamp) rather than time.Time values;
// the wire format is part of the contract.

// ===== Meta Endpoints =====

// RootResponse is the welcome payload for GET /.
type RootResponse struct {
	Message   string `json:"message"`
	AppName   string `json:"app_name"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// HealthResponse is the payload for GET /health, read by Docker health
// checks and load balancers.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	AppName     string `json:"app_name"`
	Environment string `json:"environment"`
}

// InfoResponse is the payload for GET /api/info.
type InfoResponse struct {
	AppName     string `json:"app_name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Timestamp   string `json:"timestamp"`
}

// ===== Chat Models =====

// ChatRequest represents a chat message request
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse represents a chat response
type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Model     string `json:"model"`
}

// ===== Error Envelope =====

// ErrorResponse is the fixed JSON shape wrapping every error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	AppName   string `json:"app_name"`
}
