package util

// Service status values
const (
	StatusRunning = "running"
	StatusHealthy = "healthy"
)

// Fixed application strings
const (
	WelcomeMessage = "Welcome to your 168cap LLM App!"
	AppDescription = "LLM application running on 168cap infrastructure"
)

// Error envelope messages
const (
	ErrMsgNotFound   = "Endpoint not found"
	ErrMsgInternal   = "Internal server error"
	ErrMsgChatFailed = "Chat processing failed"
)
