package service

import (
	"context"
	"fmt"

	"github.com/168cap/llm-app/internal/config"
	"github.com/168cap/llm-app/internal/models"
	"github.com/168cap/llm-app/internal/util"
)

// ChatService handles chat functionality
type ChatService struct {
	cfg       *config.Config
	responder Responder
}

// NewChatService creates a new chat service
func NewChatService(cfg *config.Config, responder Responder) *ChatService {
	return &ChatService{
		cfg:       cfg,
		responder: responder,
	}
}

// ProcessChat produces the reply for a single chat message.
func (cs *ChatService) ProcessChat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	reply, err := cs.responder.Respond(ctx, req.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}

	return &models.ChatResponse{
		Response:  reply,
		Timestamp: util.Timestamp(),
		Model:     cs.cfg.ModelName,
	}, nil
}
