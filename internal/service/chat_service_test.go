package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/168cap/llm-app/internal/config"
	"github.com/168cap/llm-app/internal/models"
	"github.com/168cap/llm-app/internal/util"
)

type failingResponder struct {
	err error
}

func (f *failingResponder) Respond(context.Context, string) (string, error) {
	return "", f.err
}

func TestEchoResponder(t *testing.T) {
	t.Parallel()

	reply, err := NewEchoResponder().Respond(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Echo: hi", reply)
}

func TestEchoResponderEmptyMessage(t *testing.T) {
	t.Parallel()

	reply, err := NewEchoResponder().Respond(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Echo: ", reply)
}

func TestProcessChat(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{ModelName: "test-model"}
	cs := NewChatService(cfg, NewEchoResponder())

	resp, err := cs.ProcessChat(context.Background(), &models.ChatRequest{Message: "hello there"})
	require.NoError(t, err)

	assert.Equal(t, "Echo: hello there", resp.Response)
	assert.Equal(t, "test-model", resp.Model)

	_, err = time.Parse(util.TimestampLayout, resp.Timestamp)
	assert.NoError(t, err)
}

func TestProcessChatResponderFailure(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{ModelName: "test-model"}
	cs := NewChatService(cfg, &failingResponder{err: errors.New("backend unavailable")})

	resp, err := cs.ProcessChat(context.Background(), &models.ChatRequest{Message: "hi"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "backend unavailable")
}
