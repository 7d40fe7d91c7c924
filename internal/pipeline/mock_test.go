package pipeline

import (
	"context"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/index-enrich/pkg/anthropic"
)

// --- Anthropic Mock ---

type mockAnthropicClient struct {
	mock.Mock
}

func (m *mockAnthropicClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageResponse), args.Error(1)
}

// textResponse builds a single-candidate response with the given text.
func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		ID:         "msg-test",
		Content:    []anthropic.ContentBlock{{Type: "text", Text: text}},
		StopReason: "end_turn",
		Usage:      anthropic.TokenUsage{InputTokens: 100, OutputTokens: 5},
	}
}

// matchPrompt matches a MessageRequest whose user content contains substr.
func matchPrompt(substr string) interface{} {
	return mock.MatchedBy(func(req anthropic.MessageRequest) bool {
		for _, m := range req.Messages {
			if strings.Contains(m.Content, substr) {
				return true
			}
		}
		return false
	})
}
