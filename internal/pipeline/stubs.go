package pipeline

import (
	"context"
	"strings"

	"github.com/sells-group/index-enrich/pkg/anthropic"
)

// Compile-time interface check.
var _ anthropic.Client = (*StubAnthropicClient)(nil)

// StubAnthropicClient implements anthropic.Client with canned responses for
// fully offline runs. Sectors, if set, maps symbols to labels; unmapped
// symbols get DefaultSector.
type StubAnthropicClient struct {
	Sectors       map[string]string
	DefaultSector string
	Calls         int
}

const stubRecommendation = `Stub recommendation: Technology, Healthcare and Consumer Cyclical lead YTD. ` +
	`Representative names per sector are listed in the enriched table.`

// CreateMessage implements anthropic.Client. Classification and
// recommendation requests are told apart by prompt content.
func (s *StubAnthropicClient) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	s.Calls++

	content := ""
	for _, m := range req.Messages {
		content += m.Content
	}

	text := stubRecommendation
	if strings.Contains(content, "Classify company") {
		text = s.DefaultSector
		if text == "" {
			text = "Technology"
		}
		for symbol, sector := range s.Sectors {
			if strings.Contains(content, " "+symbol+" ") {
				text = sector
				break
			}
		}
	}

	return &anthropic.MessageResponse{
		ID:         "stub-msg-001",
		Model:      req.Model,
		Content:    []anthropic.ContentBlock{{Type: "text", Text: text}},
		StopReason: "end_turn",
		Usage: anthropic.TokenUsage{
			InputTokens:  150,
			OutputTokens: 10,
		},
	}, nil
}
