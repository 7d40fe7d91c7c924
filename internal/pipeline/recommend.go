package pipeline

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/sells-group/index-enrich/internal/config"
	"github.com/sells-group/index-enrich/internal/model"
	"github.com/sells-group/index-enrich/pkg/anthropic"
)

const recommendPromptFmt = `Provide summary information about Nasdaq-100 stock performance year to date (YTD), recommending the %d best sectors and %d or more companies per sector. Company data:
%s`

// Recommender produces the free-text sector/company recommendation from the
// fully enriched table.
type Recommender struct {
	client anthropic.Client
	aiCfg  config.AnthropicConfig
	cfg    config.RecommendConfig
}

// NewRecommender creates a Recommender.
func NewRecommender(client anthropic.Client, aiCfg config.AnthropicConfig, cfg config.RecommendConfig) *Recommender {
	return &Recommender{client: client, aiCfg: aiCfg, cfg: cfg}
}

// Recommend issues one call embedding the rendered table and returns the
// first candidate's text verbatim. The response is opaque prose; nothing is
// parsed out of it.
func (r *Recommender) Recommend(ctx context.Context, table *model.Table) (string, model.TokenUsage, error) {
	temperature := 0.0

	prompt := fmt.Sprintf(recommendPromptFmt, r.cfg.TopSectors, r.cfg.CompaniesPerSector, RenderTable(table))

	resp, err := r.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     r.aiCfg.Model,
		MaxTokens: r.cfg.MaxTokens,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
		Temperature: &temperature,
	})
	if err != nil {
		return "", model.TokenUsage{}, eris.Wrap(err, "recommend: create message")
	}

	text, err := resp.FirstText()
	usage := model.TokenUsage{
		InputTokens:  int(resp.Usage.InputTokens),
		OutputTokens: int(resp.Usage.OutputTokens),
		Cost:         resp.Usage.EstimateCost(r.aiCfg.Model),
	}
	if err != nil {
		return "", usage, eris.Wrap(err, "recommend")
	}

	return text, usage, nil
}
