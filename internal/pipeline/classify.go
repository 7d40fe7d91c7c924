package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/index-enrich/internal/config"
	"github.com/sells-group/index-enrich/internal/model"
	"github.com/sells-group/index-enrich/pkg/anthropic"
)

const classifySystemPromptFmt = `You classify stock ticker symbols into exactly one of the following sectors: %s. Answer only with the sector name.`

const classifyUserPromptFmt = `Classify company %s into one of the allowed sectors.`

// Classifier labels constituents with a sector via one model call per row.
type Classifier struct {
	client   anthropic.Client
	cfg      config.AnthropicConfig
	taxonomy model.Taxonomy
}

// NewClassifier creates a Classifier using the given client and taxonomy.
func NewClassifier(client anthropic.Client, cfg config.AnthropicConfig, taxonomy model.Taxonomy) *Classifier {
	return &Classifier{client: client, cfg: cfg, taxonomy: taxonomy}
}

// systemBlocks builds the cached system prompt listing the allowed sectors.
// The prompt is identical for every row, so rows after the first hit the
// warm prompt cache.
func (c *Classifier) systemBlocks() []anthropic.SystemBlock {
	prompt := fmt.Sprintf(classifySystemPromptFmt, strings.Join(c.taxonomy.Sectors, ", "))
	return anthropic.BuildCachedSystemBlocks(prompt)
}

// ClassifySymbol issues one classification call for a symbol and returns the
// first candidate's text verbatim. No validation against the taxonomy and no
// normalization: whatever the model says is the label.
func (c *Classifier) ClassifySymbol(ctx context.Context, symbol string) (string, anthropic.TokenUsage, error) {
	temperature := 0.0

	resp, err := c.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		System:    c.systemBlocks(),
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf(classifyUserPromptFmt, symbol)},
		},
		Temperature: &temperature,
	})
	if err != nil {
		return "", anthropic.TokenUsage{}, eris.Wrapf(err, "classify: %s", symbol)
	}

	label, err := resp.FirstText()
	if err != nil {
		return "", resp.Usage, eris.Wrapf(err, "classify: %s", symbol)
	}

	return label, resp.Usage, nil
}

// ClassifyAll labels every record in table order, strictly sequentially: row
// i's call completes before row i+1's begins. Labels are written back by
// symbol lookup, not by loop index. The first failed call aborts the phase;
// labels already written stay in the table and the returned results cover
// every row attempted, so callers can report partial success.
func (c *Classifier) ClassifyAll(ctx context.Context, table *model.Table) ([]model.SectorResult, model.TokenUsage, error) {
	results := make([]model.SectorResult, 0, table.Len())
	var usage model.TokenUsage

	for _, symbol := range table.Symbols() {
		label, callUsage, err := c.ClassifySymbol(ctx, symbol)
		usage.Add(model.TokenUsage{
			InputTokens:  int(callUsage.InputTokens),
			OutputTokens: int(callUsage.OutputTokens),
			Cost:         callUsage.EstimateCost(c.cfg.Model),
		})

		if err != nil {
			results = append(results, model.SectorResult{Symbol: symbol, Err: err})
			return results, usage, eris.Wrap(err, "classify: aborting run")
		}

		written := table.UpdateSector(symbol, label)
		results = append(results, model.SectorResult{Symbol: symbol, Sector: label})

		if !c.taxonomy.Contains(label) {
			zap.L().Warn("classify: off-taxonomy label stored verbatim",
				zap.String("symbol", symbol),
				zap.String("label", label),
			)
		}
		zap.L().Debug("classify: labeled",
			zap.String("symbol", symbol),
			zap.String("sector", label),
			zap.Int("records_written", written),
		)
	}

	return results, usage, nil
}
