package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/index-enrich/internal/config"
	"github.com/sells-group/index-enrich/internal/dataset"
	"github.com/sells-group/index-enrich/internal/model"
)

// Pipeline orchestrates the enrichment run:
// load → join → classify → tally → recommend.
type Pipeline struct {
	cfg         *config.Config
	classifier  *Classifier
	recommender *Recommender
}

// New creates a Pipeline with all dependencies.
func New(cfg *config.Config, classifier *Classifier, recommender *Recommender) *Pipeline {
	return &Pipeline{
		cfg:         cfg,
		classifier:  classifier,
		recommender: recommender,
	}
}

// Join loads the two inputs and performs the inner join into a constituent
// table. Exposed separately from Run so dry runs stop before any external
// call.
func (p *Pipeline) Join(ctx context.Context, constituentsPath, pricesPath string) (*model.Table, error) {
	ds := p.cfg.Dataset

	left, right, err := dataset.LoadPair(ctx, constituentsPath, pricesPath)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: load datasets")
	}
	zap.L().Info("pipeline: datasets loaded",
		zap.Int("constituent_rows", len(left.Rows)),
		zap.Int("price_rows", len(right.Rows)),
	)

	joined, err := dataset.InnerJoin(left, right, ds.JoinKey, []string{ds.JoinKey, ds.YTDColumn})
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: join")
	}

	table, err := dataset.ToConstituents(joined, ds.JoinKey, ds.YTDColumn)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build constituent table")
	}
	zap.L().Info("pipeline: joined",
		zap.Int("rows", table.Len()),
		zap.Int("dropped", len(left.Rows)-table.Len()),
	)

	return table, nil
}

// Run executes the full pipeline over the given input paths. A limit > 0
// truncates the joined table before classification. On a classification or
// recommendation failure the returned report still carries whatever landed
// in memory (partial labels, per-row results) alongside the error; nothing
// is retried or rolled back.
func (p *Pipeline) Run(ctx context.Context, constituentsPath, pricesPath string, limit int) (*model.EnrichmentReport, error) {
	report := &model.EnrichmentReport{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}
	log := zap.L().With(zap.String("run_id", report.RunID))
	log.Info("pipeline: starting enrichment")

	trackPhase := func(name string, fn func() (model.TokenUsage, error)) error {
		start := time.Now()
		usage, err := fn()
		duration := time.Since(start).Milliseconds()

		phase := model.PhaseReport{
			Name:       name,
			Status:     model.PhaseStatusSuccess,
			Duration:   duration,
			TokenUsage: usage,
		}
		if err != nil {
			phase.Status = model.PhaseStatusFailed
			phase.Error = err.Error()
			log.Error("pipeline: phase failed",
				zap.String("phase", name),
				zap.Int64("duration_ms", duration),
				zap.Error(err),
			)
		} else {
			log.Info("pipeline: phase complete",
				zap.String("phase", name),
				zap.Int64("duration_ms", duration),
			)
		}

		report.Phases = append(report.Phases, phase)
		report.TotalUsage.Add(usage)
		return err
	}

	finish := func(err error) (*model.EnrichmentReport, error) {
		report.FinishedAt = time.Now().UTC()
		return report, err
	}

	if err := trackPhase("join", func() (model.TokenUsage, error) {
		table, err := p.Join(ctx, constituentsPath, pricesPath)
		if err != nil {
			return model.TokenUsage{}, err
		}
		if limit > 0 && limit < table.Len() {
			table.Records = table.Records[:limit]
		}
		report.Table = table
		return model.TokenUsage{}, nil
	}); err != nil {
		return finish(err)
	}

	if err := trackPhase("classify", func() (model.TokenUsage, error) {
		results, usage, err := p.classifier.ClassifyAll(ctx, report.Table)
		report.Results = results
		return usage, err
	}); err != nil {
		// Partial labels stay in the table; tally what landed before failing.
		report.Tally = TallySectors(report.Table)
		return finish(err)
	}

	if err := trackPhase("tally", func() (model.TokenUsage, error) {
		report.Tally = TallySectors(report.Table)
		LogTally(report.Tally)
		return model.TokenUsage{}, nil
	}); err != nil {
		return finish(err)
	}

	if err := trackPhase("recommend", func() (model.TokenUsage, error) {
		text, usage, err := p.recommender.Recommend(ctx, report.Table)
		report.Recommendation = text
		return usage, err
	}); err != nil {
		return finish(err)
	}

	log.Info("pipeline: enrichment complete",
		zap.Int("rows", report.Table.Len()),
		zap.Int("sectors", len(report.Tally)),
		zap.Int("input_tokens", report.TotalUsage.InputTokens),
		zap.Int("output_tokens", report.TotalUsage.OutputTokens),
		zap.Float64("cost", report.TotalUsage.Cost),
	)

	return finish(nil)
}
