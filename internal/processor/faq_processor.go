package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/faq-hunter/internal/collector"
	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/google/uuid"
)

const defaultBatchSize = 1000

// Pipeline defines the interface for data processing pipelines
type Pipeline interface {
	Run(ctx context.Context) (Stats, error)
	Stop()
}

type BulkOptions struct {
	Enabled bool
	Size    int
}

type PipelineConfig struct {
	Name string
	Bulk *BulkOptions
}

// Stats summarizes a finished run.
type Stats struct {
	RunID     string
	Processed int
	Errors    int
	Batches   int
	Duration  time.Duration
}

// FaqPipeline moves faqs from a collector into a storer. Categories are
// written before any faq so category paths resolve once records land.
type FaqPipeline struct {
	collector  collector.Collector[domain.Faq]
	categories []domain.Category
	storer     storage.Storer
	config     *PipelineConfig
}

type PipelineOption func(pipeline *FaqPipeline)

// WithBulk configures bulk processing with specified batch size
func WithBulk(size int) PipelineOption {
	return func(pipeline *FaqPipeline) {
		if pipeline.config.Bulk == nil {
			pipeline.config.Bulk = &BulkOptions{}
		}
		pipeline.config.Bulk.Enabled = true
		if size > 0 {
			pipeline.config.Bulk.Size = size
		}
	}
}

func WithCategories(categories []domain.Category) PipelineOption {
	return func(pipeline *FaqPipeline) {
		pipeline.categories = categories
	}
}

func WithConfig(config *PipelineConfig) PipelineOption {
	return func(pipeline *FaqPipeline) {
		pipeline.config = config
	}
}

func NewPipeline(c collector.Collector[domain.Faq], storer storage.Storer, opts ...PipelineOption) *FaqPipeline {
	p := &FaqPipeline{
		collector: c,
		storer:    storer,
		config: &PipelineConfig{
			Name: "faq-pipeline",
			Bulk: &BulkOptions{
				Enabled: false,
				Size:    defaultBatchSize,
			},
		},
	}

	for _, opt := range opts {
		opt(p)
	}
	if p.config.Bulk == nil {
		p.config.Bulk = &BulkOptions{Size: defaultBatchSize}
	}

	return p
}

func (p *FaqPipeline) Run(ctx context.Context) (Stats, error) {
	stats := Stats{RunID: uuid.NewString()}
	start := time.Now()
	log := slog.With("pipeline", p.config.Name, "run_id", stats.RunID)
	log.Info("🛫 Starting pipeline run",
		"bulk_enabled", p.config.Bulk.Enabled,
		"batch_size", p.config.Bulk.Size,
	)

	if len(p.categories) > 0 {
		if err := p.storer.SaveCategories(ctx, p.categories); err != nil {
			log.Error("Error saving categories", "error", err, "count", len(p.categories))
			return stats, err
		}
		log.Info("Categories saved", "count", len(p.categories))
	}

	results, err := p.collector.Collect(ctx)
	if err != nil {
		log.Error("Error collecting faqs", "error", err)
		return stats, err
	}

	if p.config.Bulk.Enabled {
		err = p.processBatch(ctx, log, results, &stats)
	} else {
		err = p.processBasic(ctx, log, results, &stats)
	}

	stats.Duration = time.Since(start)
	log.Info("Pipeline run completed",
		"duration", stats.Duration,
		"processed", stats.Processed,
		"errors", stats.Errors,
		"batches", stats.Batches,
		"error", err,
	)

	return stats, err
}

func (p *FaqPipeline) processBasic(ctx context.Context, log *slog.Logger, results <-chan collector.Result[domain.Faq], stats *Stats) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				return nil
			}
			if res.Err != nil {
				log.Error("Error collecting faq", "error", res.Err)
				stats.Errors++
				continue
			}

			id, err := p.storer.Save(ctx, res.Result)
			if err != nil {
				log.Error("Error saving faq", "error", err, "title", res.Result.Title)
				stats.Errors++
				continue
			}
			log.Debug("Faq saved", "id", id, "lang", res.Result.Language)
			stats.Processed++
		}
	}
}

func (p *FaqPipeline) processBatch(ctx context.Context, log *slog.Logger, results <-chan collector.Result[domain.Faq], stats *Stats) error {
	batch := make([]domain.Faq, 0, p.config.Bulk.Size)

	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		if err := p.storer.SaveBulk(ctx, batch); err != nil {
			log.Error("Error saving bulk faqs", "error", err, "count", len(batch))
			stats.Errors += len(batch)
		} else {
			stats.Batches++
			stats.Processed += len(batch)
			log.Info("Bulk faqs saved", "count", len(batch), "batch", stats.Batches)
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("Pipeline context cancelled", "pending_batch", len(batch))
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				flush(ctx)
				return nil
			}
			if res.Err != nil {
				log.Error("Error collecting faq", "error", res.Err)
				stats.Errors++
				continue
			}

			batch = append(batch, res.Result)
			if len(batch) >= p.config.Bulk.Size {
				flush(ctx)
			}
		}
	}
}

// Stop gracefully stops the pipeline
func (p *FaqPipeline) Stop() {
	slog.Info("Stopping pipeline...", "pipeline", p.config.Name)
	p.storer = nil
}
