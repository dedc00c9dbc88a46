package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

// BatchOptions controls how a batch of transcript requests is processed
type BatchOptions struct {
	// ContinueOnFailure turns a failed item into an error record instead of aborting the batch.
	ContinueOnFailure bool
	// Concurrency bounds the number of items processed at once. Values below 1 mean sequential.
	Concurrency int
	// OnError is called for every failed item, before the failure is recorded or aborts the batch.
	OnError func(videoRef string, err error)
}

// BatchProcessor runs many transcript requests through a TranscriptService
type BatchProcessor struct {
	service TranscriptService
	opts    BatchOptions
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(service TranscriptService, opts BatchOptions) *BatchProcessor {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &BatchProcessor{service: service, opts: opts}
}

// StreamTranscripts processes reqs and emits one item per request as soon as it completes.
// With concurrency above 1 items may arrive out of input order; BatchItem.Index gives the position.
// Without ContinueOnFailure the first failure is emitted as an error and the remaining
// requests are cancelled. The channel is closed once every started request has finished.
func (b *BatchProcessor) StreamTranscripts(ctx context.Context, reqs []models.TranscriptRequest) <-chan models.StreamResult[models.BatchItem] {
	out := make(chan models.StreamResult[models.BatchItem])

	go func() {
		defer close(out)
		logger := config.GetLogger()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		send := func(result models.StreamResult[models.BatchItem]) {
			select {
			case out <- result:
			case <-ctx.Done():
			}
		}

		sem := make(chan struct{}, b.opts.Concurrency)
		var wg sync.WaitGroup
		var abortOnce sync.Once

		logger.Info().
			Int("items", len(reqs)).
			Int("concurrency", b.opts.Concurrency).
			Bool("continueOnFailure", b.opts.ContinueOnFailure).
			Msg("Starting batch")

	dispatch:
		for i, req := range reqs {
			select {
			case sem <- struct{}{}:
				// A slot freed by an aborting item must not start another one
				if ctx.Err() != nil {
					<-sem
					break dispatch
				}
			case <-ctx.Done():
				break dispatch
			}

			wg.Add(1)
			go func(index int, req models.TranscriptRequest) {
				defer wg.Done()
				defer func() { <-sem }()

				item, err := b.processOne(ctx, index, req)
				if err != nil {
					abortOnce.Do(func() {
						logger.Warn().Err(err).Int("index", index).Msg("Aborting batch on first failure")
						send(models.StreamResult[models.BatchItem]{Err: err})
						cancel()
					})
					return
				}
				send(models.StreamResult[models.BatchItem]{Value: item})
			}(i, req)
		}

		wg.Wait()
	}()

	return out
}

// ProcessBatch runs every request and returns the items in input order.
// Without ContinueOnFailure it returns the first failure and no items.
func (b *BatchProcessor) ProcessBatch(ctx context.Context, reqs []models.TranscriptRequest) ([]models.BatchItem, error) {
	items := make([]models.BatchItem, 0, len(reqs))
	for result := range b.StreamTranscripts(ctx, reqs) {
		if result.Err != nil {
			// The stream cancels its remaining work before emitting an error, so nothing is left blocked on it.
			return nil, result.Err
		}
		items = append(items, result.Value)
	}
	if err := ctx.Err(); err != nil && len(items) < len(reqs) {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Index < items[j].Index })
	return items, nil
}

func (b *BatchProcessor) processOne(ctx context.Context, index int, req models.TranscriptRequest) (models.BatchItem, error) {
	result, err := b.service.GetTranscript(ctx, req)
	if err == nil {
		return models.BatchItem{Index: index, VideoRef: req.VideoRef, Result: result}, nil
	}

	if b.opts.OnError != nil {
		b.opts.OnError(req.VideoRef, err)
	}
	if !b.opts.ContinueOnFailure {
		return models.BatchItem{}, fmt.Errorf("batch item %d (%s): %w", index, req.VideoRef, err)
	}

	logger := config.GetLogger()
	logger.Warn().
		Err(err).
		Int("index", index).
		Str("videoRef", req.VideoRef).
		Msg("Batch item failed, continuing")
	return models.BatchItem{Index: index, VideoRef: req.VideoRef, Error: err.Error()}, nil
}
