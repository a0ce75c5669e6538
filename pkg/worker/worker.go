package worker

import (
	"context"
	"fmt"
	"log"

	"coursecast/pkg/coursecast"
)

// Processor runs the course pipeline for one URL
type Processor interface {
	Process(ctx context.Context, url string) (*coursecast.Result, error)
}

// Worker processes course pages from URLs
type Worker struct {
	processor Processor
}

// NewWorker creates a new worker
func NewWorker(processor Processor) *Worker {
	return &Worker{
		processor: processor,
	}
}

// ProcessURL runs the full pipeline for a single URL
func (w *Worker) ProcessURL(ctx context.Context, url string) error {
	result, err := w.processor.Process(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", url, err)
	}

	log.Printf("Produced %s and %s", result.ScriptPath, result.AudioPath)
	return nil
}
