package vietqr

import (
	"context"
	"fmt"
	"sync"
)

// Processor encodes many requests concurrently with a shared Encoder.
type Processor struct {
	encoder      *Encoder    // Immutable, shared by all workers
	concurrency  int         // Max number of goroutines for processing
	errorHandler func(error) // Callback for handling errors
}

// Result is one streamed encoding outcome. Index is the position of the
// request in the input stream.
type Result struct {
	Index   int
	Payload string
	Err     error
}

// NewProcessor creates a new Processor with the given encoder and options.
func NewProcessor(encoder *Encoder, opts ...ProcessorOption) *Processor {
	if encoder == nil {
		encoder = defaultEncoder
	}
	p := &Processor{
		encoder:     encoder,
		concurrency: 4, // Default concurrency
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process encodes a single request.
func (p *Processor) Process(req Request) (string, error) {
	return p.encoder.Encode(req)
}

// EncodeBatch encodes reqs concurrently, keeping input order. On failure
// it returns the partial results together with the first error by index.
func (p *Processor) EncodeBatch(ctx context.Context, reqs []Request) ([]string, error) {
	results := make([]string, len(reqs))
	errs := make([]error, len(reqs))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.concurrency) // Limit concurrent goroutines

	for i, req := range reqs {
		// Check for context cancellation before starting a new job
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return results, err
		}
		select {
		case <-ctx.Done():
			wg.Wait() // Wait for already-running jobs
			return results, ctx.Err()
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(idx int, r Request) {
			defer wg.Done()
			defer func() { <-semaphore }() // Release semaphore slot

			payload, err := p.encoder.Encode(r)
			if err != nil {
				errs[idx] = fmt.Errorf("request %d: %w", idx, err)
				if p.errorHandler != nil {
					p.errorHandler(errs[idx])
				}
				return
			}
			results[idx] = payload
		}(i, req)
	}

	wg.Wait() // Wait for all goroutines to finish

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// EncodeStream encodes requests from input and sends each Result to output.
// It returns when input is closed and all work is delivered, or when ctx
// is cancelled. Results may arrive out of order; use Result.Index.
func (p *Processor) EncodeStream(ctx context.Context, input <-chan Request, output chan<- Result) error {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.concurrency) // Limit concurrency

	for idx := 0; ; idx++ {
		select {
		case <-ctx.Done():
			// Context cancelled, wait for running jobs and exit
			wg.Wait()
			return ctx.Err()

		case req, ok := <-input:
			if !ok {
				// Input channel closed, wait for running jobs and exit
				wg.Wait()
				return nil
			}

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				wg.Wait()
				return ctx.Err()
			}

			wg.Add(1)
			go func(i int, r Request) {
				defer wg.Done()
				defer func() { <-semaphore }() // Release semaphore

				payload, err := p.encoder.Encode(r)
				if err != nil && p.errorHandler != nil {
					p.errorHandler(fmt.Errorf("request %d: %w", i, err))
				}

				select {
				case output <- Result{Index: i, Payload: payload, Err: err}:
				case <-ctx.Done():
				}
			}(idx, req)
		}
	}
}
