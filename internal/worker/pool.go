package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
)

const JobTypeReceiptEmail = "receipt_email"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Handler processes one job payload. Handlers own their error handling;
// a failed job is logged, not retried by the pool.
type Handler func(ctx context.Context, payload json.RawMessage)

// ErrQueueFull is returned when the job buffer has no room. Callers treat
// enqueueing as best-effort and must not fail their own operation on it.
var ErrQueueFull = errors.New("job queue is full")

// Dispatcher hands async jobs to an in-process worker pool over a buffered
// channel. Enqueueing never blocks the caller.
type Dispatcher struct {
	jobs     chan Job
	handlers map[string]Handler
}

func NewDispatcher(buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	return &Dispatcher{
		jobs:     make(chan Job, buffer),
		handlers: make(map[string]Handler),
	}
}

// Register wires a handler for a job type. Not safe to call after StartPool.
func (d *Dispatcher) Register(jobType string, h Handler) {
	d.handlers[jobType] = h
}

// EnqueueReceiptEmail queues a receipt email job.
func (d *Dispatcher) EnqueueReceiptEmail(ctx context.Context, payload ReceiptEmailPayload) error {
	return d.enqueue(ctx, JobTypeReceiptEmail, payload)
}

func (d *Dispatcher) enqueue(_ context.Context, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	select {
	case d.jobs <- Job{Type: jobType, Payload: data}:
		return nil
	default:
		return ErrQueueFull
	}
}

// StartPool launches numWorkers goroutines consuming the job channel. They
// drain until ctx is cancelled.
func (d *Dispatcher) StartPool(ctx context.Context, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		go d.runWorker(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		case job := <-d.jobs:
			handler, ok := d.handlers[job.Type]
			if !ok {
				log.Error().Str("type", job.Type).Msg("no handler registered for job")
				continue
			}
			handler(ctx, job.Payload)
		}
	}
}
