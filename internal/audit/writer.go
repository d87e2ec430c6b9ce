// Package audit persists privileged-write events off the request path.
package audit

import (
	"context"
	"log"
	"sync"
	"time"

	"eduai/internal/model"
	"eduai/internal/repository"
)

const (
	defaultBuffer = 100
	batchSize     = 10
	flushInterval = time.Second
)

// Recorder accepts audit events.
type Recorder interface {
	Record(ctx context.Context, event model.AuditEvent)
}

// Writer batches audit events and writes them in the background. When the
// buffer is full the event is written synchronously instead of dropped.
type Writer struct {
	repo     repository.AuditRepository
	events   chan model.AuditEvent
	interval time.Duration

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

var _ Recorder = (*Writer)(nil)

// NewWriter starts a writer with the given buffer size.
func NewWriter(repo repository.AuditRepository, buffer int) *Writer {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	w := &Writer{
		repo:     repo,
		events:   make(chan model.AuditEvent, buffer),
		interval: flushInterval,
		done:     make(chan struct{}),
	}
	go w.run()
	return w
}

// Record queues an event. Safe to call on a nil or closed Writer.
func (w *Writer) Record(ctx context.Context, event model.AuditEvent) {
	if w == nil {
		return
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		w.writeOne(ctx, event)
		return
	}

	select {
	case w.events <- event:
	default:
		// buffer full
		w.writeOne(ctx, event)
	}
}

// Close stops the worker after flushing queued events.
func (w *Writer) Close() {
	if w == nil {
		return
	}
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.events)
	w.mu.Unlock()
	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)

	batch := make([]model.AuditEvent, 0, batchSize)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := w.repo.CreateBatch(context.Background(), batch); err != nil {
			log.Printf("audit: write batch of %d: %v", len(batch), err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case event, ok := <-w.events:
			if !ok {
				flush()
				return
			}
			batch = append(batch, event)
			if len(batch) >= batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (w *Writer) writeOne(ctx context.Context, event model.AuditEvent) {
	if err := w.repo.Create(context.WithoutCancel(ctx), &event); err != nil {
		log.Printf("audit: write %s: %v", event.Kind, err)
	}
}

// Discard is a Recorder that drops every event.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(context.Context, model.AuditEvent) {}
