// Package mocks provides an in-memory otel.Otel that records spans instead of exporting them.
package mocks

import (
	"context"
	"slices"
	"slotbook/infras/otel"
	"sync"
)

// Recorder collects the spans opened through it and the errors traced on them.
type Recorder struct {
	mu     sync.Mutex
	spans  []string
	errors map[string][]error
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.spans = append(r.spans, spanName)
	r.mu.Unlock()

	return ctx, &recordingScope{recorder: r, name: spanName}
}

// Spans returns the span names in the order they were opened.
func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.spans)
}

// Errors returns the errors traced on spans called spanName.
func (r *Recorder) Errors(spanName string) []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.errors[spanName])
}

func (r *Recorder) record(spanName string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.errors == nil {
		r.errors = map[string][]error{}
	}

	r.errors[spanName] = append(r.errors[spanName], err)
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewOtel returns a Recorder typed as otel.Otel, for tests that only need tracing to be inert.
func NewOtel() otel.Otel {
	return NewRecorder()
}
