package mocks

import (
	"context"
	"sync"

	"ourstory/infras/otel"
)

// Otel hands out recording scopes and remembers the latest one opened under each span name.
type Otel struct {
	mu     sync.Mutex
	scopes map[string]*Scope
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := NewScope()

	o.mu.Lock()
	o.scopes[spanName] = scope
	o.mu.Unlock()

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the latest scope opened as spanName, or nil when none was.
func (o *Otel) Scope(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.scopes[spanName]
}

func NewOtel() *Otel {
	return &Otel{scopes: map[string]*Scope{}}
}

var _ otel.Otel = (*Otel)(nil)
