package otel_test

import (
	"context"
	"errors"
	"testing"

	"ourstory/config"
	"ourstory/infras/otel"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "our-story-test"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "test", "test.span")
	assert.NotNil(t, ctx)

	scope.SetAttribute("query", "SELECT 1")
	scope.SetAttributes(map[string]any{"count": 2, "done": true, "ids": []string{"1"}, "task.id": int64(3), "task.order": []int64{3, 1}, "other": 1.5})
	scope.AddEvent("event")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
