package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestHoneycombEnv(t *testing.T) {
	tests := []struct {
		name        string
		apiKey      string
		dataset     string
		wantHeaders string
	}{
		{"no key", "", "", ""},
		{"default dataset", "abc", "", "x-honeycomb-team=abc,x-honeycomb-dataset=tehon"},
		{"custom dataset", "abc", "dev", "x-honeycomb-team=abc,x-honeycomb-dataset=dev"},
	}

	for _, tt := range tests {
		env := HoneycombEnv(tt.apiKey, tt.dataset)
		if env["OTEL_EXPORTER_OTLP_ENDPOINT"] != "https://api.honeycomb.io" {
			t.Errorf("%s: endpoint = %q", tt.name, env["OTEL_EXPORTER_OTLP_ENDPOINT"])
		}
		if got := env["OTEL_EXPORTER_OTLP_HEADERS"]; got != tt.wantHeaders {
			t.Errorf("%s: headers = %q, want %q", tt.name, got, tt.wantHeaders)
		}
	}
}

func TestDisabledTracer(t *testing.T) {
	Disable()
	_, span := Tracer("test").Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Error("span from disabled provider should have an invalid context")
	}
	span.End()
}

func TestNewResource(t *testing.T) {
	res, err := newResource(context.Background(), attribute.Int64("game.seed", 42))
	if err != nil {
		t.Fatalf("newResource() error: %v", err)
	}

	set := res.Set()
	if v, ok := set.Value("service.name"); !ok || v.AsString() != "tehon" {
		t.Errorf("service.name = %v, want tehon", v.AsString())
	}
	if v, ok := set.Value("game.seed"); !ok || v.AsInt64() != 42 {
		t.Errorf("game.seed = %v, want 42", v.AsInt64())
	}
}
