package genai

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about one generation call, including retries.
type CallEvent struct {
	Kind         ContentKind
	Provider     ProviderID
	Model        string
	LatencyMs    int64
	Attempts     int
	FallbackUsed bool
	Degraded     bool
	ErrorCode    string
}

// Observer receives events about generation calls for logging and metrics.
type Observer interface {
	OnGenerationComplete(event CallEvent)
}

// LogObserver writes generation events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnGenerationComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	switch {
	case event.FallbackUsed:
		status = "fallback:" + event.ErrorCode
	case event.Degraded:
		status = "degraded"
	}
	fmt.Fprintf(o.w, "[%s] ai_call kind=%s provider=%s model=%s latency_ms=%d attempts=%d status=%s\n",
		ts, event.Kind, event.Provider, event.Model, event.LatencyMs, event.Attempts, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnGenerationComplete(CallEvent) {}
