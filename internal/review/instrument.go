package review

import (
	"context"

	"github.com/catnipandroid/blog-checker/internal/telemetry"
)

type instrumentedClassifier struct {
	inner   TextClassifier
	metrics *telemetry.Metrics
}

// Instrument wraps a classifier so every call is counted. A nil classifier
// passes through unchanged, keeping the credential-missing behavior intact.
func Instrument(c TextClassifier, m *telemetry.Metrics) TextClassifier {
	if c == nil || m == nil {
		return c
	}
	return &instrumentedClassifier{inner: c, metrics: m}
}

func (ic *instrumentedClassifier) Classify(ctx context.Context, text string) (*Verdict, error) {
	v, err := ic.inner.Classify(ctx, text)
	if err != nil {
		ic.metrics.ObserveLLMCall("error")
	} else {
		ic.metrics.ObserveLLMCall("ok")
	}
	return v, err
}
