package vision

import (
	"context"
)

// Client analyzes a fruit image and returns the model's raw JSON reply.
type Client interface {
	AnalyzeImage(ctx context.Context, imageData []byte, contentType string) (string, error)
}

// Analyze runs the full pipeline: model call, JSON parse, label
// normalization. A parse failure degrades to the fallback result
// instead of failing the request.
func Analyze(ctx context.Context, client Client, imageData []byte, contentType string) (Analysis, error) {
	raw, err := client.AnalyzeImage(ctx, imageData, contentType)
	if err != nil {
		return Analysis{}, err
	}

	analysis, err := ParseAnalysis(raw)
	if err != nil {
		return FallbackAnalysis(), nil
	}
	return analysis, nil
}
