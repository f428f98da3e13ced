package gemini

import "context"

// IGemini defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// AnalyzePaper scores a paper's relevance to the thesis topic and
	// returns a short Turkish summary plus tags.
	AnalyzePaper(ctx context.Context, input AnalyzeInput) (Analysis, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new Gemini client with the given configuration.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
