package evalsrvc

import (
	"context"
	"log/slog"
)

// TextGenerator is the LLM surface the evaluation service needs. The
// Gemini client implements it; tests substitute a fake.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// EvalSrvc scores candidate answers and produces end-of-interview
// reports. When no generator is configured (no GEMINI_API_KEY) every
// operation falls back to the deterministic rule-based path.
type EvalSrvc struct {
	logger *slog.Logger
	gen    TextGenerator // nil means rule-based only
}

func NewEvalSrvc(gen TextGenerator) *EvalSrvc {
	return &EvalSrvc{
		logger: slog.Default().With("module", "eval"),
		gen:    gen,
	}
}
