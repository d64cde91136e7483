// README: Assist service; natural-language estimate explanations.
package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyPrompt = errors.New("prompt is required")

// systemPrompt frames every request as an e-Toll comparison explanation.
const systemPrompt = "You are an e-Toll estimator assistant. Follow the e-Toll Cost Comparison " +
	"template. If Unlimited is cheaper, include the saving line; if Standard is cheaper, say so."

// Provider is the contract for the underlying language model, so a stub can
// replace Gemini in tests.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service answers free-form questions about an estimate.
type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Explain runs the user's prompt through the model under the e-Toll system
// prompt and returns the answer text.
func (s *Service) Explain(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	return s.provider.Generate(ctx, fmt.Sprintf("%s\n\nUser question: %s", systemPrompt, prompt))
}
