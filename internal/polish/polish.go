// Package polish provides the on-demand text improvement call applied to one
// field's value. It is a best-effort collaborator: any failure resolves to
// the original text, never to an error.
package polish

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-site/internal/llm"
	"github.com/jonathan/resume-site/internal/prompts"
)

// Service wraps the LLM client behind the polish contract.
type Service struct {
	client llm.Client
}

// NewService creates a polish service. An empty API key disables the service:
// every Polish call then returns its input unchanged without any outbound
// call. A client construction failure is treated the same way, logged for
// diagnostics only.
func NewService(ctx context.Context, apiKey string) *Service {
	if apiKey == "" {
		return &Service{}
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		log.Printf("polish: disabled, failed to create LLM client: %v", err)
		return &Service{}
	}
	return &Service{client: client}
}

// NewServiceWithClient creates a polish service around an existing client.
// Used by tests to substitute a fake.
func NewServiceWithClient(client llm.Client) *Service {
	return &Service{client: client}
}

// Enabled reports whether polish requests will reach the LLM.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Polish rewrites text to sound more professional, using fieldContext to
// steer the model (e.g. "Professional summary"). On any failure — service
// disabled, request error, empty response — the original text is returned
// unchanged.
//
// Polish is not serialized per field: if two calls for the same field are in
// flight, the caller that applies its result last wins.
func (s *Service) Polish(ctx context.Context, text, fieldContext string) string {
	if s.client == nil {
		return text
	}

	prompt := prompts.Format(prompts.MustGet("polish.json", "polish_field"), map[string]string{
		"Context": fieldContext,
		"Text":    text,
	})

	polished, err := s.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("polish: generate failed, keeping original text: %v", err)
		return text
	}

	polished = strings.TrimSpace(polished)
	if polished == "" {
		return text
	}
	return polished
}

// PolishBullets polishes each bullet independently and returns the results in
// input order. Bullets are processed concurrently; a failed bullet keeps its
// original text, so the returned slice always has len(bullets) entries.
func (s *Service) PolishBullets(ctx context.Context, bullets []string, fieldContext string) []string {
	out := make([]string, len(bullets))
	copy(out, bullets)
	if s.client == nil || len(bullets) == 0 {
		return out
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, bullet := range bullets {
		g.Go(func() error {
			out[i] = s.Polish(ctx, bullet, fieldContext)
			return nil
		})
	}
	_ = g.Wait() // Polish never returns an error
	return out
}

// Close releases the underlying client, if any.
func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
