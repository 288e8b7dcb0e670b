package polish

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-site/internal/llm"
)

// fakeClient rewrites text deterministically, or fails every call.
type fakeClient struct {
	mu       sync.Mutex
	fail     bool
	response string
	prompts  []string
}

func (c *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.mu.Lock()
	c.prompts = append(c.prompts, prompt)
	c.mu.Unlock()
	if c.fail {
		return "", fmt.Errorf("quota exceeded")
	}
	if c.response != "" {
		return c.response, nil
	}
	return "polished: " + lastLine(prompt), nil
}

func (c *fakeClient) GetModel(_ llm.ModelTier) string { return "fake" }
func (c *fakeClient) Close() error                    { return nil }

func lastLine(prompt string) string {
	lines := strings.Split(strings.TrimSpace(prompt), "\n")
	return lines[len(lines)-1]
}

func TestNewService_EmptyKeyDisables(t *testing.T) {
	s := NewService(context.Background(), "")
	assert.False(t, s.Enabled())
	assert.Equal(t, "hello", s.Polish(context.Background(), "hello", "Professional summary"))
	assert.NoError(t, s.Close())
}

func TestPolish_UsesClientResponse(t *testing.T) {
	client := &fakeClient{response: "Crafted a better sentence."}
	s := NewServiceWithClient(client)

	got := s.Polish(context.Background(), "wrote stuff", "Professional summary")
	assert.Equal(t, "Crafted a better sentence.", got)
}

func TestPolish_PromptCarriesTextAndContext(t *testing.T) {
	client := &fakeClient{response: "ok"}
	s := NewServiceWithClient(client)

	s.Polish(context.Background(), "wrote stuff", "Work experience bullet")

	assert.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "wrote stuff")
	assert.Contains(t, client.prompts[0], "Work experience bullet")
}

func TestPolish_FailureReturnsOriginal(t *testing.T) {
	s := NewServiceWithClient(&fakeClient{fail: true})
	got := s.Polish(context.Background(), "keep me", "Professional summary")
	assert.Equal(t, "keep me", got)
}

func TestPolish_BlankResponseReturnsOriginal(t *testing.T) {
	s := NewServiceWithClient(&fakeClient{response: "  \n "})
	got := s.Polish(context.Background(), "keep me", "Professional summary")
	assert.Equal(t, "keep me", got)
}

func TestPolishBullets_PreservesOrder(t *testing.T) {
	s := NewServiceWithClient(&fakeClient{response: "improved"})
	bullets := []string{"a", "b", "c", "d", "e", "f"}

	got := s.PolishBullets(context.Background(), bullets, "Work experience bullet")

	assert.Equal(t, []string{"improved", "improved", "improved", "improved", "improved", "improved"}, got)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, bullets, "input slice must not change")
}

func TestPolishBullets_FailureKeepsOriginals(t *testing.T) {
	s := NewServiceWithClient(&fakeClient{fail: true})
	bullets := []string{"first", "second"}

	got := s.PolishBullets(context.Background(), bullets, "Work experience bullet")
	assert.Equal(t, bullets, got)
}

func TestPolishBullets_Disabled(t *testing.T) {
	s := NewService(context.Background(), "")
	bullets := []string{"first", "second"}

	got := s.PolishBullets(context.Background(), bullets, "Work experience bullet")
	assert.Equal(t, bullets, got)
}

func TestPolishBullets_Empty(t *testing.T) {
	s := NewServiceWithClient(&fakeClient{})
	assert.Empty(t, s.PolishBullets(context.Background(), nil, "x"))
}
