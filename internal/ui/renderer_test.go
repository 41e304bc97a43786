package ui

import (
	"strings"
	"testing"

	"plx/internal/api"
)

func TestGlowRendererAnswer(t *testing.T) {
	r := NewRenderer(true, 80)

	out := r.RenderAnswer("the answer is **42**")
	if !strings.HasPrefix(out, "# Answer\n") {
		t.Errorf("expected markdown heading delimiter, got %q", out)
	}
	if !strings.Contains(out, "the answer is **42**") {
		t.Errorf("expected raw markdown body to pass through, got %q", out)
	}
}

func TestGlowRendererCitationsInOrder(t *testing.T) {
	r := NewRenderer(true, 80)
	citations := []string{
		"https://example.com/first",
		"https://example.com/second",
		"https://example.com/third",
	}

	out := r.RenderCitations(citations)
	if !strings.Contains(out, "## Citations") {
		t.Errorf("expected citations heading, got %q", out)
	}

	lastIdx := -1
	for _, c := range citations {
		idx := strings.Index(out, c)
		if idx == -1 {
			t.Fatalf("citation %q missing from output %q", c, out)
		}
		if idx < lastIdx {
			t.Errorf("citation %q out of order in %q", c, out)
		}
		lastIdx = idx
	}
}

func TestGlowRendererUsageVerbatim(t *testing.T) {
	r := NewRenderer(true, 80)
	usage := &api.Usage{PromptTokens: 17, CompletionTokens: 245, TotalTokens: 262}

	out := r.RenderUsage(usage)
	for _, want := range []string{"prompt_tokens: 17", "completion_tokens: 245", "total_tokens: 262"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in usage output, got %q", want, out)
		}
	}
}

func TestStyledRendererUsageVerbatim(t *testing.T) {
	r := NewRenderer(false, 80)
	usage := &api.Usage{PromptTokens: 3, CompletionTokens: 5, TotalTokens: 8}

	out := r.RenderUsage(usage)
	for _, want := range []string{"prompt_tokens: 3", "completion_tokens: 5", "total_tokens: 8"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in usage output, got %q", want, out)
		}
	}
}

func TestStyledRendererCitationsInOrder(t *testing.T) {
	r := NewRenderer(false, 80)
	citations := []string{"https://a.example", "https://b.example"}

	out := r.RenderCitations(citations)
	first := strings.Index(out, "a.example")
	second := strings.Index(out, "b.example")
	if first == -1 || second == -1 {
		t.Fatalf("citations missing from output %q", out)
	}
	if second < first {
		t.Error("citations rendered out of order")
	}
}

func TestModesDiffer(t *testing.T) {
	styled := NewRenderer(false, 80)
	glow := NewRenderer(true, 80)

	answer := "plain answer"
	styledOut := styled.RenderAnswer(answer)
	glowOut := glow.RenderAnswer(answer)

	if styledOut == glowOut {
		t.Error("expected styled and glow output to differ for the same input")
	}
	if !strings.Contains(glowOut, "# Answer") {
		t.Errorf("expected glow mode to contain markdown delimiters, got %q", glowOut)
	}
}
