// Package ui renders API responses for the terminal, either styled with
// lipgloss/glamour or as raw markdown for downstream renderers such as glow.
package ui

import (
	"fmt"
	"strings"

	"plx/internal/api"
)

// Renderer formats the pieces of a response for output. Implementations
// return ready-to-print strings and never write themselves.
type Renderer interface {
	RenderAnswer(answer string) string
	RenderCitations(citations []string) string
	RenderUsage(usage *api.Usage) string
}

// Compile-time checks that both renderers satisfy the Renderer interface.
var _ Renderer = (*StyledRenderer)(nil)
var _ Renderer = (*GlowRenderer)(nil)

// NewRenderer returns the renderer for the selected output mode.
func NewRenderer(glow bool, width int) Renderer {
	if glow {
		return &GlowRenderer{}
	}
	return &StyledRenderer{width: width}
}

// StyledRenderer produces lipgloss-styled blocks with the answer body
// rendered as terminal markdown. This is the default output mode.
type StyledRenderer struct {
	width int
}

// RenderAnswer renders the answer as a bordered block with a styled header
// and glamour-rendered markdown body.
func (r *StyledRenderer) RenderAnswer(answer string) string {
	theme := GetTheme()
	header := StyleHeader(theme).Render("Answer")
	body := toMarkdown(answer, r.width-4)
	return renderContentBlock(header+"\n\n"+body, r.width, theme.Primary)
}

// RenderCitations renders the source list as a bordered block, one line
// per citation in response order.
func (r *StyledRenderer) RenderCitations(citations []string) string {
	theme := GetTheme()
	var b strings.Builder
	b.WriteString(StyleHeader(theme).Render("Citations"))
	b.WriteString("\n")
	for i, c := range citations {
		b.WriteString(fmt.Sprintf("\n%2d. %s", i+1, StyleMuted(theme).Render(c)))
	}
	return renderContentBlock(b.String(), r.width, theme.Info)
}

// RenderUsage renders the token accounting block with the counts from the
// response, verbatim.
func (r *StyledRenderer) RenderUsage(usage *api.Usage) string {
	theme := GetTheme()
	var b strings.Builder
	b.WriteString(StyleHeader(theme).Render("Tokens"))
	b.WriteString(fmt.Sprintf("\n\nprompt_tokens: %d", usage.PromptTokens))
	b.WriteString(fmt.Sprintf("\ncompletion_tokens: %d", usage.CompletionTokens))
	b.WriteString(fmt.Sprintf("\ntotal_tokens: %d", usage.TotalTokens))
	return renderContentBlock(b.String(), r.width, theme.Warning)
}

// GlowRenderer emits raw markdown with heading delimiters, suitable for
// piping into a markdown-aware renderer. No ANSI styling is applied.
type GlowRenderer struct{}

// RenderAnswer emits the answer under a top-level heading, passing the
// model's own markdown through untouched.
func (r *GlowRenderer) RenderAnswer(answer string) string {
	return "# Answer\n\n" + answer + "\n"
}

// RenderCitations emits the source list as a markdown bullet list.
func (r *GlowRenderer) RenderCitations(citations []string) string {
	var b strings.Builder
	b.WriteString("\n## Citations\n\n")
	for _, c := range citations {
		b.WriteString("- " + c + "\n")
	}
	return b.String()
}

// RenderUsage emits the token counts as a markdown bullet list.
func (r *GlowRenderer) RenderUsage(usage *api.Usage) string {
	var b strings.Builder
	b.WriteString("\n## Tokens\n\n")
	b.WriteString(fmt.Sprintf("- prompt_tokens: %d\n", usage.PromptTokens))
	b.WriteString(fmt.Sprintf("- completion_tokens: %d\n", usage.CompletionTokens))
	b.WriteString(fmt.Sprintf("- total_tokens: %d\n", usage.TotalTokens))
	return b.String()
}
