package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

// uintPtr and boolPtr return pointers for ansi.StyleConfig fields.
func uintPtr(u uint) *uint { return &u }
func boolPtr(b bool) *bool { return &b }

// markdownColors holds the resolved palette for markdown rendering.
type markdownColors struct {
	text    string
	muted   string
	heading string
	emph    string
	link    string
	code    string
}

func resolveMarkdownColors() markdownColors {
	if isDarkBg {
		return markdownColors{
			text: "#F9FAFB", muted: "#9CA3AF", heading: "#22D3EE",
			emph: "#FDE047", link: "#60A5FA", code: "#D1D5DB",
		}
	}
	return markdownColors{
		text: "#1F2937", muted: "#6B7280", heading: "#0891B2",
		emph: "#D97706", link: "#2563EB", code: "#374151",
	}
}

// markdownStyleConfig builds the glamour style for answer rendering,
// with document margins removed so blocks compose cleanly.
func markdownStyleConfig() ansi.StyleConfig {
	cs := resolveMarkdownColors()

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: &cs.text},
			Margin:         uintPtr(0),
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:  &cs.muted,
				Italic: boolPtr(true),
				Prefix: "┃ ",
			},
			Indent: uintPtr(1),
		},
		List: ansi.StyleList{
			LevelIndent: 0,
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: &cs.text},
			},
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       &cs.heading,
				Bold:        boolPtr(true),
			},
		},
		Emph: ansi.StylePrimitive{
			Color:  &cs.emph,
			Italic: boolPtr(true),
		},
		Strong: ansi.StylePrimitive{
			Bold:  boolPtr(true),
			Color: &cs.text,
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
			Color:       &cs.text,
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
			Color:       &cs.text,
		},
		Link: ansi.StylePrimitive{
			Color:     &cs.link,
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: &cs.link,
			Bold:  boolPtr(true),
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: &cs.code},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: &cs.code},
				Margin:         uintPtr(0),
			},
		},
		Text: ansi.StylePrimitive{
			Color: &cs.text,
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: &cs.text},
		},
	}
}

// toMarkdown renders markdown content for the terminal using glamour.
func toMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyleConfig()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSuffix(rendered, "\n")
}
