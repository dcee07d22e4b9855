// builtins.go defines the skills shipped with nanobot.
//
// Each skill is a plain Go function; the skill wrapper derives the tool
// name, parameter schema and argument conversion from the signature.
// These double as working examples for writing new skills.

package skill

import (
	"fmt"
	"strings"

	"github.com/themavik/nanobot/internal/match"
	"github.com/themavik/nanobot/internal/skill"
	"github.com/themavik/nanobot/internal/tool"
)

// builtinTools wraps the built-in skill functions as tools.
func builtinTools() []tool.Tool {
	return []tool.Tool{
		skill.MustNew("text", skill.Func{
			Name:        "count",
			Description: "Count the lines, words and bytes in a piece of text.",
			Params: []skill.Param{
				{Name: "text", Description: "The text to measure"},
			},
			Fn: textCount,
		}),
		skill.MustNew("text", skill.Func{
			Name:        "head",
			Description: "Return the first n lines of a piece of text.",
			Params: []skill.Param{
				{Name: "text", Description: "The text to take lines from"},
				{Name: "n", Description: "Number of lines to return", Optional: true},
			},
			Fn: textHead,
		}),
	}
}

func textCount(text string) string {
	lines := len(match.Lines(text))
	words := len(strings.Fields(text))
	return fmt.Sprintf("%d lines, %d words, %d bytes", lines, words, len(text))
}

func textHead(text string, n int) string {
	if n <= 0 {
		n = 10
	}
	lines := match.Lines(text)
	if n > len(lines) {
		n = len(lines)
	}
	return strings.TrimRight(strings.Join(lines[:n], ""), "\n")
}
