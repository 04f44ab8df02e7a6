package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Segment is a run of text that is either inside or outside a match tag.
type Segment struct {
	Text    string
	Matched bool
}

// SplitMarked splits text on <tag>...</tag> spans. An unclosed tag marks
// the rest of the text.
func SplitMarked(text, tag string) []Segment {
	if tag == "" {
		return []Segment{{Text: text}}
	}
	open := "<" + tag + ">"
	closing := "</" + tag + ">"

	var segments []Segment
	rest := text
	for rest != "" {
		start := strings.Index(rest, open)
		if start < 0 {
			segments = append(segments, Segment{Text: rest})
			break
		}
		if start > 0 {
			segments = append(segments, Segment{Text: rest[:start]})
		}
		rest = rest[start+len(open):]

		end := strings.Index(rest, closing)
		if end < 0 {
			segments = append(segments, Segment{Text: rest, Matched: true})
			break
		}
		if end > 0 {
			segments = append(segments, Segment{Text: rest[:end], Matched: true})
		}
		rest = rest[end+len(closing):]
	}
	return segments
}

// RenderMarked renders matched spans with match and everything else with base.
func RenderMarked(text, tag string, base, match lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range SplitMarked(text, tag) {
		if seg.Matched {
			b.WriteString(match.Render(seg.Text))
		} else {
			b.WriteString(base.Render(seg.Text))
		}
	}
	return b.String()
}

// Retag rewrites <from>...</from> spans as <to>...</to>. Results for a
// blank query keep the backend's own markup, which is displayed like ours.
func Retag(text, from, to string) string {
	if from == "" || from == to {
		return text
	}
	return strings.NewReplacer(
		"<"+from+">", "<"+to+">",
		"</"+from+">", "</"+to+">",
	).Replace(text)
}

// StripMarked removes the match tags and keeps their content.
func StripMarked(text, tag string) string {
	var b strings.Builder
	for _, seg := range SplitMarked(text, tag) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
