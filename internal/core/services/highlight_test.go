package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

func TestHighlighter_SetMatchTag(t *testing.T) {
	h := NewHighlighter(domain.DefaultBackendHighlight, domain.DefaultHighlightTag)

	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{"single term", "Grade Calculator", "grade", "<mark>Grade</mark> Calculator"},
		{"single character text", "A", "a", "A"},
		{"empty text", "", "grade", ""},
		{"blank query", "Grade Calculator", "   ", "Grade Calculator"},
		{"no match", "Grade Calculator", "notes", "Grade Calculator"},
		{"every occurrence", "go go GO", "go", "<mark>go</mark> <mark>go</mark> <mark>GO</mark>"},
		{"multiple terms", "dev notes", "notes  dev", "<mark>dev</mark> <mark>notes</mark>"},
		{"regex metacharacters", "a+b (c)", "a+b (c)", "<mark>a+b</mark> <mark>(c)</mark>"},
		{"multibyte", "日本語のメモ", "メモ", "日本語の<mark>メモ</mark>"},
		{
			"strips backend markup",
			"<gzkNfoUU>Grade</gzkNfoUU> Calculator",
			"calc",
			"Grade <mark>Calc</mark>ulator",
		},
		{
			"strips existing markup",
			"<mark>Grade</mark> Calculator",
			"grade",
			"<mark>Grade</mark> Calculator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.SetMatchTag(tt.text, tt.query))
		})
	}
}

func TestHighlighter_BlankQueryKeepsMarkup(t *testing.T) {
	h := NewHighlighter(domain.DefaultBackendHighlight, domain.DefaultHighlightTag)

	text := "<gzkNfoUU>Grade</gzkNfoUU>"
	assert.Equal(t, text, h.SetMatchTag(text, ""))
}

func TestHighlighter_CustomTag(t *testing.T) {
	h := NewHighlighter("", "em")

	assert.Equal(t, "em", h.Tag())
	assert.Equal(t, "<em>dev</em> notes", h.SetMatchTag("dev notes", "DEV"))
}

func TestHighlighter_DefaultTag(t *testing.T) {
	h := NewHighlighter("", "")

	assert.Equal(t, domain.DefaultHighlightTag, h.Tag())
}

func TestHighlighter_StripTags(t *testing.T) {
	h := NewHighlighter(domain.DefaultBackendHighlight, domain.DefaultHighlightTag)

	assert.Equal(t, "Grade Calculator", h.StripTags("<mark>Grade</mark> <gzkNfoUU>Calculator</gzkNfoUU>"))
}

func TestHighlighter_ForQueryReuse(t *testing.T) {
	h := NewHighlighter(domain.DefaultBackendHighlight, domain.DefaultHighlightTag)
	m := h.ForQuery("dev")

	assert.Equal(t, "<mark>dev</mark> notes", m.Apply("dev notes"))
	assert.Equal(t, "<mark>Dev</mark>Ops", m.Apply("DevOps"))
}
