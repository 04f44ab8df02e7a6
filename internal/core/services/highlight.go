package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// Highlighter rewrites match markup in titles and snippets.
type Highlighter struct {
	tag   string
	strip *regexp.Regexp
}

// NewHighlighter creates a highlighter that removes backendTag and tag
// markup before wrapping query terms in tag.
func NewHighlighter(backendTag, tag string) *Highlighter {
	if tag == "" {
		tag = domain.DefaultHighlightTag
	}

	tags := []string{regexp.QuoteMeta(tag)}
	if backendTag != "" && backendTag != tag {
		tags = append(tags, regexp.QuoteMeta(backendTag))
	}

	return &Highlighter{
		tag:   tag,
		strip: regexp.MustCompile(`(?i)</?(?:` + strings.Join(tags, "|") + `)>`),
	}
}

// Tag returns the marker element name.
func (h *Highlighter) Tag() string {
	return h.tag
}

// SetMatchTag marks every case-insensitive occurrence of a query term in
// text. Text of one character or less and blank queries are returned as is.
func (h *Highlighter) SetMatchTag(text, query string) string {
	return h.ForQuery(query).Apply(text)
}

// ForQuery compiles the query once for use across a result batch.
func (h *Highlighter) ForQuery(query string) *Matcher {
	m := &Matcher{h: h}

	terms := strings.Fields(query)
	if len(terms) == 0 {
		return m
	}
	for i, term := range terms {
		terms[i] = regexp.QuoteMeta(term)
	}
	m.terms = regexp.MustCompile(`(?i)(` + strings.Join(terms, "|") + `)`)
	return m
}

// Matcher applies one query's match markup.
type Matcher struct {
	h     *Highlighter
	terms *regexp.Regexp
}

// Apply rewrites text for the compiled query.
func (m *Matcher) Apply(text string) string {
	if m.terms == nil || utf8.RuneCountInString(text) <= 1 {
		return text
	}

	stripped := m.h.strip.ReplaceAllString(text, "")
	return m.terms.ReplaceAllString(stripped, "<"+m.h.tag+">${1}</"+m.h.tag+">")
}

// StripTags removes all match markup from text.
func (h *Highlighter) StripTags(text string) string {
	return h.strip.ReplaceAllString(text, "")
}
