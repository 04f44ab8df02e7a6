package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultHost, s.Notion.Host)
	assert.Equal(t, SortRelevance, s.Search.Sort)
	assert.Equal(t, 50, s.Search.Limit)
	assert.True(t, s.Search.Cache)
	assert.Equal(t, 150*time.Millisecond, s.Search.Debounce)
	assert.Equal(t, 40, s.Display.IconWidth)
	assert.Equal(t, "gzkNfoUU", s.Highlight.BackendTag)
	assert.Equal(t, "mark", s.Highlight.Tag)
	assert.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"bad host", func(s *Settings) { s.Notion.Host = "notion.so" }},
		{"bad sort", func(s *Settings) { s.Search.Sort = "alphabetical" }},
		{"zero limit", func(s *Settings) { s.Search.Limit = 0 }},
		{"zero icon width", func(s *Settings) { s.Display.IconWidth = 0 }},
		{"empty tag", func(s *Settings) { s.Highlight.Tag = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
		})
	}
}

func TestSettings_HasSession(t *testing.T) {
	s := DefaultSettings()
	assert.False(t, s.HasSession())

	s.Notion.Token = "v02:abc"
	assert.True(t, s.HasSession())
}

func TestSettings_SearchOptions(t *testing.T) {
	s := DefaultSettings()
	s.Notion.WorkspaceID = "ws-1"
	s.Search.OnlyTitles = true

	opts := s.SearchOptions()

	assert.Equal(t, SearchOptions{
		WorkspaceID: "ws-1",
		Sort:        SortRelevance,
		OnlyTitles:  true,
		Limit:       50,
		SaveToCache: true,
	}, opts)
}
