package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortBy_IsValid(t *testing.T) {
	assert.True(t, SortRelevance.IsValid())
	assert.True(t, SortLastEdited.IsValid())
	assert.True(t, SortCreated.IsValid())
	assert.False(t, SortBy("alphabetical").IsValid())
	assert.False(t, SortBy("").IsValid())
}

func TestSortBy_Description(t *testing.T) {
	assert.Equal(t, "Best matches", SortRelevance.Description())
	assert.Equal(t, "Unknown", SortBy("x").Description())
}

func TestSearchResponse_Unmarshal(t *testing.T) {
	raw := `{
		"results": [
			{"id": "b1", "highlight": {"text": "dev <gzkNfoUU>notes</gzkNfoUU>"}, "highlightBlockId": "h-1"},
			{"id": "b2"}
		],
		"recordMap": {"block": {"b1": {"value": {"id": "b1", "type": "page"}}}},
		"total": 120
	}`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	require.Len(t, resp.Results, 2)
	assert.Equal(t, "dev <gzkNfoUU>notes</gzkNfoUU>", resp.Results[0].Highlight.Text)
	assert.Equal(t, "h-1", resp.Results[0].HighlightBlockID)
	assert.Nil(t, resp.Results[1].Highlight)
	assert.Equal(t, 120, resp.Total)

	_, ok := resp.RecordMap.LookupBlock("b1")
	assert.True(t, ok)
}

func TestItem_Path(t *testing.T) {
	item := Item{
		Dirs: []Dir{{Title: "Home"}, {Title: "Projects"}},
	}

	assert.Equal(t, []string{"Home", "Projects"}, item.Path())
	assert.Empty(t, Item{}.Path())
}

func TestIcon_IsSVG(t *testing.T) {
	assert.True(t, Icon{Type: IconImage, ClassName: IconClassSVG}.IsSVG())
	assert.False(t, Icon{Type: IconImage}.IsSVG())
	assert.False(t, Icon{Type: IconEmoji, Value: "🍕"}.IsSVG())
}

func TestSearchResultCache_JSONRoundTrip(t *testing.T) {
	cache := SearchResultCache{
		Query: "grade",
		SearchResult: SearchResult{
			Items: []Item{{
				Title:     "<mark>Grade</mark> Calculator",
				Record:    RecordRef{ID: "b1", Kind: RecordKindBlock, BlockType: BlockPage},
				TableType: TableBlock,
				Dirs:      []Dir{},
				URL:       "https://www.notion.so/b1",
				Icon:      Icon{Type: IconEmoji, Value: "🍕"},
			}},
			Total: 1,
		},
	}

	data, err := json.Marshal(cache)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"searchResult"`)

	var decoded SearchResultCache
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, cache, decoded)
}
