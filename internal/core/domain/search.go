package domain

// SortBy selects the ordering requested from the backend.
type SortBy string

// Available sort orders.
const (
	// SortRelevance orders by match relevance.
	SortRelevance SortBy = "relevance"

	// SortLastEdited orders by last edit time, newest first.
	SortLastEdited SortBy = "last_edited"

	// SortCreated orders by creation time, newest first.
	SortCreated SortBy = "created"
)

// IsValid returns true if the sort order is recognised.
func (s SortBy) IsValid() bool {
	switch s {
	case SortRelevance, SortLastEdited, SortCreated:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s SortBy) String() string {
	return string(s)
}

// Description returns a human-readable description of the sort order.
func (s SortBy) Description() string {
	switch s {
	case SortRelevance:
		return "Best matches"
	case SortLastEdited:
		return "Last edited"
	case SortCreated:
		return "Created"
	default:
		return "Unknown"
	}
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// WorkspaceID is the workspace to search in.
	WorkspaceID string

	// Sort is the requested ordering. Empty means SortRelevance.
	Sort SortBy

	// OnlyTitles restricts matches to page titles.
	OnlyTitles bool

	// Limit is the maximum number of hits requested from the backend.
	Limit int

	// SaveToCache persists the result as the workspace's last search.
	SaveToCache bool
}

// SearchRequest is what the search transport sends to the backend.
type SearchRequest struct {
	Query       string
	WorkspaceID string
	Sort        SortBy
	OnlyTitles  bool
	Limit       int
}

// Highlight is the backend's snippet for a hit.
type Highlight struct {
	Text string `json:"text,omitempty"`
}

// Hit is a single matched block in a raw search response.
type Hit struct {
	ID               string     `json:"id"`
	Highlight        *Highlight `json:"highlight,omitempty"`
	HighlightBlockID string     `json:"highlightBlockId,omitempty"`
}

// SearchResponse is the raw backend response.
type SearchResponse struct {
	Results   []Hit     `json:"results"`
	RecordMap RecordMap `json:"recordMap"`
	Total     int       `json:"total"`
}

// IconType discriminates the icon variants.
type IconType string

const (
	// IconImage is an image URL.
	IconImage IconType = "image"

	// IconEmoji is a literal emoji glyph.
	IconEmoji IconType = "emoji"
)

// IconClassSVG tags image icons that point at an SVG asset.
const IconClassSVG = "svg"

// Icon is a display-ready icon.
type Icon struct {
	Type      IconType `json:"type" yaml:"type"`
	Value     string   `json:"value" yaml:"value"`
	ClassName string   `json:"class_name,omitempty" yaml:"class_name,omitempty"`
}

// IsSVG reports whether the icon is an SVG image.
func (i Icon) IsSVG() bool {
	return i.Type == IconImage && i.ClassName == IconClassSVG
}

// Dir is one breadcrumb entry.
type Dir struct {
	Title     string    `json:"title" yaml:"title"`
	Record    RecordRef `json:"record" yaml:"record"`
	TableType TableType `json:"table_type" yaml:"table_type"`
}

// Item is a display-ready search result.
type Item struct {
	Title     string    `json:"title" yaml:"title"`
	Text      string    `json:"text" yaml:"text"`
	Record    RecordRef `json:"record" yaml:"record"`
	TableType TableType `json:"table_type" yaml:"table_type"`
	Dirs      []Dir     `json:"dirs" yaml:"dirs"`
	URL       string    `json:"url" yaml:"url"`
	Icon      Icon      `json:"icon" yaml:"icon"`
}

// Path returns the breadcrumb titles root-first.
func (i Item) Path() []string {
	path := make([]string, len(i.Dirs))
	for n, d := range i.Dirs {
		path[n] = d.Title
	}
	return path
}

// SearchResult is the resolved outcome of one search.
// Total may exceed len(Items) when the backend caps results.
type SearchResult struct {
	Items []Item `json:"items" yaml:"items"`
	Total int    `json:"total" yaml:"total"`
}

// SearchResultCache is the persisted last search of a workspace.
type SearchResultCache struct {
	Query        string       `json:"query" yaml:"query"`
	SearchResult SearchResult `json:"searchResult" yaml:"search_result"`
}

// Workspace is a workspace the session can search.
type Workspace struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
