package notion

import (
	"fmt"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

const (
	searchType   = "BlocksInSpace"
	searchSource = "quick_find_input_change"
)

// searchBody is the /search request payload.
type searchBody struct {
	Type    string        `json:"type"`
	Query   string        `json:"query"`
	SpaceID string        `json:"spaceId"`
	Limit   int           `json:"limit"`
	Filters searchFilters `json:"filters"`
	Sort    sortOptions   `json:"sort"`
	Source  string        `json:"source"`
}

type searchFilters struct {
	IsDeletedOnly             bool           `json:"isDeletedOnly"`
	ExcludeTemplates          bool           `json:"excludeTemplates"`
	IsNavigableOnly           bool           `json:"isNavigableOnly"`
	RequireEditPermissions    bool           `json:"requireEditPermissions"`
	Ancestors                 []string       `json:"ancestors"`
	CreatedBy                 []string       `json:"createdBy"`
	EditedBy                  []string       `json:"editedBy"`
	LastEditedTime            map[string]any `json:"lastEditedTime"`
	CreatedTime               map[string]any `json:"createdTime"`
	NavigableBlockContentOnly bool           `json:"navigableBlockContentOnly,omitempty"`
}

type sortOptions struct {
	Field     string `json:"field"`
	Direction string `json:"direction,omitempty"`
}

// sortFor maps a sort order onto the API sort options.
func sortFor(s domain.SortBy) (sortOptions, error) {
	switch s {
	case domain.SortRelevance:
		return sortOptions{Field: "relevance"}, nil
	case domain.SortLastEdited:
		return sortOptions{Field: "lastEdited", Direction: "desc"}, nil
	case domain.SortCreated:
		return sortOptions{Field: "created", Direction: "desc"}, nil
	default:
		return sortOptions{}, fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
}

// newSearchBody builds the request payload. spaceID must already be
// normalised.
func newSearchBody(req domain.SearchRequest, spaceID string) (*searchBody, error) {
	sort, err := sortFor(req.Sort)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	return &searchBody{
		Type:    searchType,
		Query:   req.Query,
		SpaceID: spaceID,
		Limit:   limit,
		Filters: searchFilters{
			Ancestors:                 []string{},
			CreatedBy:                 []string{},
			EditedBy:                  []string{},
			LastEditedTime:            map[string]any{},
			CreatedTime:               map[string]any{},
			NavigableBlockContentOnly: req.OnlyTitles,
		},
		Sort:   sort,
		Source: searchSource,
	}, nil
}
