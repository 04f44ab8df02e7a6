package notion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// NormalizeWorkspaceID returns id in hyphenated UUID form. Both the
// hyphenated form and the 32-character form used in page URLs are accepted.
func NormalizeWorkspaceID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidWorkspaceID)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidWorkspaceID, id)
	}
	return parsed.String(), nil
}

// spacesResponse is the /getSpaces payload: per user, a record table of
// the spaces the user belongs to.
type spacesResponse map[string]struct {
	Space map[string]struct {
		Value *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"value"`
	} `json:"space"`
}

// workspaces flattens the response, dropping duplicates across users.
func (r spacesResponse) workspaces() []domain.Workspace {
	seen := make(map[string]struct{})
	var out []domain.Workspace

	for _, user := range r {
		for id, entry := range user.Space {
			if entry.Value == nil {
				continue
			}
			if entry.Value.ID != "" {
				id = entry.Value.ID
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, domain.Workspace{ID: id, Name: entry.Value.Name})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
