package services

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/quickfind/internal/core/domain"
	"github.com/custodia-labs/quickfind/internal/core/ports/driven"
	"github.com/custodia-labs/quickfind/internal/logger"
)

// DefaultIconAsset is the asset shown for records without an icon.
const DefaultIconAsset = "page.svg"

// Resolver turns raw search responses into display-ready results.
// It holds no per-call state and is safe for concurrent use.
type Resolver struct {
	host        string
	iconWidth   int
	assets      driven.AssetResolver
	highlighter *Highlighter
}

// NewResolver creates a resolver for the given settings.
// assets may be nil, in which case the default icon is the bare asset name.
func NewResolver(settings domain.Settings, assets driven.AssetResolver) *Resolver {
	host := strings.TrimRight(settings.Notion.Host, "/")
	if host == "" {
		host = domain.DefaultHost
	}
	width := settings.Display.IconWidth
	if width <= 0 {
		width = domain.DefaultIconWidth
	}

	return &Resolver{
		host:        host,
		iconWidth:   width,
		assets:      assets,
		highlighter: NewHighlighter(settings.Highlight.BackendTag, settings.Highlight.Tag),
	}
}

// Highlighter returns the highlighter used for titles and snippets.
func (r *Resolver) Highlighter() *Highlighter {
	return r.highlighter
}

// Resolve builds the display items for every hit in resp. Hits whose own
// record cannot be resolved are logged and skipped.
func (r *Resolver) Resolve(resp *domain.SearchResponse, query string) *domain.SearchResult {
	result := &domain.SearchResult{Items: []domain.Item{}}
	if resp == nil {
		return result
	}
	result.Total = resp.Total

	logger.Section("Result Resolution")
	logger.Debug("Hits: %d, total: %d", len(resp.Results), resp.Total)

	match := r.highlighter.ForQuery(strings.TrimSpace(query))

	for _, hit := range resp.Results {
		item, err := r.resolveHit(hit, &resp.RecordMap, match)
		if err != nil {
			logRecordError(err, hit.ID, domain.TableBlock)
			continue
		}
		result.Items = append(result.Items, *item)
	}

	logger.Info("Resolved %d of %d hits", len(result.Items), len(resp.Results))
	return result
}

func (r *Resolver) resolveHit(hit domain.Hit, recordMap *domain.RecordMap, match *Matcher) (*domain.Item, error) {
	block, err := CreateBlock(hit.ID, recordMap)
	if err != nil {
		return nil, err
	}

	title := TextNoTitle
	if t, ok := block.Title(); ok {
		title = match.Apply(t)
	}

	text := ""
	if hit.Highlight != nil {
		text = hit.Highlight.Text
	}

	dirs := []domain.Dir{}
	if parent := block.Parent(); !parent.IsWorkspace {
		dirs = ResolveDirs(parent.ID, parent.TableType, recordMap)
	}

	icon, hasIcon := block.Icon()

	return &domain.Item{
		Title:     title,
		Text:      match.Apply(text),
		Record:    domain.RefOf(block),
		TableType: domain.TableBlock,
		Dirs:      dirs,
		URL:       r.URL(hit.ID, hit.HighlightBlockID),
		Icon:      r.ClassifyIcon(hit.ID, icon, hasIcon),
	}, nil
}

// URL returns the page URL for id, anchored at highlightBlockID if set.
func (r *Resolver) URL(id, highlightBlockID string) string {
	u := r.host + "/" + strings.ReplaceAll(id, "-", "")
	if highlightBlockID != "" {
		u += "#" + strings.ReplaceAll(highlightBlockID, "-", "")
	}
	return u
}

// ClassifyIcon turns a raw icon value of the block id into a display icon.
//
//   - absent: the default page image
//   - http(s) URL: proxied through the host image endpoint
//   - root-relative path: served from the host, tagged when it is an SVG
//   - anything else: a literal emoji
func (r *Resolver) ClassifyIcon(id, icon string, ok bool) domain.Icon {
	width := strconv.Itoa(r.iconWidth)

	switch {
	case !ok || icon == "":
		return domain.Icon{Type: domain.IconImage, Value: r.defaultIcon()}

	case strings.HasPrefix(icon, "http://") || strings.HasPrefix(icon, "https://"):
		return domain.Icon{
			Type: domain.IconImage,
			Value: r.host + "/image/" + encodeURIComponent(icon) +
				"?table=" + string(domain.TableBlock) +
				"&id=" + id +
				"&width=" + width,
		}

	case strings.HasPrefix(icon, "/"):
		sep := "?"
		if strings.Contains(icon, "?") {
			sep = "&"
		}
		classified := domain.Icon{
			Type:  domain.IconImage,
			Value: r.host + icon + sep + "width=" + width,
		}
		if path, _, _ := strings.Cut(icon, "?"); strings.HasSuffix(path, ".svg") {
			classified.ClassName = domain.IconClassSVG
		}
		return classified

	default:
		return domain.Icon{Type: domain.IconEmoji, Value: icon}
	}
}

func (r *Resolver) defaultIcon() string {
	if r.assets == nil {
		return DefaultIconAsset
	}
	if u := r.assets.URL(DefaultIconAsset); u != "" {
		return u
	}
	return DefaultIconAsset
}

var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes s the way browsers escape URI components.
func encodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}
