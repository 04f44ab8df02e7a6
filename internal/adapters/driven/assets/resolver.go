package assets

import (
	"embed"
	"encoding/base64"
	"io/fs"
	"mime"
	"path"
	"sync"

	"github.com/custodia-labs/quickfind/internal/core/ports/driven"
	"github.com/custodia-labs/quickfind/internal/logger"
)

//go:embed static
var static embed.FS

// Ensure Resolver implements the interface.
var _ driven.AssetResolver = (*Resolver)(nil)

// Resolver resolves asset names to data URLs.
type Resolver struct {
	files fs.FS

	mu    sync.Mutex
	cache map[string]string
}

// NewResolver creates a resolver over the embedded assets.
func NewResolver() *Resolver {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// static is embedded at build time; Sub only fails on invalid names.
		panic(err)
	}
	return NewResolverFS(sub)
}

// NewResolverFS creates a resolver over an arbitrary file system.
func NewResolverFS(files fs.FS) *Resolver {
	return &Resolver{
		files: files,
		cache: make(map[string]string),
	}
}

// URL returns a data URL for the named asset, or "" if it does not exist.
func (r *Resolver) URL(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if url, ok := r.cache[name]; ok {
		return url
	}

	data, err := fs.ReadFile(r.files, name)
	if err != nil {
		logger.Debug("Asset %q not found: %v", name, err)
		return ""
	}

	url := "data:" + contentType(name) + ";base64," + base64.StdEncoding.EncodeToString(data)
	r.cache[name] = url
	return url
}

// Names lists the available assets.
func (r *Resolver) Names() []string {
	var names []string
	_ = fs.WalkDir(r.files, ".", func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	return names
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	}
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
