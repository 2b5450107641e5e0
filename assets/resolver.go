package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/soocke/overlay-go/domain/overlay"
)

const defaultCacheSize = 64

// Resolver serves decoration images per object id. An image named
// "<id>.png" in the override directory wins over the default.
type Resolver struct {
	dir      string
	fallback image.Image
	cache    *lru.Cache[int, image.Image]
	logger   *slog.Logger
}

var _ overlay.DecorationResolver = (*Resolver)(nil)

// NewResolver builds a resolver. fallback may be nil, in which case ids
// without an override resolve to nothing.
func NewResolver(dir string, fallback image.Image, cacheSize int, logger *slog.Logger) (*Resolver, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := lru.New[int, image.Image](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("decoration cache: %w", err)
	}
	return &Resolver{dir: dir, fallback: fallback, cache: cache, logger: logger}, nil
}

// NewDefaultResolver uses the embedded decoration as fallback.
func NewDefaultResolver(dir string, cacheSize int, logger *slog.Logger) (*Resolver, error) {
	img, err := DecorationImage()
	if err != nil {
		return nil, err
	}
	return NewResolver(dir, img, cacheSize, logger)
}

// ResolveDecoration returns the image for id, loading and caching it on
// first use.
func (r *Resolver) ResolveDecoration(id int) (image.Image, bool) {
	if r == nil {
		return nil, false
	}
	if img, ok := r.cache.Get(id); ok {
		return img, img != nil
	}
	img := r.load(id)
	r.cache.Add(id, img)
	return img, img != nil
}

func (r *Resolver) load(id int) image.Image {
	if r.dir == "" {
		return r.fallback
	}
	path := filepath.Join(r.dir, strconv.Itoa(id)+".png")
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("decoration load failed", "path", path, "error", err)
		}
		return r.fallback
	}
	return img
}

// Cached reports how many ids have been resolved and kept.
func (r *Resolver) Cached() int { return r.cache.Len() }
