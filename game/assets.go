package game

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// AssetKey names a sprite the engine knows how to draw
type AssetKey string

const (
	AssetPlayer     AssetKey = "player"
	AssetEnemyBasic AssetKey = "enemyBasic"
	AssetEnemyFast  AssetKey = "enemyFast"
	AssetEnemyHeavy AssetKey = "enemyHeavy"
	AssetExplosion  AssetKey = "explosion"
)

// defaultSpriteSize is the raster size for vector sprites
const defaultSpriteSize = 64

// DefaultManifest maps every asset key to its file under the asset root
func DefaultManifest() map[AssetKey]string {
	return map[AssetKey]string{
		AssetPlayer:     "player.svg",
		AssetEnemyBasic: "enemy_basic.svg",
		AssetEnemyFast:  "enemy_fast.svg",
		AssetEnemyHeavy: "enemy_heavy.svg",
		AssetExplosion:  "explosion.svg",
	}
}

// Assets is the read-only result of loading a manifest
type Assets struct {
	images map[AssetKey]image.Image
}

// NewAssets wraps already decoded images
func NewAssets(images map[AssetKey]image.Image) *Assets {
	return &Assets{images: images}
}

// Get returns the image for key, or nil when it is unknown. Safe on a nil *Assets.
func (a *Assets) Get(key AssetKey) image.Image {
	if a == nil {
		return nil
	}
	return a.images[key]
}

// Len returns the number of resolved images
func (a *Assets) Len() int {
	if a == nil {
		return 0
	}
	return len(a.images)
}

// AssetManager loads sprites from a file system
type AssetManager struct {
	fsys     fs.FS
	manifest map[AssetKey]string

	// SpriteSize is the raster size used for SVG sprites
	SpriteSize int

	// UsePlaceholders substitutes a generated image for every asset that fails to load
	UsePlaceholders bool

	// DebugDir, when set, receives a PNG copy of every resolved sprite
	DebugDir string

	// Parallelism caps the number of concurrent decodes, 0 means unlimited
	Parallelism int

	loaded atomic.Int32
	total  int32
}

// NewAssetManager creates a manager for manifest, resolved against fsys
func NewAssetManager(fsys fs.FS, manifest map[AssetKey]string) *AssetManager {
	return &AssetManager{
		fsys:            fsys,
		manifest:        manifest,
		SpriteSize:      defaultSpriteSize,
		UsePlaceholders: true,
		Parallelism:     runtime.NumCPU(),
		total:           int32(len(manifest)),
	}
}

// LoadAll loads every asset of the manifest, at most Parallelism at a time. Individual failures are logged
// and either replaced by a placeholder or left out, so LoadAll itself never fails.
func (m *AssetManager) LoadAll(ctx context.Context) *Assets {
	m.loaded.Store(0)

	var mu sync.Mutex
	images := make(map[AssetKey]image.Image, len(m.manifest))

	g, ctx := errgroup.WithContext(ctx)
	if m.Parallelism > 0 {
		g.SetLimit(m.Parallelism)
	}
	for key, name := range m.manifest {
		key, name := key, name
		g.Go(func() error {
			defer m.loaded.Add(1)

			img, err := m.load(ctx, name)
			if err != nil {
				log.Printf("Failed to load asset %q from %s: %v", key, name, err)
				if !m.UsePlaceholders {
					return nil
				}
				img = newPlaceholderImage(key)
			}

			if m.DebugDir != "" {
				if err := saveDebugPNG(img, m.DebugDir, string(key)); err != nil {
					log.Printf("Failed to dump sprite %q: %v", key, err)
				}
			}

			mu.Lock()
			images[key] = img
			mu.Unlock()
			return nil
		})
	}
	// Workers log and absorb their own failures, Wait only joins them
	g.Wait()

	log.Printf("Loaded %d/%d assets", len(images), len(m.manifest))
	return NewAssets(images)
}

// load reads and decodes one file
func (m *AssetManager) load(ctx context.Context, name string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.fsys == nil {
		return nil, fmt.Errorf("read %s: %w", name, fs.ErrNotExist)
	}
	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return decodeSprite(name, data, m.SpriteSize)
}

// Progress returns the fraction of assets attempted so far, 1 for an empty manifest
func (m *AssetManager) Progress() float64 {
	if m.total == 0 {
		return 1
	}
	return float64(m.loaded.Load()) / float64(m.total)
}
