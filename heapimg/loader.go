package heapimg

import (
	"os"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"myceliumweb.org/tagrt"
	"myceliumweb.org/tagrt/internal/cadata"
)

// Loader decodes images, remembering recently decoded ones by the hash of their encoding.
// Images returned by a Loader are shared and must not be modified.
type Loader struct {
	mu    sync.Mutex
	cache *simplelru.LRU[cadata.ID, *Image]
}

func NewLoader(size int) *Loader {
	cache, err := simplelru.NewLRU[cadata.ID, *Image](size, nil)
	if err != nil {
		panic(err)
	}
	return &Loader{cache: cache}
}

// Load decodes data, or returns the image already decoded from identical data.
func (l *Loader) Load(data []byte) (*Image, error) {
	key := tagrt.Hash(data)
	l.mu.Lock()
	img, ok := l.cache.Get(key)
	l.mu.Unlock()
	if ok {
		return img, nil
	}
	img, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.cache.Add(key, img)
	l.mu.Unlock()
	return img, nil
}

// LoadFile reads and decodes the image at p.
func (l *Loader) LoadFile(p string) (*Image, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return l.Load(data)
}

// Len returns the number of cached images.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Len()
}
