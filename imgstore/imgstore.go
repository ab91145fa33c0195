// package imgstore saves heap images under names.
package imgstore

import (
	"context"
	"fmt"

	"go.brendoncarroll.net/tai64"

	"myceliumweb.org/tagrt/heapimg"
	"myceliumweb.org/tagrt/internal/cadata"
)

// Entry describes a stored image.
type Entry struct {
	Name      string
	ID        cadata.ID
	CreatedAt tai64.TAI64N
}

type Store interface {
	// Put saves img under name, replacing any image already there.
	Put(ctx context.Context, name string, img *heapimg.Image) (Entry, error)
	// Get returns the image saved under name.
	Get(ctx context.Context, name string) (*heapimg.Image, error)
	// List returns every entry, ordered by name.
	List(ctx context.Context) ([]Entry, error)
	// Delete removes the image saved under name.
	Delete(ctx context.Context, name string) error
}

type ErrNotFound struct {
	Name string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("no image named %q", e.Name)
}

func encode(name string, img *heapimg.Image) (Entry, []byte, error) {
	if name == "" {
		return Entry{}, nil, fmt.Errorf("image name cannot be empty")
	}
	data, err := heapimg.Marshal(img)
	if err != nil {
		return Entry{}, nil, err
	}
	id, err := img.ID()
	if err != nil {
		return Entry{}, nil, err
	}
	return Entry{Name: name, ID: id, CreatedAt: tai64.Now()}, data, nil
}
