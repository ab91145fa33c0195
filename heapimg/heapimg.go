// package heapimg encodes heap images.
//
// A heap image is a snapshot of one run of compiled code: the words of its heap and the word its entry routine returned.
// Replaying an image through the driver prints exactly what the recorded run printed.
package heapimg

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"go.brendoncarroll.net/exp/slices2"
	"go.brendoncarroll.net/stdctx/logctx"

	"myceliumweb.org/tagrt"
	"myceliumweb.org/tagrt/driver"
	"myceliumweb.org/tagrt/heap"
	"myceliumweb.org/tagrt/internal/cadata"
	"myceliumweb.org/tagrt/spec"
	"myceliumweb.org/tagrt/tagval"
)

type Image struct {
	// Base is the address of the first word.
	Base uint64 `cbor:"base"`
	// Words are the contents of the heap.
	Words []uint64 `cbor:"words"`
	// Result is the word returned by the entry routine.
	Result uint64 `cbor:"result"`
	// Raised is true if the program called the error hook instead of returning.
	Raised bool `cbor:"raised,omitempty"`
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("heapimg: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// FromHeap snapshots the allocated part of h.
func FromHeap(h *heap.Heap, result tagval.Value) *Image {
	ws := h.Words()[:h.Used()]
	return &Image{
		Base:   h.Base,
		Words:  slices2.Map(ws, func(x tagval.Value) uint64 { return uint64(x) }),
		Result: uint64(result),
	}
}

// Marshal serializes an Image to canonical CBOR.
func Marshal(img *Image) ([]byte, error) {
	return encMode.Marshal(img)
}

// Unmarshal deserializes an Image from CBOR.
func Unmarshal(data []byte) (*Image, error) {
	var img Image
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("heapimg: unmarshal image: %w", err)
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return &img, nil
}

func (img *Image) Validate() error {
	if img.Base%spec.WordBytes != 0 {
		return fmt.Errorf("heapimg: base %#x is not word aligned", img.Base)
	}
	return nil
}

// ID returns the content ID of the image's canonical encoding.
func (img *Image) ID() (cadata.ID, error) {
	data, err := Marshal(img)
	if err != nil {
		return cadata.ID{}, err
	}
	return tagrt.Hash(data), nil
}

// Root returns the result word.
func (img *Image) Root() tagval.Value {
	return tagval.Value(img.Result)
}

// Heap returns a heap holding a copy of the image's words.
func (img *Image) Heap() *heap.Heap {
	return heap.FromWords(img.Base, slices2.Map(img.Words, func(x uint64) tagval.Value { return tagval.Value(x) }))
}

// Check validates everything reachable from the result.
func (img *Image) Check() error {
	if img.Raised {
		return nil
	}
	return img.Heap().Check(img.Root())
}

// Entry returns an entry routine that replays the image.
// It loads the words into the runtime's heap at the image's base, then returns the result or raises.
func (img *Image) Entry() driver.Entry {
	return func(rt *driver.Runtime) (tagval.Value, error) {
		h := rt.Heap()
		logctx.Infof(rt.Context(), "replaying image base=%#x words=%d raised=%v", img.Base, len(img.Words), img.Raised)
		if len(img.Words) > h.Len() {
			return 0, ErrTooLarge{Words: len(img.Words), HeapWords: h.Len()}
		}
		h.Base = img.Base
		addr, err := h.Alloc(len(img.Words) * spec.WordBytes)
		if err != nil {
			return 0, err
		}
		for i, w := range img.Words {
			if err := h.Store(addr+uint64(i*spec.WordBytes), tagval.Value(w)); err != nil {
				return 0, err
			}
		}
		if img.Raised {
			rt.Raise()
		}
		return img.Root(), nil
	}
}

// ErrTooLarge is returned when an image does not fit in the configured heap.
type ErrTooLarge struct {
	Words     int
	HeapWords int
}

func (e ErrTooLarge) Error() string {
	return fmt.Sprintf("heapimg: image has %d words, heap only has %d", e.Words, e.HeapWords)
}
