// package tagrt holds definitions shared across the runtime's packages.
package tagrt

import (
	"lukechampine.com/blake3"

	"myceliumweb.org/tagrt/internal/cadata"
)

// Hash calculates the content ID of x.
func Hash(x []byte) (ret cadata.ID) {
	h := blake3.New(32, nil)
	h.Write(x)
	h.Sum(ret[:0])
	return ret
}
