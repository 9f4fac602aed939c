package disk

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a disk is described with fewer than one track.
var ErrInvalidSize = errors.New("disk size must be greater than 0")

// Extent describes the track range of a disk surface, [0, Size-1].
type Extent struct {
	Size int // Number of tracks on the surface
}

// NewExtent returns the extent of a disk with size tracks.
func NewExtent(size int) (Extent, error) {
	if size < 1 {
		return Extent{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return Extent{Size: size}, nil
}

// Last returns the highest addressable track.
func (e Extent) Last() int {
	return e.Size - 1
}

// Contains reports whether track lies on the surface.
func (e Extent) Contains(track int) bool {
	return track >= 0 && track < e.Size
}

// Clamp moves an out-of-range track onto the nearest edge of the surface.
func (e Extent) Clamp(track int) int {
	if track < 0 {
		return 0
	}
	if track > e.Last() {
		return e.Last()
	}
	return track
}

// Column maps a track onto a line of width columns, with track 0 at column 0
// and the last track at column width-1.
func (e Extent) Column(track, width int) int {
	if width <= 1 || e.Size <= 1 {
		return 0
	}
	return e.Clamp(track) * (width - 1) / e.Last()
}

// String prints the extent the way the input form labels it.
func (e Extent) String() string {
	return fmt.Sprintf("0-%d", e.Last())
}
