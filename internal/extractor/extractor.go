// Package extractor defines the embedding-extraction capability consumed by
// the engines. The model itself runs out of process; this package only fixes
// the contract the rest of the service programs against.
package extractor

import (
	"context"
	"errors"

	"github.com/example/proctorguard/internal/embedding"
)

// ErrImageUndecodable reports that the submitted payload could not be decoded
// as an image. It is distinct from a successful detection that found no faces
// (an empty Face slice with a nil error).
var ErrImageUndecodable = errors.New("image could not be decoded")

// Mode selects how many faces a detection request asks for.
type Mode int

const (
	// ModeSingle requests at most the single most prominent face.
	ModeSingle Mode = iota
	// ModeAll requests every face in frame.
	ModeAll
)

// BoundingBox locates a detected face within the frame, in fractions of the
// image dimensions.
type BoundingBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Face is one detected face with its identity embedding.
type Face struct {
	Box       BoundingBox
	Embedding embedding.Vector
}

// Client exposes the subset of the extractor service used by the engines.
// Implementations must treat extraction as potentially blocking and must not
// be relied on for bit-exact determinism across calls.
type Client interface {
	Detect(ctx context.Context, image []byte, mode Mode) ([]Face, error)
}
