package usecase

import "errors"

// Setup and input failures distinguish themselves from classification
// outcomes: they terminate a request and are never recorded as malpractice.
var (
	// ErrNoReference means the target user has no usable enrolled embedding:
	// either none was stored or the stored vector has the wrong length.
	ErrNoReference = errors.New("no enrolled face reference")

	// ErrNoFaceDetected means the extractor decoded the image but found no
	// face on a path that requires one.
	ErrNoFaceDetected = errors.New("no face detected")
)
