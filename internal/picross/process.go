package picross

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidImageBuffer is returned when the pixel buffer does not match
	// the stated dimensions.
	ErrInvalidImageBuffer = errors.New("invalid image buffer")

	// ErrInvalidConfig is returned for configurations that cannot be
	// processed.
	ErrInvalidConfig = errors.New("invalid processing config")
)

// Result is the outcome of converting one image into a board.
type Result struct {
	Board     *BoardData  `json:"board"`
	BoardSize int         `json:"boardSize"`
	Matrix    [][]int     `json:"matrix"`
	Bounds    BoundingBox `json:"bounds"`
}

// ProcessImageData converts a flat RGBA buffer of width×height pixels into
// a picross board.
//
// The buffer must hold exactly width*height*4 bytes in row-major, non
// premultiplied RGBA order. Zero fields of cfg take their defaults. The
// function is pure: it does not retain data or share state between calls.
func ProcessImageData(data []byte, width, height int, cfg Config) (*Result, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImageBuffer, width, height)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrInvalidImageBuffer, len(data), width*height*4, width, height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	bbox := FindBoundingBox(data, width, height, cfg.AlphaThreshold)
	scaled := Rescale(data, width, height, bbox, cfg.BoardSize)
	matrix := BuildMatrix(scaled, cfg)

	return &Result{
		Board:     NewBoard(matrix, cfg.ColorMode),
		BoardSize: cfg.BoardSize,
		Matrix:    matrix,
		Bounds:    bbox,
	}, nil
}
