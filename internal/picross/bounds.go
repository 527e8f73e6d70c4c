package picross

// BoundingBox is the tightest rectangle enclosing every pixel whose alpha
// exceeds the threshold it was computed with.
//
// Max coordinates are inclusive: Width = MaxX-MinX+1, Height = MaxY-MinY+1.
// When no pixel qualifies the box is inverted (MinX = image width,
// MinY = image height, MaxX = MaxY = 0); Empty reports that case.
type BoundingBox struct {
	MinX   int `json:"minX"`
	MinY   int `json:"minY"`
	MaxX   int `json:"maxX"`
	MaxY   int `json:"maxY"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the box encloses no content.
func (b BoundingBox) Empty() bool {
	return b.Width <= 0 || b.Height <= 0 || b.MinX > b.MaxX || b.MinY > b.MaxY
}

// FindBoundingBox scans a width×height RGBA buffer and returns the box
// around all pixels with alpha > alphaThreshold.
//
// Every pixel is visited; content may be sparse, so there is no early exit.
func FindBoundingBox(data []byte, width, height, alphaThreshold int) BoundingBox {
	minX, minY := width, height
	maxX, maxY := 0, 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := data[(y*width+x)*4+3]
			if int(alpha) <= alphaThreshold {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	return BoundingBox{
		MinX:   minX,
		MinY:   minY,
		MaxX:   maxX,
		MaxY:   maxY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
}
