package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/picross-mcp/internal/picross"
)

// PixelBuffer flattens an image into the row-major, non-premultiplied RGBA
// buffer the picross pipeline consumes. The returned buffer always starts at
// the image's top-left pixel, whatever its bounds origin.
func PixelBuffer(img image.Image) (data []byte, width, height int) {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return nrgba.Pix, b.Dx(), b.Dy()
}

// ContentBounds returns the bounding box of pixels whose alpha exceeds
// alphaThreshold, in coordinates relative to the image's top-left corner.
func ContentBounds(img image.Image, alphaThreshold int) picross.BoundingBox {
	data, w, h := PixelBuffer(img)
	return picross.FindBoundingBox(data, w, h, alphaThreshold)
}

// ProcessImage converts a decoded image into a picross board.
func ProcessImage(img image.Image, cfg picross.Config) (*picross.Result, error) {
	data, w, h := PixelBuffer(img)
	return picross.ProcessImageData(data, w, h, cfg)
}
