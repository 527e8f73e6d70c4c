package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/picross-mcp/internal/picross"
)

// ErrNoContent is returned when an image has no pixel above the alpha
// threshold.
var ErrNoContent = errors.New("image has no opaque content")

// CropResult contains the cropped image data
type CropResult struct {
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	Bounds      picross.BoundingBox `json:"bounds"`
	ImageBase64 string              `json:"image_base64"`
	MimeType    string              `json:"mime_type"`
}

// CropToContent extracts the region a board is generated from: the
// bounding box of pixels with alpha above alphaThreshold. A scale other than
// 1 resizes the crop with nearest-neighbour sampling so pixel edges stay
// sharp. A scaled crop larger than MaxRenderDimension on either side is
// rejected with ErrImageTooLarge.
func CropToContent(img image.Image, alphaThreshold int, scale float64) (*CropResult, error) {
	bbox := ContentBounds(img, alphaThreshold)
	if bbox.Empty() {
		return nil, ErrNoContent
	}

	origin := img.Bounds().Min
	rect := image.Rect(bbox.MinX, bbox.MinY, bbox.MaxX+1, bbox.MaxY+1).Add(origin)
	cropped := imaging.Crop(img, rect)

	if scale != 1.0 && scale > 0 {
		w := float64(cropped.Bounds().Dx()) * scale
		h := float64(cropped.Bounds().Dy()) * scale
		if w > MaxRenderDimension || h > MaxRenderDimension {
			return nil, fmt.Errorf("%w: scale %g gives %.0fx%.0f, limit %d",
				ErrImageTooLarge, scale, w, h, MaxRenderDimension)
		}
		newWidth, newHeight := int(w), int(h)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %g too small for %dx%d crop", scale, bbox.Width, bbox.Height)
		}
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return &CropResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		Bounds:      bbox,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
