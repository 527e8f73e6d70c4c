package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/chai2010/webp"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/picross-mcp/internal/picross"
)

// MaxRenderDimension bounds the width and height of every image this
// package produces.
const MaxRenderDimension = 4096

// ErrImageTooLarge is returned when an output image would exceed
// MaxRenderDimension on either side.
var ErrImageTooLarge = errors.New("output image too large")

// RenderOptions controls how a board preview is drawn.
type RenderOptions struct {
	// CellSize is the side of one board cell in output pixels. Default 16.
	CellSize int `json:"cell_size"`

	// ShowSolution draws every correct cell in its colour. When false the
	// preview shows player progress: pushed cells, marks and mistakes.
	ShowSolution bool `json:"show_solution"`

	// ShowClues adds margins with the row and column clues.
	ShowClues bool `json:"show_clues"`

	GridColor          string `json:"grid_color"`
	MajorGridColor     string `json:"major_grid_color"`
	ClueColor          string `json:"clue_color"`
	CompletedClueColor string `json:"completed_clue_color"`
	MistakeColor       string `json:"mistake_color"`
	MarkColor          string `json:"mark_color"`
}

// DefaultRenderOptions returns the options used for previews when the
// caller does not override them.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		CellSize:           16,
		ShowSolution:       true,
		ShowClues:          true,
		GridColor:          "#C8C8C8",
		MajorGridColor:     "#505050",
		ClueColor:          "#000000",
		CompletedClueColor: "#A0A0A0",
		MistakeColor:       "#D33F49",
		MarkColor:          "#808080",
	}
}

func (o RenderOptions) withDefaults() RenderOptions {
	d := DefaultRenderOptions()
	if o.CellSize <= 0 {
		o.CellSize = d.CellSize
	}
	if o.GridColor == "" {
		o.GridColor = d.GridColor
	}
	if o.MajorGridColor == "" {
		o.MajorGridColor = d.MajorGridColor
	}
	if o.ClueColor == "" {
		o.ClueColor = d.ClueColor
	}
	if o.CompletedClueColor == "" {
		o.CompletedClueColor = d.CompletedClueColor
	}
	if o.MistakeColor == "" {
		o.MistakeColor = d.MistakeColor
	}
	if o.MarkColor == "" {
		o.MarkColor = d.MarkColor
	}
	return o
}

// renderPalette holds the parsed colours of a RenderOptions.
type renderPalette struct {
	background    color.RGBA
	grid          color.RGBA
	majorGrid     color.RGBA
	clue          color.RGBA
	completedClue color.RGBA
	mistake       color.RGBA
	mark          color.RGBA
}

func (o RenderOptions) palette() (renderPalette, error) {
	var p renderPalette
	fields := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"background", picross.BackgroundColor, &p.background},
		{"grid_color", o.GridColor, &p.grid},
		{"major_grid_color", o.MajorGridColor, &p.majorGrid},
		{"clue_color", o.ClueColor, &p.clue},
		{"completed_clue_color", o.CompletedClueColor, &p.completedClue},
		{"mistake_color", o.MistakeColor, &p.mistake},
		{"mark_color", o.MarkColor, &p.mark},
	}
	for _, f := range fields {
		c, err := ParseCellColor(f.value)
		if err != nil {
			return p, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// ParseCellColor parses a cell colour as produced by the board builder:
// "#RRGGBB", "#RGB" or "rgb(r, g, b)". The result is always opaque.
func ParseCellColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "rgb(") {
		var r, g, b int
		if _, err := fmt.Sscanf(s, "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid rgb color %q: %w", s, err)
		}
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			return color.RGBA{}, fmt.Errorf("rgb color %q out of range", s)
		}
		return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// RenderBoard draws a board as an image.
//
// Each cell becomes a CellSize square. The per-cell image is scaled up with
// nearest-neighbour sampling, then grid lines (heavier every 5 cells) and,
// optionally, clue margins are drawn on top. Completed clues are drawn in
// CompletedClueColor.
func RenderBoard(board *picross.BoardData, opts RenderOptions) (*image.RGBA, error) {
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("cannot render board: %w", err)
	}
	opts = opts.withDefaults()
	pal, err := opts.palette()
	if err != nil {
		return nil, err
	}

	n := board.Size()
	cell := opts.CellSize
	if n > MaxRenderDimension || cell > MaxRenderDimension {
		return nil, fmt.Errorf("%w: %d cells of %dpx", ErrImageTooLarge, n, cell)
	}

	scale := fontScale(cell)
	left, top := 0, 0
	if opts.ShowClues {
		left, top = clueMargins(board, scale)
	}
	width, height := left+n*cell+1, top+n*cell+1
	if width > MaxRenderDimension || height > MaxRenderDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrImageTooLarge, width, height, MaxRenderDimension)
	}

	cells, err := cellImage(board, opts.ShowSolution, pal)
	if err != nil {
		return nil, err
	}
	scaled := transform.Resize(cells, n*cell, n*cell, transform.NearestNeighbor)

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: pal.background}, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(left, top, left+n*cell, top+n*cell), scaled, image.Point{}, draw.Src)

	if !opts.ShowSolution {
		drawMarks(canvas, board, left, top, cell, pal.mark)
	}
	drawGrid(canvas, n, left, top, cell, pal)

	if opts.ShowClues {
		drawRowClues(canvas, board, left, top, cell, scale, pal)
		drawColumnClues(canvas, board, left, top, cell, scale, pal)
	}

	return canvas, nil
}

// cellImage builds an n×n image with one pixel per board cell.
func cellImage(board *picross.BoardData, showSolution bool, pal renderPalette) (*image.RGBA, error) {
	n := board.Size()
	img := image.NewRGBA(image.Rect(0, 0, n, n))

	for i, row := range board.Rows {
		for j, c := range row.Cells {
			fill := pal.background
			switch {
			case c.Correct && (showSolution || c.Pushed):
				parsed, err := ParseCellColor(c.Color)
				if err != nil {
					return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
				}
				fill = parsed
			case !showSolution && c.Pushed:
				fill = pal.mistake
			}
			img.SetRGBA(j, i, fill)
		}
	}
	return img, nil
}

func drawGrid(img *image.RGBA, n, left, top, cell int, pal renderPalette) {
	size := n * cell
	for k := 0; k <= n; k++ {
		c := pal.grid
		if k%5 == 0 || k == n {
			c = pal.majorGrid
		}
		offset := k * cell
		for t := 0; t <= size; t++ {
			img.SetRGBA(left+offset, top+t, c)
			img.SetRGBA(left+t, top+offset, c)
		}
	}
}

func drawMarks(img *image.RGBA, board *picross.BoardData, left, top, cell int, c color.RGBA) {
	for i, row := range board.Rows {
		for j, cd := range row.Cells {
			if !cd.Marked || cd.Pushed {
				continue
			}
			x0, y0 := left+j*cell, top+i*cell
			for d := cell / 4; d < cell-cell/4; d++ {
				img.SetRGBA(x0+d, y0+d, c)
				img.SetRGBA(x0+cell-1-d, y0+d, c)
			}
		}
	}
}

// Clue text layout, in font pixels before scaling.
const (
	glyphWidth   = 3
	glyphHeight  = 5
	charAdvance  = 4
	lineAdvance  = 6
	marginFontPx = 2
)

func fontScale(cell int) int {
	if cell < 8 {
		return 1
	}
	return cell / 8
}

// clueMargins returns the left and top margin sizes needed for the clues.
func clueMargins(board *picross.BoardData, scale int) (left, top int) {
	maxChars := 0
	for _, clues := range board.RowClues {
		if l := len(rowClueText(clues)); l > maxChars {
			maxChars = l
		}
	}
	maxLines := 0
	for _, clues := range board.ColumnClues {
		if len(clues) > maxLines {
			maxLines = len(clues)
		}
	}
	left = (maxChars*charAdvance + 2*marginFontPx) * scale
	top = (maxLines*lineAdvance + 2*marginFontPx) * scale
	return left, top
}

func rowClueText(clues []picross.ClueData) string {
	parts := make([]string, len(clues))
	for i, c := range clues {
		parts[i] = strconv.Itoa(c.Value)
	}
	return strings.Join(parts, " ")
}

func clueColor(c picross.ClueData, pal renderPalette) color.RGBA {
	if c.Completed {
		return pal.completedClue
	}
	return pal.clue
}

// drawRowClues right-aligns each row's clues against the board's left edge.
func drawRowClues(img *image.RGBA, board *picross.BoardData, left, top, cell, scale int, pal renderPalette) {
	y0 := (cell - glyphHeight*scale) / 2
	for i, clues := range board.RowClues {
		x := left - marginFontPx*scale
		y := top + i*cell + y0
		for k := len(clues) - 1; k >= 0; k-- {
			text := strconv.Itoa(clues[k].Value)
			x -= len(text) * charAdvance * scale
			drawLabel(img, x, y, text, clueColor(clues[k], pal), scale)
			x -= charAdvance * scale
		}
	}
}

// drawColumnClues stacks each column's clues, bottom-aligned above the board.
func drawColumnClues(img *image.RGBA, board *picross.BoardData, left, top, cell, scale int, pal renderPalette) {
	for j, clues := range board.ColumnClues {
		y := top - marginFontPx*scale - len(clues)*lineAdvance*scale
		for _, c := range clues {
			text := strconv.Itoa(c.Value)
			textWidth := ((len(text)-1)*charAdvance + glyphWidth) * scale
			x := left + j*cell + (cell-textWidth)/2
			drawLabel(img, x, y+scale, text, clueColor(c, pal), scale)
			y += lineAdvance * scale
		}
	}
}

// digitGlyphs is a 3x5 pixel font for clue numbers.
var digitGlyphs = map[rune][glyphHeight]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
}

// drawLabel draws text with the digit font, each font pixel a scale×scale
// block. Unknown characters advance without drawing; pixels outside the
// image are clipped.
func drawLabel(img *image.RGBA, x, y int, text string, fg color.RGBA, scale int) {
	bounds := img.Bounds()
	cx := x
	for _, ch := range text {
		glyph, ok := digitGlyphs[ch]
		if !ok {
			cx += charAdvance * scale
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						px, py := cx+col*scale+dx, y+row*scale+dy
						if image.Pt(px, py).In(bounds) {
							img.SetRGBA(px, py, fg)
						}
					}
				}
			}
		}
		cx += charAdvance * scale
	}
}

// ImageResult is an encoded image ready for transport.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodeImage encodes img as "png" (the default) or lossless "webp" and
// returns it base64 encoded.
func EncodeImage(img image.Image, format string) (*ImageResult, error) {
	var buf bytes.Buffer
	mime := "image/png"

	switch strings.ToLower(format) {
	case "", "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode image: %w", err)
		}
	case "webp":
		if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
			return nil, fmt.Errorf("failed to encode image: %w", err)
		}
		mime = "image/webp"
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	return &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    mime,
	}, nil
}

// RenderBoardImage renders a board and encodes it in one step.
func RenderBoardImage(board *picross.BoardData, opts RenderOptions, format string) (*ImageResult, error) {
	img, err := RenderBoard(board, opts)
	if err != nil {
		return nil, err
	}
	return EncodeImage(img, format)
}
