package picross

// newBuffer creates a transparent width×height RGBA buffer.
func newBuffer(width, height int) []byte {
	return make([]byte, width*height*4)
}

// setPixel writes one pixel into a width-wide RGBA buffer.
func setPixel(data []byte, width, x, y int, p PixelData) {
	i := (y*width + x) * 4
	data[i] = p.R
	data[i+1] = p.G
	data[i+2] = p.B
	data[i+3] = p.A
}

// solidBuffer creates a width×height buffer filled with one pixel value.
func solidBuffer(width, height int, p PixelData) []byte {
	data := newBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			setPixel(data, width, x, y, p)
		}
	}
	return data
}

// maskPixel is the predictable colour used for opaque mask cells.
func maskPixel(row, col int) PixelData {
	return PixelData{
		R: uint8((row*13 + col*7) % 256),
		G: uint8((row*5 + col*11) % 256),
		B: uint8((row*17 + col*3) % 256),
		A: 255,
	}
}

// bufferFromMask creates a square image where mask cells of 1 are opaque
// (with varying colours) and cells of 0 are transparent.
func bufferFromMask(mask [][]int) []byte {
	size := len(mask)
	data := newBuffer(size, size)
	for row := range mask {
		for col, v := range mask[row] {
			if v == 1 {
				setPixel(data, size, col, row, maskPixel(row, col))
			}
		}
	}
	return data
}

// spiralMask builds a square spiral of 1-cell wide lines separated by
// 1-cell gaps.
func spiralMask(size int) [][]int {
	mask := make([][]int, size)
	for i := range mask {
		mask[i] = make([]int, size)
	}

	top, left := 0, 0
	bottom, right := size-1, size-1
	for left <= right && top <= bottom {
		for col := left; col <= right; col++ {
			mask[top][col] = 1
		}
		for row := top + 1; row <= bottom; row++ {
			mask[row][right] = 1
		}
		if top < bottom {
			for col := right - 1; col >= left; col-- {
				mask[bottom][col] = 1
			}
		}
		if left < right {
			for row := bottom - 1; row > top; row-- {
				mask[row][left] = 1
			}
		}
		top += 2
		left += 2
		bottom -= 2
		right -= 2
	}
	return mask
}

// clueValues extracts the values of a clue list for comparison.
func clueValues(clues []ClueData) []int {
	values := make([]int, len(clues))
	for i, c := range clues {
		values[i] = c.Value
	}
	return values
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalMatrix(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalInts(a[i], b[i]) {
			return false
		}
	}
	return true
}
