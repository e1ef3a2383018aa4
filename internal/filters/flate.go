package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateDecode decompresses Flate (zlib/deflate) compressed data, the
// most common compression filter in PDFs. A Predictor parameter, when
// present, selects TIFF or PNG prediction applied after inflation.
func FlateDecode(data []byte, params Params) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	decompressed := buf.Bytes()

	predictor := getIntParam(params, "Predictor", 1)
	if predictor == 1 {
		return decompressed, nil
	}

	out, err := applyPredictor(decompressed, predictor, params)
	if err != nil {
		return nil, fmt.Errorf("predictor failed: %w", err)
	}
	return out, nil
}

// applyPredictor reverses the prediction applied before compression.
// Predictor 2 is TIFF horizontal differencing; 10-15 are the PNG row
// predictors.
func applyPredictor(data []byte, predictor int, params Params) ([]byte, error) {
	switch {
	case predictor == 2:
		return applyTIFFPredictor(data, params)
	case predictor >= 10 && predictor <= 15:
		return applyPNGPredictor(data, params)
	default:
		return nil, fmt.Errorf("unsupported predictor: %d", predictor)
	}
}

// applyTIFFPredictor reverses TIFF Predictor 2, which predicts each
// sample from the sample to its left.
func applyTIFFPredictor(data []byte, params Params) ([]byte, error) {
	columns := getIntParam(params, "Columns", 1)
	colors := getIntParam(params, "Colors", 1)
	bpc := getIntParam(params, "BitsPerComponent", 8)

	if bpc != 8 {
		return nil, fmt.Errorf("TIFF predictor supports only 8 bits per component, got %d", bpc)
	}

	rowSize := columns * colors
	if rowSize <= 0 || len(data)%rowSize != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), rowSize)
	}

	result := make([]byte, len(data))
	for row := 0; row < len(data)/rowSize; row++ {
		start := row * rowSize
		for col := 0; col < rowSize; col++ {
			idx := start + col
			if col < colors {
				result[idx] = data[idx]
			} else {
				result[idx] = data[idx] + result[idx-colors]
			}
		}
	}
	return result, nil
}

// applyPNGPredictor reverses the PNG row predictors. Each row carries a
// leading predictor byte (0=None, 1=Sub, 2=Up, 3=Average, 4=Paeth).
func applyPNGPredictor(data []byte, params Params) ([]byte, error) {
	columns := getIntParam(params, "Columns", 1)
	colors := getIntParam(params, "Colors", 1)
	bpc := getIntParam(params, "BitsPerComponent", 8)

	if bpc != 8 {
		return nil, fmt.Errorf("PNG predictor supports only 8 bits per component, got %d", bpc)
	}

	bpp := colors
	rowLen := columns * colors
	rowSize := rowLen + 1 // Leading predictor byte
	if rowSize <= 1 || len(data)%rowSize != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), rowSize)
	}

	numRows := len(data) / rowSize
	result := make([]byte, numRows*rowLen)

	for row := 0; row < numRows; row++ {
		tag := data[row*rowSize]
		src := data[row*rowSize+1 : (row+1)*rowSize]
		dst := result[row*rowLen : (row+1)*rowLen]

		var prev []byte
		if row > 0 {
			prev = result[(row-1)*rowLen : row*rowLen]
		}

		for i := 0; i < rowLen; i++ {
			var left, up, upLeft byte
			if i >= bpp {
				left = dst[i-bpp]
			}
			if prev != nil {
				up = prev[i]
				if i >= bpp {
					upLeft = prev[i-bpp]
				}
			}

			var predicted byte
			switch tag {
			case 0: // None
			case 1: // Sub
				predicted = left
			case 2: // Up
				predicted = up
			case 3: // Average
				predicted = byte((int(left) + int(up)) / 2)
			case 4: // Paeth
				predicted = paeth(left, up, upLeft)
			default:
				return nil, fmt.Errorf("unknown PNG predictor tag %d in row %d", tag, row)
			}
			dst[i] = src[i] + predicted
		}
	}

	return result, nil
}

// paeth implements the Paeth predictor from the PNG specification: the
// neighbour closest to the linear prediction left+up-upLeft.
func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
