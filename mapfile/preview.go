// This file decodes the Preview segment (kind 4): a small palette-indexed
// thumbnail. Rendering the palette is out of scope.

package mapfile

func parsePreview(body []byte) (*Preview, error) {
	sr := newSliceReader(body)

	width, err := sr.getUint16()
	if err != nil {
		return nil, err
	}
	height, err := sr.getUint16()
	if err != nil {
		return nil, err
	}
	pixels, err := sr.readSlice(sr.remaining())
	if err != nil {
		return nil, err
	}

	return &Preview{Width: width, Height: height, Pixels: pixels}, nil
}
