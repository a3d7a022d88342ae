// This file decodes the Ground segment (kind 13): a width*height grid of
// uint16 tiles preceded by a width/height header.

package mapfile

func parseGround(body []byte) (*Ground, error) {
	sr := newSliceReader(body)

	width, err := sr.getUint16()
	if err != nil {
		return nil, err
	}
	height, err := sr.getUint16()
	if err != nil {
		return nil, err
	}

	tileCount := uint32(width) * uint32(height)
	tiles := make([]uint16, tileCount)
	for i := range tiles {
		v, err := sr.getUint16()
		if err != nil {
			return nil, err
		}
		tiles[i] = v
	}

	return &Ground{Width: width, Height: height, Tiles: tiles}, nil
}
