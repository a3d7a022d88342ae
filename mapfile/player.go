// This file decodes the Player segment (kind 2): one 45-byte fixed-size
// record per slot.

package mapfile

import "github.com/s4reader/s4map/mapdecoder"

const playerRecordSize = 45

func parsePlayers(body []byte) ([]Player, error) {
	if len(body)%playerRecordSize != 0 {
		return nil, mapdecoder.NewError(mapdecoder.ErrSizeMismatch,
			"player segment length is not a multiple of the record size")
	}

	count := len(body) / playerRecordSize
	players := make([]Player, count)

	sr := newSliceReader(body)
	for i := 0; i < count; i++ {
		name, err := sr.cString(20)
		if err != nil {
			return nil, err
		}
		race, err := sr.getByte()
		if err != nil {
			return nil, err
		}
		startX, err := sr.getUint16()
		if err != nil {
			return nil, err
		}
		startY, err := sr.getUint16()
		if err != nil {
			return nil, err
		}
		color, err := sr.getByte()
		if err != nil {
			return nil, err
		}
		isUsed, err := sr.getByte()
		if err != nil {
			return nil, err
		}
		raw, err := sr.readSlice(playerRecordSize - 20 - 1 - 2 - 2 - 1 - 1)
		if err != nil {
			return nil, err
		}

		players[i] = Player{
			Name:   decodeWin1252(name),
			Race:   race,
			StartX: startX,
			StartY: startY,
			Color:  color,
			IsUsed: isUsed != 0,
			Raw:    raw,
		}
	}

	return players, nil
}
