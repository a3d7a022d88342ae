// This file decodes the Objects, Buildings and Stacks segments (kinds 6,
// 8, 9): each a sequence of fixed 16-byte records sharing the same shape
// (position, owner, type id, state flags, reserved tail).

package mapfile

import "github.com/s4reader/s4map/mapdecoder"

const objectRecordSize = 16

func parseObjectRecords(body []byte, segmentName string) ([]ObjectRecord, error) {
	if len(body)%objectRecordSize != 0 {
		return nil, mapdecoder.NewError(mapdecoder.ErrSizeMismatch,
			segmentName+" segment length is not a multiple of the record size")
	}

	count := len(body) / objectRecordSize
	records := make([]ObjectRecord, count)

	sr := newSliceReader(body)
	for i := 0; i < count; i++ {
		x, err := sr.getUint16()
		if err != nil {
			return nil, err
		}
		y, err := sr.getUint16()
		if err != nil {
			return nil, err
		}
		owner, err := sr.getByte()
		if err != nil {
			return nil, err
		}
		typeID, err := sr.getUint16()
		if err != nil {
			return nil, err
		}
		state, err := sr.getByte()
		if err != nil {
			return nil, err
		}
		raw, err := sr.readSlice(objectRecordSize - 2 - 2 - 1 - 2 - 1)
		if err != nil {
			return nil, err
		}

		records[i] = ObjectRecord{X: x, Y: y, Owner: owner, TypeID: typeID, State: state, Raw: raw}
	}

	return records, nil
}

func parseObjects(body []byte) (*Objects, error) {
	records, err := parseObjectRecords(body, "objects")
	if err != nil {
		return nil, err
	}
	return &Objects{Records: records}, nil
}

func parseBuildings(body []byte) (*Buildings, error) {
	records, err := parseObjectRecords(body, "buildings")
	if err != nil {
		return nil, err
	}
	return &Buildings{Records: records}, nil
}

func parseStacks(body []byte) (*Stacks, error) {
	records, err := parseObjectRecords(body, "stacks")
	if err != nil {
		return nil, err
	}
	return &Stacks{Records: records}, nil
}
