// This file decodes the Settlers segment (kind 7): a sequence of fixed
// 20-byte records, like ObjectRecord plus a job id.

package mapfile

import "github.com/s4reader/s4map/mapdecoder"

const settlerRecordSize = 20

func parseSettlers(body []byte) (*Settlers, error) {
	if len(body)%settlerRecordSize != 0 {
		return nil, mapdecoder.NewError(mapdecoder.ErrSizeMismatch,
			"settlers segment length is not a multiple of the record size")
	}

	count := len(body) / settlerRecordSize
	records := make([]SettlerRecord, count)

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
		job, err := sr.getUint16()
		if err != nil {
			return nil, err
		}
		raw, err := sr.readSlice(settlerRecordSize - 2 - 2 - 1 - 2 - 1 - 2)
		if err != nil {
			return nil, err
		}

		records[i] = SettlerRecord{
			X: x, Y: y, Owner: owner, TypeID: typeID, State: state, Job: job, Raw: raw,
		}
	}

	return &Settlers{Records: records}, nil
}
