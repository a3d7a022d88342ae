// This file decodes the VictoryCondition segment (kind 10): a sequence of
// fixed 10-byte condition records.

package mapfile

import "github.com/s4reader/s4map/mapdecoder"

const victoryConditionRecordSize = 10

func parseVictoryConditions(body []byte) ([]VictoryCondition, error) {
	if len(body)%victoryConditionRecordSize != 0 {
		return nil, mapdecoder.NewError(mapdecoder.ErrSizeMismatch,
			"victory condition segment length is not a multiple of the record size")
	}

	count := len(body) / victoryConditionRecordSize
	conditions := make([]VictoryCondition, count)

	sr := newSliceReader(body)
	for i := 0; i < count; i++ {
		kind, err := sr.getUint16()
		if err != nil {
			return nil, err
		}
		param0, err := sr.getUint32()
		if err != nil {
			return nil, err
		}
		param1, err := sr.getUint32()
		if err != nil {
			return nil, err
		}

		conditions[i] = VictoryCondition{Kind: kind, Param0: param0, Param1: param1}
	}

	return conditions, nil
}
