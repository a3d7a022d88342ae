package mapfile

import "testing"

func buildVictoryConditionRecord(kind uint16, param0, param1 uint32) []byte {
	rec := make([]byte, victoryConditionRecordSize)
	rec[0], rec[1] = byte(kind), byte(kind>>8)
	rec[2], rec[3], rec[4], rec[5] = byte(param0), byte(param0>>8), byte(param0>>16), byte(param0>>24)
	rec[6], rec[7], rec[8], rec[9] = byte(param1), byte(param1>>8), byte(param1>>16), byte(param1>>24)
	return rec
}

func TestParseVictoryConditions(t *testing.T) {
	body := append(buildVictoryConditionRecord(1, 100, 0), buildVictoryConditionRecord(2, 0, 60)...)

	conditions, err := parseVictoryConditions(body)
	if err != nil {
		t.Fatalf("parseVictoryConditions: %v", err)
	}
	if len(conditions) != 2 {
		t.Fatalf("got %d records, want 2", len(conditions))
	}
	if conditions[0].Kind != 1 || conditions[0].Param0 != 100 {
		t.Errorf("record 0: got %+v", conditions[0])
	}
	if conditions[1].Kind != 2 || conditions[1].Param1 != 60 {
		t.Errorf("record 1: got %+v", conditions[1])
	}
}

func TestParseVictoryConditionsBadLength(t *testing.T) {
	_, err := parseVictoryConditions(make([]byte, victoryConditionRecordSize-1))
	if err == nil {
		t.Fatal("expected size_mismatch error, got nil")
	}
}
