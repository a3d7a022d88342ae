// This file decodes the MissionInfo/MissionHint DE and EN segments (kinds
// 11, 12, 14, 15): the whole body is Windows-1252 text, NUL-terminated or
// running to the end of the segment.

package mapfile

func parseMissionText(body []byte) (string, error) {
	sr := newSliceReader(body)
	raw, err := sr.cString(uint32(len(body)))
	if err != nil {
		return "", err
	}
	return decodeWin1252(raw), nil
}
