/*

Package mapfile decodes a complete Settlers-4-style .map file into a Map
value, driving the mapdecoder segment framer across the whole file and
dispatching each decoded body to the matching fixed-offset domain decoder.

*/
package mapfile

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/s4reader/s4map/internal/s4log"
	"github.com/s4reader/s4map/mapdecoder"
)

// Open opens and decodes the map file at path.
func Open(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read decodes a complete map file from r.
func Read(r io.Reader) (*Map, error) {
	return readProtected(r)
}

// readProtected calls read(), but protects the call from panics caused by
// corrupt input or decoder bugs.
func readProtected(r io.Reader) (m *Map, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			s4log.Error("panic while reading map file",
				s4log.F("panic", fmt.Sprint(rec)), s4log.F("stack", string(buf[:n])))
			err = mapdecoder.NewError(mapdecoder.ErrIO, "recovered from panic while reading map file")
		}
	}()

	return read(r)
}

func read(r io.Reader) (*Map, error) {
	framer, err := mapdecoder.NewFramer(r)
	if err != nil {
		return nil, err
	}

	m := &Map{
		FileChecksum: framer.FileChecksum,
		FileVersion:  framer.FileVersion,
	}

	for {
		seg, body, err := framer.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// This segment's body was either cut short by the end of
			// the input (the next header read then returns io.EOF), or
			// read in full but failed to decompress to its
			// decrypted_len. Record it and keep reading at the next
			// header. Any failure to read a header at all comes back as
			// io.EOF above, not here.
			s4log.Warn("segment decompress failed, continuing",
				s4log.F("kind", uint32(seg.Kind)), s4log.F("error", err))
			m.Warnings = append(m.Warnings, fmt.Errorf("segment kind %d: %w", seg.Kind, err))
			continue
		}
		if body == nil {
			// Unknown kind; framer already skipped it.
			continue
		}

		if err := dispatch(m, seg.Kind, body); err != nil {
			s4log.Warn("segment decode failed, continuing",
				s4log.F("kind", uint32(seg.Kind)), s4log.F("error", err))
			m.Warnings = append(m.Warnings, fmt.Errorf("segment kind %d: %w", seg.Kind, err))
		}
	}

	return m, nil
}

// dispatch decodes body according to kind and stores the result on m.
func dispatch(m *Map, kind Kind, body []byte) error {
	switch kind {
	case KindMapInfo:
		info, err := parseInfo(body)
		if err != nil {
			return err
		}
		m.Info = info

	case KindPlayerInfo:
		players, err := parsePlayers(body)
		if err != nil {
			return err
		}
		m.Players = players

	case KindTeamInfo:
		teams, err := parseTeams(body)
		if err != nil {
			return err
		}
		m.Teams = teams

	case KindPreview:
		preview, err := parsePreview(body)
		if err != nil {
			return err
		}
		m.Preview = preview

	case KindObjects:
		objects, err := parseObjects(body)
		if err != nil {
			return err
		}
		m.Objects = objects

	case KindSettlers:
		settlers, err := parseSettlers(body)
		if err != nil {
			return err
		}
		m.Settlers = settlers

	case KindBuildings:
		buildings, err := parseBuildings(body)
		if err != nil {
			return err
		}
		m.Buildings = buildings

	case KindStacks:
		stacks, err := parseStacks(body)
		if err != nil {
			return err
		}
		m.Stacks = stacks

	case KindVictoryCond:
		conditions, err := parseVictoryConditions(body)
		if err != nil {
			return err
		}
		m.VictoryConditions = conditions

	case KindMissionInfoDE:
		text, err := parseMissionText(body)
		if err != nil {
			return err
		}
		m.MissionTextDE = text

	case KindMissionHintDE:
		text, err := parseMissionText(body)
		if err != nil {
			return err
		}
		m.MissionHintDE = text

	case KindMissionInfoEN:
		text, err := parseMissionText(body)
		if err != nil {
			return err
		}
		m.MissionTextEN = text

	case KindMissionHintEN:
		text, err := parseMissionText(body)
		if err != nil {
			return err
		}
		m.MissionHintEN = text

	case KindGround:
		ground, err := parseGround(body)
		if err != nil {
			return err
		}
		m.Ground = ground

	case KindLuaScript:
		script := make([]byte, len(body))
		copy(script, body)
		m.Script = script
	}

	return nil
}
