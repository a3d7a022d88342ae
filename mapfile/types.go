// This file contains the types describing a decoded map and its segments.

package mapfile

import (
	"github.com/s4reader/s4map/mapfile/mapcore"
)

// Map is the fully decoded content of a map file. Unknown or absent
// segment kinds leave the corresponding field nil/zero. A segment that
// fails to decompress or decode also leaves its field nil/zero, with the
// failure recorded in Warnings.
type Map struct {
	// FileChecksum and FileVersion come from the 8-byte file preamble
	// (mapdecoder.Framer).
	FileChecksum uint32
	FileVersion  uint32

	Info              *Info
	Players           []Player
	Teams             []byte
	Preview           *Preview
	Objects           *Objects
	Settlers          *Settlers
	Buildings         *Buildings
	Stacks            *Stacks
	VictoryConditions []VictoryCondition
	MissionTextDE     string
	MissionHintDE     string
	MissionTextEN     string
	MissionHintEN     string
	Ground            *Ground
	Script            []byte

	// Warnings accumulates non-fatal per-segment decode errors. A segment
	// that fails to decompress or decode is recorded here and skipped;
	// it never aborts the rest of the file.
	Warnings []error
}

// Info is the MapInfo segment (kind 1).
type Info struct {
	GameMode         *mapcore.GameMode
	PlayerLimit      uint32
	ResourceRichness *mapcore.ResourceRichness
	MapSize          uint16
	StartResources   uint32
	Reserved         uint16
}

// Player is one slot of the Player segment (kind 2).
type Player struct {
	Name    string
	Race    uint8
	StartX  uint16
	StartY  uint16
	Color   uint8
	IsUsed  bool
	Raw     []byte
}

// Preview is the Preview segment (kind 4): a small palette-indexed
// thumbnail. Rendering the palette is out of scope.
type Preview struct {
	Width  uint16
	Height uint16
	Pixels []byte
}

// ObjectRecord is one fixed-size record shared by the Objects, Buildings
// and Stacks segments (kinds 6, 8, 9).
type ObjectRecord struct {
	X, Y   uint16
	Owner  uint8
	TypeID uint16
	State  uint8
	Raw    []byte
}

// Objects is the Objects segment (kind 6).
type Objects struct {
	Records []ObjectRecord
}

// Buildings is the Buildings segment (kind 8).
type Buildings struct {
	Records []ObjectRecord
}

// Stacks is the Stacks segment (kind 9).
type Stacks struct {
	Records []ObjectRecord
}

// SettlerRecord is one fixed-size record of the Settlers segment (kind 7).
// It carries everything ObjectRecord does, plus a job id.
type SettlerRecord struct {
	X, Y   uint16
	Owner  uint8
	TypeID uint16
	State  uint8
	Job    uint16
	Raw    []byte
}

// Settlers is the Settlers segment (kind 7).
type Settlers struct {
	Records []SettlerRecord
}

// VictoryCondition is one record of the VictoryCondition segment (kind 10).
type VictoryCondition struct {
	Kind   uint16
	Param0 uint32
	Param1 uint32
}

// Ground is the Ground segment (kind 13): a width*height grid of tiles.
type Ground struct {
	Width  uint16
	Height uint16
	Tiles  []uint16
}

// Kind re-exports mapcore.Kind so callers of mapfile don't need a second
// import just to name a segment kind.
type Kind = mapcore.Kind

// Known segment kinds, re-exported from mapcore.
const (
	KindMapInfo       = mapcore.KindMapInfo
	KindPlayerInfo    = mapcore.KindPlayerInfo
	KindTeamInfo      = mapcore.KindTeamInfo
	KindPreview       = mapcore.KindPreview
	KindObjects       = mapcore.KindObjects
	KindSettlers      = mapcore.KindSettlers
	KindBuildings     = mapcore.KindBuildings
	KindStacks        = mapcore.KindStacks
	KindVictoryCond   = mapcore.KindVictoryCond
	KindMissionInfoDE = mapcore.KindMissionInfoDE
	KindMissionHintDE = mapcore.KindMissionHintDE
	KindGround        = mapcore.KindGround
	KindMissionInfoEN = mapcore.KindMissionInfoEN
	KindMissionHintEN = mapcore.KindMissionHintEN
	KindLuaScript     = mapcore.KindLuaScript
)
