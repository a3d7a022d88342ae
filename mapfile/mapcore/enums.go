// This file contains general enum types shared by the domain decoders.

package mapcore

import (
	"fmt"

	"github.com/s4reader/s4map/mapdecoder"
)

// Kind re-exports mapdecoder.Kind so decoders and callers built on top of
// mapdecoder (mapfile, mapcache) share one segment-kind type.
type Kind = mapdecoder.Kind

// Known segment kinds, re-exported from mapdecoder.
const (
	KindMapInfo       = mapdecoder.KindMapInfo
	KindPlayerInfo    = mapdecoder.KindPlayerInfo
	KindTeamInfo      = mapdecoder.KindTeamInfo
	KindPreview       = mapdecoder.KindPreview
	KindObjects       = mapdecoder.KindObjects
	KindSettlers      = mapdecoder.KindSettlers
	KindBuildings     = mapdecoder.KindBuildings
	KindStacks        = mapdecoder.KindStacks
	KindVictoryCond   = mapdecoder.KindVictoryCond
	KindMissionInfoDE = mapdecoder.KindMissionInfoDE
	KindMissionHintDE = mapdecoder.KindMissionHintDE
	KindGround        = mapdecoder.KindGround
	KindMissionInfoEN = mapdecoder.KindMissionInfoEN
	KindMissionHintEN = mapdecoder.KindMissionHintEN
	KindLuaScript     = mapdecoder.KindLuaScript
)

// Enum is the base / common part of enum types.
type Enum struct {
	// Name of the entity
	Name string
}

// String returns the string representation of the enum (the name).
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unknown entity with a name:
//
//	"Unknown 0xID"
func UnknownEnum(id any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", id)}
}

// GameMode is the MapInfo segment's game mode field.
type GameMode struct {
	Enum
	ID uint32
}

// GameModes is an enumeration of the possible game modes.
var GameModes = []*GameMode{
	{Enum{"Multiplayer"}, 0},
	{Enum{"Single"}, 1},
	{Enum{"Coop"}, 2},
}

// Named game modes.
var (
	GameModeMultiplayer = GameModes[0]
	GameModeSingle      = GameModes[1]
	GameModeCoop        = GameModes[2]
)

// GameModeByID returns the GameMode for a given ID, or an Unknown GameMode
// preserving the ID if none is found.
func GameModeByID(id uint32) *GameMode {
	if int(id) < len(GameModes) {
		return GameModes[id]
	}
	return &GameMode{UnknownEnum(id), id}
}

// ResourceRichness is the MapInfo segment's resource richness field.
type ResourceRichness struct {
	Enum
	ID uint32
}

// ResourceRichnesses is an enumeration of the possible resource richness
// levels.
var ResourceRichnesses = []*ResourceRichness{
	{Enum{"None"}, 0},
	{Enum{"Low"}, 1},
	{Enum{"Medium"}, 2},
	{Enum{"High"}, 3},
}

// Named resource richness levels.
var (
	ResourceRichnessNone   = ResourceRichnesses[0]
	ResourceRichnessLow    = ResourceRichnesses[1]
	ResourceRichnessMedium = ResourceRichnesses[2]
	ResourceRichnessHigh   = ResourceRichnesses[3]
)

// ResourceRichnessByID returns the ResourceRichness for a given ID, or an
// Unknown ResourceRichness preserving the ID if none is found.
func ResourceRichnessByID(id uint32) *ResourceRichness {
	if int(id) < len(ResourceRichnesses) {
		return ResourceRichnesses[id]
	}
	return &ResourceRichness{UnknownEnum(id), id}
}

// Point describes a tile position on the map.
type Point struct {
	X, Y uint16
}

// String returns a string representation of the point in the format
// "x=X, y=Y".
func (p Point) String() string {
	return fmt.Sprint("x=", p.X, ", y=", p.Y)
}
