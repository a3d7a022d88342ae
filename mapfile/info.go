// This file decodes the MapInfo segment (kind 1).

package mapfile

import "github.com/s4reader/s4map/mapfile/mapcore"

func parseInfo(body []byte) (*Info, error) {
	sr := newSliceReader(body)

	gameMode, err := sr.getUint32()
	if err != nil {
		return nil, err
	}
	playerLimit, err := sr.getUint32()
	if err != nil {
		return nil, err
	}
	richness, err := sr.getUint32()
	if err != nil {
		return nil, err
	}
	mapSize, err := sr.getUint16()
	if err != nil {
		return nil, err
	}

	if _, err := sr.getUint16(); err != nil { // pad to offset 16
		return nil, err
	}
	startResources, err := sr.getUint32()
	if err != nil {
		return nil, err
	}
	reserved, err := sr.getUint16()
	if err != nil {
		return nil, err
	}

	return &Info{
		GameMode:         mapcore.GameModeByID(gameMode),
		PlayerLimit:      playerLimit,
		ResourceRichness: mapcore.ResourceRichnessByID(richness),
		MapSize:          mapSize,
		StartResources:   startResources,
		Reserved:         reserved,
	}, nil
}
