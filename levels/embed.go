// Package levels holds the embedded colony maps used by the demo host.
package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/G9Pedro/colony-game-sub001/camera"
)

//go:embed *.json
var LevelsFS embed.FS

// Colony is a map of selectable entities on the isometric ground plane.
type Colony struct {
	Name     string   `json:"name"`
	Radius   float64  `json:"radius"`
	Entities []Entity `json:"entities,omitempty"`

	byTile map[camera.Tile]int
}

type Entity struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	X    int    `json:"x"`
	Z    int    `json:"z"`
}

func (e Entity) Tile() camera.Tile {
	return camera.Tile{X: e.X, Z: e.Z}
}

func LoadColonyFromFS(name string) (*Colony, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read colony: %w", err)
	}
	return ParseColony(data)
}

// ParseColony decodes a colony map. Two entities may not share a tile.
func ParseColony(data []byte) (*Colony, error) {
	var c Colony
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal colony: %w", err)
	}
	c.byTile = make(map[camera.Tile]int, len(c.Entities))
	for i, e := range c.Entities {
		if prev, ok := c.byTile[e.Tile()]; ok {
			return nil, fmt.Errorf("colony: entities %d and %d share tile (%d,%d)", c.Entities[prev].ID, e.ID, e.X, e.Z)
		}
		c.byTile[e.Tile()] = i
	}
	return &c, nil
}

// EntityAt returns the id of the entity standing on tile.
func (c *Colony) EntityAt(tile camera.Tile) (int, bool) {
	i, ok := c.byTile[tile]
	if !ok {
		return 0, false
	}
	return c.Entities[i].ID, true
}

// Entity looks an entity up by id.
func (c *Colony) Entity(id int) (Entity, bool) {
	for _, e := range c.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}
