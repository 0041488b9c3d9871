package npcdata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ObjectGroup is the TMX object group NPCs are placed in.
const ObjectGroup = "NPCs"

// dialogPrefix marks object properties holding dialog topics, e.g. "dialog.3".
const dialogPrefix = "dialog."

// LoadTown parses a TMX file and returns the NPCs placed in it. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTown(fsys fs.FS, tmxPath string) (*Town, error) {
	townMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	town := &Town{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  townMap.Width * townMap.TileWidth,
		MapHeight: townMap.Height * townMap.TileHeight,
	}

	for _, og := range townMap.ObjectGroups {
		if og.Name != ObjectGroup {
			continue
		}
		for _, o := range og.Objects {
			spawn, err := parseSpawn(o)
			if err != nil {
				return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
			}
			town.NPCs = append(town.NPCs, spawn)
		}
	}

	return town, nil
}

func parseSpawn(o *tiled.Object) (Spawn, error) {
	spawn := Spawn{
		ObjectID: o.ID,
		Name:     o.Name,
		X:        o.X,
		Y:        o.Y,
		W:        o.Width,
		H:        o.Height,
		Vendor:   o.Properties.GetBool("vendor"),
	}

	for _, p := range o.Properties {
		if !strings.HasPrefix(p.Name, dialogPrefix) {
			continue
		}
		id, err := strconv.Atoi(strings.TrimPrefix(p.Name, dialogPrefix))
		if err != nil {
			return Spawn{}, fmt.Errorf("dialog property %q: %w", p.Name, err)
		}
		spawn.Nodes = append(spawn.Nodes, Node{ID: id, Topic: p.Value})
	}

	// Provider order is ascending node id, whatever order the file lists them in.
	sort.Slice(spawn.Nodes, func(i, j int) bool {
		return spawn.Nodes[i].ID < spawn.Nodes[j].ID
	})

	return spawn, nil
}

// LoadAllTowns discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllTowns(fsys fs.FS, dir string) (map[string]*Town, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	towns := make(map[string]*Town, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		town, err := LoadTown(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		towns[town.Name] = town
		names = append(names, town.Name)
	}

	sort.Strings(names)
	return towns, names, nil
}
