package npcdata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/townfolk/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="NPCs">
  <object id="7" name="Zed" x="10" y="20" width="24" height="32">
   <properties>
    <property name="dialog.10" value="Later"/>
    <property name="dialog.2" value="Sooner"/>
    <property name="mood" value="grumpy"/>
    <property name="vendor" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Decorations">
  <object id="8" name="Barrel" x="0" y="0" width="16" height="16"/>
 </objectgroup>
</map>
`

func TestLoadTown(t *testing.T) {
	fsys := fstest.MapFS{"towns/test.tmx": {Data: []byte(testTMX)}}

	town, err := LoadTown(fsys, "towns/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", town.Name)
	assert.Equal(t, 160, town.MapWidth)
	assert.Equal(t, 80, town.MapHeight)
	require.Len(t, town.NPCs, 1)

	zed := town.NPCs[0]
	assert.Equal(t, uint32(7), zed.ObjectID)
	assert.Equal(t, "Zed", zed.Name)
	assert.Equal(t, 10.0, zed.X)
	assert.Equal(t, 20.0, zed.Y)
	assert.Equal(t, 24.0, zed.W)
	assert.Equal(t, 32.0, zed.H)
	assert.True(t, zed.Vendor)
	assert.Equal(t, []Node{{ID: 2, Topic: "Sooner"}, {ID: 10, Topic: "Later"}}, zed.Nodes)
}

func TestLoadTownBadDialogProperty(t *testing.T) {
	bad := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="NPCs">
  <object id="1" name="Broken" x="0" y="0">
   <properties>
    <property name="dialog.first" value="Oops"/>
   </properties>
  </object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"towns/bad.tmx": {Data: []byte(bad)}}

	_, err := LoadTown(fsys, "towns/bad.tmx")
	assert.ErrorContains(t, err, "dialog.first")
}

func TestLoadTownMissing(t *testing.T) {
	_, err := LoadTown(fstest.MapFS{}, "towns/nowhere.tmx")
	assert.Error(t, err)
}

func TestLoadAllTownsEmbedded(t *testing.T) {
	towns, names, err := LoadAllTowns(assets.FS, assets.TownsDir)
	require.NoError(t, err)
	require.Contains(t, names, "harbor")

	harbor := towns["harbor"]
	require.Len(t, harbor.NPCs, 5)

	tom := harbor.NPCs[1]
	assert.Equal(t, "Old Tom", tom.Name)
	assert.False(t, tom.Vendor)
	assert.Equal(t, []Node{{1, "Greet"}, {2, ""}, {3, "Trade"}}, tom.Nodes)

	bo := harbor.NPCs[3]
	assert.True(t, bo.Vendor)
	assert.Empty(t, bo.Nodes)
}

func TestLoadAllTownsEmptyDir(t *testing.T) {
	_, _, err := LoadAllTowns(fstest.MapFS{}, "towns")
	assert.Error(t, err)
}
