package npcdata

// Node is a dialog node as authored in the map: a numeric id and the topic
// shown in the action menu. An empty topic hides the node from the menu.
type Node struct {
	ID    int
	Topic string
}

// Spawn is one NPC placed in a town.
type Spawn struct {
	ObjectID uint32
	Name     string
	X, Y     float64
	W, H     float64
	Vendor   bool
	Nodes    []Node // Ascending by ID
}

// Town is the NPC data of one .tmx map.
type Town struct {
	Name      string
	MapWidth  int
	MapHeight int
	NPCs      []Spawn
}
