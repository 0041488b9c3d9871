package components

import (
	"github.com/automoto/townfolk/npcdata"
	"github.com/yohamta/donburi"
)

// NPCData is a townsperson the player can click to open the action menu.
// It is the menu's dialog data provider.
type NPCData struct {
	Name   string
	Vendor bool
	Nodes  []npcdata.Node // Provider order
}

// DialogNodes returns the node ids in provider order.
func (n *NPCData) DialogNodes() []int {
	ids := make([]int, len(n.Nodes))
	for i, node := range n.Nodes {
		ids[i] = node.ID
	}
	return ids
}

// DialogTopic returns the topic of node id, "" when unknown.
func (n *NPCData) DialogTopic(id int) string {
	for _, node := range n.Nodes {
		if node.ID == id {
			return node.Topic
		}
	}
	return ""
}

func (n *NPCData) IsVendor() bool {
	return n.Vendor
}

var NPC = donburi.NewComponentType[NPCData]()
