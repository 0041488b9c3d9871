package actionmenu

// NPC is the dialog data the menu is built from.
type NPC interface {
	DialogNodes() []int
	DialogTopic(node int) string
	IsVendor() bool
}

// Labels holds the display text of the fixed menu entries.
type Labels struct {
	Shop   string
	Cancel string
}

// DefaultLabels returns untranslated labels.
func DefaultLabels() Labels {
	return Labels{Shop: "Shop", Cancel: "Cancel"}
}

// buildResult is the item list for an NPC plus the data needed to decide
// whether the menu can be skipped.
type buildResult struct {
	items     []Item
	topics    int
	firstNode int // Node of the first topic met while walking in reverse, -1 if none
	vendor    bool
}

// autoOutcome returns the outcome the menu resolves to without being shown.
func (b buildResult) autoOutcome() (Outcome, bool) {
	if !b.vendor && b.topics == 1 {
		return Dialog(b.firstNode), true
	}
	if b.vendor && b.topics == 0 {
		return Vendor(), true
	}
	return Outcome{}, false
}

// buildItems walks the dialog nodes last to first, so topics are listed in
// reverse of provider order. Empty topics are skipped.
func buildItems(npc NPC, labels Labels) buildResult {
	res := buildResult{firstNode: -1, vendor: npc.IsVendor()}

	nodes := npc.DialogNodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		topic := npc.DialogTopic(nodes[i])
		if topic == "" {
			continue
		}
		if res.firstNode == -1 {
			res.firstNode = nodes[i]
		}
		res.items = append(res.items, ActionItem(topic, Dialog(nodes[i])))
		res.topics++
	}

	if res.vendor {
		if res.topics > 0 {
			res.items = append(res.items, Separator())
		}
		res.items = append(res.items, ActionItem(labels.Shop, Vendor()))
	}

	// A separator never leads the list.
	if len(res.items) > 0 {
		res.items = append(res.items, Separator())
	}
	res.items = append(res.items, ActionItem(labels.Cancel, Cancel()))
	return res
}
