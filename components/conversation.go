package components

import "github.com/yohamta/donburi"

// ConversationMode selects which panel the conversation UI shows
type ConversationMode int

const (
	ConversationTalk ConversationMode = iota
	ConversationShop
)

// ConversationData is the singleton backing the modal conversation panel.
type ConversationData struct {
	Open    bool
	Mode    ConversationMode
	Speaker string
	Topic   string
	Node    int
	Version int // Bumped whenever the panel content changes
}

var Conversation = donburi.NewComponentType[ConversationData]()
