package systems

import (
	"github.com/automoto/townfolk/components"
	cfg "github.com/automoto/townfolk/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateConversation closes the conversation panel on the back action.
// Clicks inside the panel are handled by the panel UI itself.
func UpdateConversation(e *ecs.ECS) {
	conv := GetOrCreateConversation(e)
	if !conv.Open {
		return
	}
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		CloseConversation(e)
	}
}

// OpenConversation shows the talk panel for topic
func OpenConversation(e *ecs.ECS, speaker, topic string, node int) {
	conv := GetOrCreateConversation(e)
	conv.Open = true
	conv.Mode = components.ConversationTalk
	conv.Speaker = speaker
	conv.Topic = topic
	conv.Node = node
	conv.Version++
}

// OpenShop shows the shop panel for vendor
func OpenShop(e *ecs.ECS, vendor string) {
	conv := GetOrCreateConversation(e)
	conv.Open = true
	conv.Mode = components.ConversationShop
	conv.Speaker = vendor
	conv.Topic = ""
	conv.Node = 0
	conv.Version++
}

// CloseConversation hides the panel and swallows the click that closed it
func CloseConversation(e *ecs.ECS) {
	conv := GetOrCreateConversation(e)
	if !conv.Open {
		return
	}
	conv.Open = false
	conv.Version++

	input := getOrCreateInput(e)
	if input.Current[cfg.ActionPrimary] {
		LockAction(input, cfg.ActionPrimary)
	}
}

// IsConversationOpen reports whether the talk or shop panel is shown
func IsConversationOpen(e *ecs.ECS) bool {
	entry, ok := components.Conversation.First(e.World)
	if !ok {
		return false
	}
	return components.Conversation.Get(entry).Open
}

// GetOrCreateConversation returns the singleton Conversation component, creating if needed
func GetOrCreateConversation(e *ecs.ECS) *components.ConversationData {
	entry, ok := components.Conversation.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Conversation))
	}
	return components.Conversation.Get(entry)
}
