package i18n

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	current   string
)

// Message is an alias for the go-i18n message so callers need not import it
type Message = goi18n.Message

// Message catalogue shared by the town scene.
var (
	MenuShop    = &Message{ID: "menu_shop", Other: "Shop"}
	MenuCancel  = &Message{ID: "menu_cancel", Other: "Cancel"}
	ShopTitle   = &Message{ID: "shop_title", Other: "{{.Name}}'s wares"}
	ShopClosed  = &Message{ID: "shop_closed", Other: "Nothing for sale today."}
	TalkTitle   = &Message{ID: "talk_title", Other: "{{.Name}}"}
	Farewell    = &Message{ID: "farewell", Other: "You leave {{.Name}} be."}
	CloseButton = &Message{ID: "close_button", Other: "Close"}
)

func init() {
	reset()
}

func reset() {
	bundle = goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	localizer = goi18n.NewLocalizer(bundle, language.English.String())
	current = language.English.String()
}

// LoadFS loads every .toml message file in dir.
func LoadFS(fsys fs.FS, dir string) error {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.toml"))
	if err != nil {
		return fmt.Errorf("glob %s: %w", dir, err)
	}
	for _, p := range matches {
		buf, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, p); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
	}
	return nil
}

// SetLanguage switches the active language. English stays the fallback.
func SetLanguage(code string) error {
	tag, err := language.Parse(code)
	if err != nil {
		return err
	}
	localizer = goi18n.NewLocalizer(bundle, tag.String(), language.English.String())
	current = tag.String()
	return nil
}

// Language returns the code of the active language
func Language() string {
	return current
}

// Localize renders message in the active language, falling back to its
// default text.
func Localize(message *Message, templateData map[string]interface{}) string {
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   templateData,
	})
	if err != nil && msg == "" {
		return message.Other
	}
	return msg
}

// T localizes a message without template data.
func T(message *Message) string {
	return Localize(message, nil)
}
