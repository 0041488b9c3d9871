package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/townfolk/actionmenu"
	cfg "github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/i18n"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Language   string `json:"language"`
	Fullscreen bool   `json:"fullscreen"`
}

// JournalEntry records one choice made in an NPC action menu
type JournalEntry struct {
	NPC    string `json:"npc"`
	Choice string `json:"choice"` // Outcome identifier, e.g. "dialog:3"
}

// Outcome decodes the stored choice
func (j JournalEntry) Outcome() (actionmenu.Outcome, error) {
	return actionmenu.ParseIdentifier(j.Choice)
}

// itemStore is the subset of gdata.Manager used for persistence
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// journal is the in-memory copy of the saved journal
var journal []JournalEntry

// InitPersistence initializes the gdata manager for settings and journal storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "townfolk",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	journal = loadJournal()
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadJSON("settings", &settings)
	if !ok || err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveJSON("settings", s)
}

// RecordJournal appends a choice to the journal and saves it, dropping the
// oldest entries beyond the configured limit
func RecordJournal(npc string, outcome actionmenu.Outcome) {
	journal = append(journal, JournalEntry{NPC: npc, Choice: outcome.ID()})
	if over := len(journal) - cfg.Journal.MaxEntries; over > 0 {
		journal = append([]JournalEntry(nil), journal[over:]...)
	}
	_ = saveJSON("journal", journal)
}

// Journal returns the recorded choices, oldest first
func Journal() []JournalEntry {
	return journal
}

func loadJournal() []JournalEntry {
	var entries []JournalEntry
	if ok, err := loadJSON("journal", &entries); !ok || err != nil {
		return nil
	}

	valid := entries[:0]
	for _, entry := range entries {
		if _, err := entry.Outcome(); err != nil {
			log.Printf("Warning: Dropping journal entry for %s: %v", entry.NPC, err)
			continue
		}
		valid = append(valid, entry)
	}
	return valid
}

// loadJSON reads itemKey into v. ok is false when nothing is stored.
func loadJSON(itemKey string, v interface{}) (ok bool, err error) {
	if store == nil {
		return false, nil
	}

	data, err := store.LoadItem(itemKey)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", itemKey, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", itemKey, err)
		return false, err
	}
	return true, nil
}

func saveJSON(itemKey string, v interface{}) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", itemKey, err)
		return err
	}

	if err := store.SaveItem(itemKey, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", itemKey, err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before the scene is created. Command-line overrides win.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if saved.Language != "" && cfg.Debug.Language == "" {
		if err := i18n.SetLanguage(saved.Language); err != nil {
			log.Printf("Warning: Ignoring saved language %q: %v", saved.Language, err)
		}
	}

	if !cfg.Debug.Fullscreen {
		ebiten.SetFullscreen(saved.Fullscreen)
	}
}

// CurrentSettings captures the settings that are persisted
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Language:   i18n.Language(),
		Fullscreen: ebiten.IsFullscreen(),
	}
}
