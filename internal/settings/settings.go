// Package settings persists the display preferences of the tray
// application as a small YAML document.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/iwvelando/zemenbar/pkg/locale"
	"gopkg.in/yaml.v3"
)

// Settings controls how dates are rendered for display.
type Settings struct {
	UseAmharic       bool `yaml:"useAmharic" json:"use_amharic" mapstructure:"useAmharic"`
	UseGeezNumbers   bool `yaml:"useGeezNumbers" json:"use_geez_numbers" mapstructure:"useGeezNumbers"`
	ShowDateInTray   bool `yaml:"showDateInTray" json:"show_date_in_tray" mapstructure:"showDateInTray"`
	UseNumericFormat bool `yaml:"useNumericFormat" json:"use_numeric_format" mapstructure:"useNumericFormat"`
	ShowQen          bool `yaml:"showQen" json:"show_qen" mapstructure:"showQen"`
	ShowAmeteMihret  bool `yaml:"showAmeteMihret" json:"show_amete_mihret" mapstructure:"showAmeteMihret"`
}

// Default returns the preferences used when no document exists.
func Default() Settings {
	return Settings{
		UseAmharic:     true,
		ShowDateInTray: true,
	}
}

// Language returns the name table selected by UseAmharic.
func (s Settings) Language() locale.Language {
	if s.UseAmharic {
		return locale.Amharic
	}
	return locale.English
}

// Store reads and writes Settings at a fixed path.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a Store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. A missing file yields Default without error;
// keys absent from the document keep their default values.
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save writes the document, creating its directory when needed.
func (s *Store) Save(cfg Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(cfg)
}

// Update applies fn to the stored document and saves the result while
// holding the store lock. Nothing is written when fn returns an error.
func (s *Store) Update(fn func(*Settings) error) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return cfg, err
	}
	if err := fn(&cfg); err != nil {
		return cfg, err
	}
	if err := s.save(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s *Store) load() (Settings, error) {
	cfg := Default()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return cfg, nil
}

func (s *Store) save(cfg Settings) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
