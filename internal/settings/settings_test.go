package settings

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/iwvelando/zemenbar/pkg/locale"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if !cfg.UseAmharic || !cfg.ShowDateInTray || cfg.UseGeezNumbers {
		t.Fatalf("unexpected default values %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	store := NewStore(path)

	want := Settings{
		UseAmharic:       false,
		UseGeezNumbers:   true,
		ShowDateInTray:   false,
		UseNumericFormat: true,
		ShowQen:          true,
		ShowAmeteMihret:  true,
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("expected temporary file to be renamed away")
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Fatalf("Load() = %+v, expected %+v", got, want)
	}
	if store.Path() != path {
		t.Errorf("Path() = %s, expected %s", store.Path(), path)
	}
}

func TestLoadPartialDocumentKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("useGeezNumbers: true\n"), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	cfg, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.UseGeezNumbers {
		t.Errorf("expected useGeezNumbers override")
	}
	if !cfg.UseAmharic || !cfg.ShowDateInTray {
		t.Errorf("expected defaults for absent keys, got %+v", cfg)
	}
}

func TestLoadInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("useAmharic: [not, a, bool\n"), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	cfg, err := NewStore(path).Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg != Default() {
		t.Errorf("expected defaults on error, got %+v", cfg)
	}
}

func TestLanguage(t *testing.T) {
	if (Settings{UseAmharic: true}).Language() != locale.Amharic {
		t.Error("expected Amharic")
	}
	if (Settings{}).Language() != locale.English {
		t.Error("expected English")
	}
}

func TestUpdateConcurrentWritersKeepEveryChange(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.yaml"))
	if err := store.Save(Settings{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	setters := []func(*Settings){
		func(s *Settings) { s.UseAmharic = true },
		func(s *Settings) { s.UseGeezNumbers = true },
		func(s *Settings) { s.ShowDateInTray = true },
		func(s *Settings) { s.UseNumericFormat = true },
		func(s *Settings) { s.ShowQen = true },
		func(s *Settings) { s.ShowAmeteMihret = true },
	}

	var wg sync.WaitGroup
	for round := 0; round < 5; round++ {
		for _, set := range setters {
			wg.Add(1)
			go func(set func(*Settings)) {
				defer wg.Done()
				if _, err := store.Update(func(s *Settings) error {
					set(s)
					return nil
				}); err != nil {
					t.Errorf("Update() error = %v", err)
				}
			}(set)
		}
	}
	wg.Wait()

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Settings{true, true, true, true, true, true}
	if got != want {
		t.Errorf("expected every update to survive, got %+v", got)
	}
}

func TestUpdateErrorLeavesDocumentUntouched(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.yaml"))
	if err := store.Save(Settings{ShowQen: true}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rejected := errors.New("rejected")
	_, err := store.Update(func(s *Settings) error {
		s.ShowQen = false
		return rejected
	})
	if !errors.Is(err, rejected) {
		t.Fatalf("expected rejected error, got %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.ShowQen {
		t.Errorf("expected stored document to be unchanged, got %+v", got)
	}
}
