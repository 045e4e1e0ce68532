package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/handiism/artist-credits/internal/audio"
	"github.com/handiism/artist-credits/internal/config"
	"github.com/handiism/artist-credits/internal/model"
)

func writeTestMP3(t *testing.T, path, lead string) {
	t.Helper()
	tag := id3v2.NewEmptyTag()
	tag.SetTitle(filepath.Base(path))
	if lead != "" {
		tag.SetArtist(lead)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := tag.WriteTo(f); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte("\xff\xfb\x90\x00audio frames")); err != nil {
		t.Fatal(err)
	}
}

type eventLog struct {
	mu     sync.Mutex
	events []ProgressEvent
}

func (l *eventLog) add(e ProgressEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) has(level ProgressLevel, substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.events {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func newTestManager(t *testing.T, settings *config.Settings) (*Manager, *eventLog) {
	t.Helper()
	log := &eventLog{}
	m, err := NewManager(settings, log.add)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m, log
}

func testSettings() *config.Settings {
	s := config.DefaultSettings()
	s.Frames = []string{"TPE1"}
	s.MaxConcurrentFiles = 2
	return s
}

func TestManager_Run(t *testing.T) {
	dir := t.TempDir()
	writeTestMP3(t, filepath.Join(dir, "01.mp3"), "A（B）、C")
	writeTestMP3(t, filepath.Join(dir, "02.mp3"), "A（B")
	writeTestMP3(t, filepath.Join(dir, "03.mp3"), "")
	writeTestMP3(t, filepath.Join(dir, "04.mp3"), "gone")

	m, log := newTestManager(t, testSettings())
	ctx := context.Background()
	if err := m.Initialize(ctx, []string{dir}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if len(m.Files()) != 4 {
		t.Fatalf("Files() = %v, want 4 files", m.Files())
	}
	if err := os.Remove(filepath.Join(dir, "04.mp3")); err != nil {
		t.Fatal(err)
	}

	if err := m.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	tracks := m.Tracks()
	if len(tracks) != 3 {
		t.Fatalf("Tracks() = %d tracks, want 3", len(tracks))
	}
	if !tracks[0].Credit(model.FrameLeadArtist).Valid() {
		t.Errorf("01.mp3 credit should be valid: %v", tracks[0].Credits[0].Err)
	}
	if got := tracks[0].Credit(model.FrameLeadArtist).Artists.Len(); got != 2 {
		t.Errorf("01.mp3 top-level artists = %d, want 2", got)
	}
	if len(tracks[1].Invalid()) != 1 {
		t.Errorf("02.mp3 should have one invalid credit")
	}
	if len(tracks[2].Credits) != 0 {
		t.Errorf("03.mp3 should have no credits, got %v", tracks[2].Credits)
	}

	processed, total, failed, invalid := m.GetProgress()
	if processed != 4 || total != 4 || failed != 1 || invalid != 1 {
		t.Errorf("GetProgress() = %d, %d, %d, %d, want 4, 4, 1, 1", processed, total, failed, invalid)
	}

	if !log.has(LevelError, "04.mp3") {
		t.Error("missing file should be reported as an error")
	}
	if !log.has(LevelWarning, "expected right bracket") {
		t.Error("invalid credit should be reported as a warning")
	}
	if !log.has(LevelInfo, "Found 4 audio file(s)") {
		t.Error("discovery should be reported")
	}
}

func TestManager_NormalizeUnicode(t *testing.T) {
	dir := t.TempDir()
	writeTestMP3(t, filepath.Join(dir, "01.mp3"), "Cafe\u0301（A）")

	settings := testSettings()
	settings.NormalizeUnicode = true
	m, _ := newTestManager(t, settings)

	ctx := context.Background()
	if err := m.Initialize(ctx, []string{dir}); err != nil {
		t.Fatal(err)
	}
	if err := m.Run(ctx); err != nil {
		t.Fatal(err)
	}

	c := m.Tracks()[0].Credit(model.FrameLeadArtist)
	if c.Raw != "Cafe\u0301（A）" {
		t.Errorf("Raw = %q, should keep the tag value", c.Raw)
	}
	if got := c.Artists[0].Name; got != "Caf\u00e9" {
		t.Errorf("Name = %q, want composed %q", got, "Caf\u00e9")
	}
}

func TestManager_Normalize(t *testing.T) {
	dir := t.TempDir()
	changed := filepath.Join(dir, "01.mp3")
	clean := filepath.Join(dir, "02.mp3")
	writeTestMP3(t, changed, "A、、B（C）")
	writeTestMP3(t, clean, "A（B）")

	m, log := newTestManager(t, testSettings())
	ctx := context.Background()
	if err := m.Initialize(ctx, []string{dir}); err != nil {
		t.Fatal(err)
	}
	if err := m.Run(ctx); err != nil {
		t.Fatal(err)
	}

	n, err := m.Normalize(ctx, true)
	if err != nil || n != 1 {
		t.Fatalf("Normalize(dry run) = %d, %v, want 1, nil", n, err)
	}
	if !log.has(LevelInfo, "01.mp3: TPE1") {
		t.Error("dry run should report the pending change")
	}
	if _, err := os.Stat(changed + ".bak"); !os.IsNotExist(err) {
		t.Error("dry run should not create a backup")
	}

	n, err = m.Normalize(ctx, false)
	if err != nil || n != 1 {
		t.Fatalf("Normalize() = %d, %v, want 1, nil", n, err)
	}
	if _, err := os.Stat(changed + ".bak"); err != nil {
		t.Errorf("backup missing: %v", err)
	}
	if _, err := os.Stat(clean + ".bak"); !os.IsNotExist(err) {
		t.Error("unchanged file should not be backed up")
	}

	track, err := audio.NewTagger(nil).ReadTrack(changed, []model.FrameID{model.FrameLeadArtist})
	if err != nil {
		t.Fatal(err)
	}
	if got := track.Credits[0].Raw; got != `A\、B（C）` {
		t.Errorf("TPE1 after normalize = %q, want %q", got, `A\、B（C）`)
	}
}

func TestManager_NormalizeKeepsLeftoverText(t *testing.T) {
	tests := []struct {
		name string
		lead string
	}{
		{"trailing name", "A、、B（C）D、E"},
		{"trailing bracket", "A、、B）"},
		{"dangling escape", `A、、B\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "01.mp3")
			writeTestMP3(t, path, tt.lead)

			settings := testSettings()
			settings.BackupBeforeWrite = false
			m, log := newTestManager(t, settings)

			ctx := context.Background()
			if err := m.Initialize(ctx, []string{dir}); err != nil {
				t.Fatal(err)
			}
			if err := m.Run(ctx); err != nil {
				t.Fatal(err)
			}
			if !log.has(LevelWarning, "will not be rewritten") {
				t.Error("leftover text should be reported")
			}

			n, err := m.Normalize(ctx, false)
			if err != nil || n != 0 {
				t.Fatalf("Normalize() = %d, %v, want 0, nil", n, err)
			}

			track, err := audio.NewTagger(nil).ReadTrack(path, []model.FrameID{model.FrameLeadArtist})
			if err != nil {
				t.Fatal(err)
			}
			if got := track.Credits[0].Raw; got != tt.lead {
				t.Errorf("TPE1 after normalize = %q, want %q", got, tt.lead)
			}
		})
	}
}

func TestInlineDiff(t *testing.T) {
	tests := []struct {
		before, after, want string
	}{
		{"same", "same", "same"},
		{"abc", "abd", "ab[-c-]{+d+}"},
		{"", "new", "{+new+}"},
	}

	for _, tt := range tests {
		if got := InlineDiff(tt.before, tt.after); got != tt.want {
			t.Errorf("InlineDiff(%q, %q) = %q, want %q", tt.before, tt.after, got, tt.want)
		}
	}
}

func TestNewManager_BadFrame(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Frames = []string{"TIT2"}
	if _, err := NewManager(settings, nil); err == nil {
		t.Error("NewManager() should reject unknown frames")
	}
}
