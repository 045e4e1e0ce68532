package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/handiism/artist-credits/internal/artist"
	"github.com/handiism/artist-credits/internal/audio"
	"github.com/handiism/artist-credits/internal/config"
	ioutils "github.com/handiism/artist-credits/internal/io"
	"github.com/handiism/artist-credits/internal/model"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a scan progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates credit scanning.
type Manager struct {
	settings *config.Settings
	frames   []model.FrameID
	parser   *artist.Parser
	tagger   *audio.Tagger

	files          []string
	tracks         []*model.Track
	processedFiles int32
	failedFiles    int32
	invalidCredits int32

	onProgress func(ProgressEvent)
	progressMu sync.Mutex
	mu         sync.Mutex
}

// NewManager creates a new scan Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) (*Manager, error) {
	frames, err := settings.FrameIDs()
	if err != nil {
		return nil, err
	}

	return &Manager{
		settings:   settings,
		frames:     frames,
		parser:     artist.NewParser(settings.ParserOptions()),
		tagger:     audio.NewTagger(audio.DefaultTagConfig()),
		onProgress: onProgress,
	}, nil
}

// Initialize discovers the audio files under paths.
func (m *Manager) Initialize(ctx context.Context, paths []string) error {
	files, err := ioutils.FindAudioFiles(ctx, paths, m.settings.Extensions, m.settings.Recursive)
	if err != nil {
		return err
	}

	m.files = files
	m.tracks = nil
	atomic.StoreInt32(&m.processedFiles, 0)
	atomic.StoreInt32(&m.failedFiles, 0)
	atomic.StoreInt32(&m.invalidCredits, 0)

	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audio file(s)", len(files)), Level: LevelInfo})
	return nil
}

// Run reads and parses every discovered file. Tracks keep discovery order.
func (m *Manager) Run(ctx context.Context) error {
	results := make([]*model.Track, len(m.files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentFiles)

	for i, path := range m.files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			track, err := m.scanFile(path)
			atomic.AddInt32(&m.processedFiles, 1)
			if err != nil {
				atomic.AddInt32(&m.failedFiles, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error reading %s: %v", path, err), Level: LevelError})
				return nil // Continue with other files
			}
			results[i] = track
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	m.mu.Lock()
	m.tracks = nil
	for _, track := range results {
		if track != nil {
			m.tracks = append(m.tracks, track)
		}
	}
	m.mu.Unlock()

	invalid := atomic.LoadInt32(&m.invalidCredits)
	if invalid == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("All credits in %d file(s) are valid", len(m.tracks)), Level: LevelSuccess})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d invalid credit(s)", invalid), Level: LevelWarning})
	}
	return nil
}

func (m *Manager) scanFile(path string) (*model.Track, error) {
	track, err := m.tagger.ReadTrack(path, m.frames)
	if err != nil {
		return nil, err
	}

	for _, c := range track.Credits {
		text := c.Raw
		if m.settings.NormalizeUnicode {
			text = norm.NFC.String(text)
		}
		c.Parse(m.parser, text)
		switch {
		case c.Err != nil:
			atomic.AddInt32(&m.invalidCredits, 1)
			m.progress(ProgressEvent{Message: fmt.Sprintf("%s: %s %v", filepath.Base(path), c.Frame, c.Err), Level: LevelWarning})
		case !c.Complete:
			m.progress(ProgressEvent{Message: fmt.Sprintf("%s: %s has text after the credit list, it will not be rewritten", filepath.Base(path), c.Frame), Level: LevelWarning})
		}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Scanned: %s (%d credit(s))", filepath.Base(path), len(track.Credits)), Level: LevelVerbose})
	return track, nil
}

// Normalize rewrites every changed credit in canonical form. With dryRun set
// nothing is written and each pending change is reported as a diff. It
// returns the number of frames written, or that would be written.
func (m *Manager) Normalize(ctx context.Context, dryRun bool) (int, error) {
	var written int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentFiles)

	for _, track := range m.Tracks() {
		track := track
		changed := track.Changed()
		if len(changed) == 0 {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if dryRun {
				for _, c := range changed {
					m.progress(ProgressEvent{Message: fmt.Sprintf("%s: %s %s", filepath.Base(track.Path), c.Frame, InlineDiff(c.Raw, c.Canonical())), Level: LevelInfo})
				}
				atomic.AddInt32(&written, int32(len(changed)))
				return nil
			}

			if m.settings.BackupBeforeWrite {
				if err := ioutils.CopyFile(ctx, track.Path, track.Path+".bak"); err != nil {
					m.progress(ProgressEvent{Message: fmt.Sprintf("Error backing up %s: %v", track.Path, err), Level: LevelError})
					return nil
				}
			}
			n, err := m.tagger.WriteCredits(track)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing %s: %v", track.Path, err), Level: LevelError})
				return nil
			}
			atomic.AddInt32(&written, int32(n))
			m.progress(ProgressEvent{Message: fmt.Sprintf("Normalized %d credit(s) in %s", n, filepath.Base(track.Path)), Level: LevelSuccess})
			return nil
		})
	}

	err := g.Wait()
	return int(atomic.LoadInt32(&written)), err
}

// InlineDiff marks the differences between before and after as [-removed-]
// and {+added+}.
func InlineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// Tracks returns the tracks read by the last Run.
func (m *Manager) Tracks() []*model.Track {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.Track(nil), m.tracks...)
}

// Files returns the files found by Initialize.
func (m *Manager) Files() []string {
	return m.files
}

// GetProgress returns current scan progress.
func (m *Manager) GetProgress() (processed, total, failed, invalid int32) {
	return atomic.LoadInt32(&m.processedFiles), int32(len(m.files)),
		atomic.LoadInt32(&m.failedFiles), atomic.LoadInt32(&m.invalidCredits)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.progressMu.Lock()
		defer m.progressMu.Unlock()
		m.onProgress(event)
	}
}
