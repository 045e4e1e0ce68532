package audio

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/handiism/artist-credits/internal/artist"
	"github.com/handiism/artist-credits/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportFormat represents supported report formats.
type ReportFormat int

const (
	// FormatTree prints an indented tree with branch guides.
	FormatTree ReportFormat = iota

	// FormatFlat prints one "depth<TAB>name" line per artist, depth-first.
	FormatFlat

	// FormatJSON prints nested {"name", "children"} objects.
	FormatJSON

	// FormatYAML prints the same structure as FormatJSON in YAML.
	FormatYAML
)

// ParseReportFormat converts a format name.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tree", "":
		return FormatTree, nil
	case "flat":
		return FormatFlat, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatTree, fmt.Errorf("unknown report format %q", s)
	}
}

func (f ReportFormat) String() string {
	switch f {
	case FormatFlat:
		return "flat"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "tree"
	}
}

// ReportCreator renders artist trees and scanned tracks.
//
// Example:
//
//	creator := NewReportCreator(FormatTree)
//	out, _ := creator.RenderList(list)
//
//	// Result for "A（B、C）、D":
//	// A
//	// ├─ B
//	// └─ C
//	// D
type ReportCreator struct {
	format ReportFormat
}

// NewReportCreator creates a new ReportCreator.
func NewReportCreator(format ReportFormat) *ReportCreator {
	return &ReportCreator{format: format}
}

// Format returns the creator's output format.
func (r *ReportCreator) Format() ReportFormat {
	return r.format
}

type artistNode struct {
	Name     string       `json:"name" yaml:"name"`
	Children []artistNode `json:"children,omitempty" yaml:"children,omitempty"`
}

type creditReport struct {
	Frame     string       `json:"frame" yaml:"frame"`
	Raw       string       `json:"raw" yaml:"raw"`
	Canonical string       `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Artists   []artistNode `json:"artists,omitempty" yaml:"artists,omitempty"`
	Error     string       `json:"error,omitempty" yaml:"error,omitempty"`
}

type trackReport struct {
	Path    string         `json:"path" yaml:"path"`
	Title   string         `json:"title,omitempty" yaml:"title,omitempty"`
	Album   string         `json:"album,omitempty" yaml:"album,omitempty"`
	Credits []creditReport `json:"credits" yaml:"credits"`
}

// RenderList renders a single artist tree.
func (r *ReportCreator) RenderList(list artist.ArtistList) (string, error) {
	switch r.format {
	case FormatFlat:
		return renderFlat(list, ""), nil
	case FormatJSON:
		return marshalJSON(toNodes(list))
	case FormatYAML:
		return marshalYAML(toNodes(list))
	default:
		return renderTree(list, ""), nil
	}
}

// CreateReport renders every credit of every track.
func (r *ReportCreator) CreateReport(tracks []*model.Track) (string, error) {
	switch r.format {
	case FormatJSON:
		return marshalJSON(toTrackReports(tracks))
	case FormatYAML:
		return marshalYAML(toTrackReports(tracks))
	}

	var sb strings.Builder
	for _, track := range tracks {
		sb.WriteString(track.Path + "\n")
		if len(track.Credits) == 0 {
			sb.WriteString("  (no credits)\n")
			continue
		}
		for _, c := range track.Credits {
			sb.WriteString(fmt.Sprintf("  %s %s: %s\n", c.Frame, c.Frame.Description(), c.Raw))
			if c.Err != nil {
				sb.WriteString(fmt.Sprintf("    error: %v\n", c.Err))
				continue
			}
			if r.format == FormatFlat {
				sb.WriteString(renderFlat(c.Artists, "    "))
			} else {
				sb.WriteString(renderTree(c.Artists, "    "))
			}
		}
	}
	return sb.String(), nil
}

// renderTree writes top-level names flush with indent and nested groups
// with branch guides below them.
func renderTree(list artist.ArtistList, indent string) string {
	var sb strings.Builder
	for _, a := range list {
		sb.WriteString(indent + a.Name + "\n")
		writeBranches(&sb, a.Children, indent)
	}
	return sb.String()
}

func writeBranches(sb *strings.Builder, list artist.ArtistList, prefix string) {
	for i, a := range list {
		branch, next := "├─ ", "│  "
		if i == len(list)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix + branch + a.Name + "\n")
		writeBranches(sb, a.Children, prefix+next)
	}
}

func renderFlat(list artist.ArtistList, indent string) string {
	var sb strings.Builder
	list.Walk(func(depth int, a artist.Artist) bool {
		sb.WriteString(fmt.Sprintf("%s%d\t%s\n", indent, depth, a.Name))
		return true
	})
	return sb.String()
}

func toNodes(list artist.ArtistList) []artistNode {
	if list == nil {
		return nil
	}
	nodes := make([]artistNode, len(list))
	for i, a := range list {
		nodes[i] = artistNode{Name: a.Name, Children: toNodes(a.Children)}
	}
	return nodes
}

func toTrackReports(tracks []*model.Track) []trackReport {
	reports := make([]trackReport, 0, len(tracks))
	for _, track := range tracks {
		tr := trackReport{
			Path:    track.Path,
			Title:   track.Title,
			Album:   track.Album,
			Credits: make([]creditReport, 0, len(track.Credits)),
		}
		for _, c := range track.Credits {
			cr := creditReport{Frame: string(c.Frame), Raw: c.Raw}
			if c.Err != nil {
				cr.Error = c.Err.Error()
			} else {
				cr.Canonical = c.Canonical()
				cr.Artists = toNodes(c.Artists)
			}
			tr.Credits = append(tr.Credits, cr)
		}
		reports = append(reports, tr)
	}
	return reports
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
