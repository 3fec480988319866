// Package driver loads the optional program.yml manifest that names a
// marl program's entry document and presentation overrides.
package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the file the driver looks for when no explicit
// document is given.
const ManifestFileName = "program.yml"

// ErrManifestNotFound reports that no manifest exists between the start
// directory and the filesystem root.
var ErrManifestNotFound = errors.New("program.yml not found")

// Manifest represents the parsed contents of program.yml.
type Manifest struct {
	Path    string
	Name    string
	Version string
	Entry   string
	Style   StyleOverrides
}

// StyleOverrides take precedence over the document root's attributes.
type StyleOverrides struct {
	Color      string
	FontFamily string
	FontSize   string
}

type manifestDoc struct {
	Name    string         `yaml:"name"`
	Version string         `yaml:"version"`
	Entry   string         `yaml:"entry"`
	Style   *styleDoc      `yaml:"style"`
	Extra   map[string]any `yaml:",inline"`
}

type styleDoc struct {
	Color      string `yaml:"color"`
	FontFamily string `yaml:"font-family"`
	FontSize   string `yaml:"font-size"`
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest reads and validates a program.yml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	var issues []string
	if strings.TrimSpace(doc.Name) == "" {
		issues = append(issues, "name is required")
	}
	if strings.TrimSpace(doc.Entry) == "" {
		issues = append(issues, "entry is required")
	}
	for key := range doc.Extra {
		issues = append(issues, fmt.Sprintf("unknown field %q", key))
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	manifest := &Manifest{
		Path:    path,
		Name:    doc.Name,
		Version: doc.Version,
		Entry:   doc.Entry,
	}
	if doc.Style != nil {
		manifest.Style = StyleOverrides{
			Color:      doc.Style.Color,
			FontFamily: doc.Style.FontFamily,
			FontSize:   doc.Style.FontSize,
		}
	}
	return manifest, nil
}

// EntryPath resolves the entry document relative to the manifest's
// directory.
func (m *Manifest) EntryPath() string {
	if filepath.IsAbs(m.Entry) {
		return m.Entry
	}
	return filepath.Join(filepath.Dir(m.Path), m.Entry)
}

// ApplyStyle overlays the manifest's overrides onto attribute-derived
// style values.
func (m *Manifest) ApplyStyle(attrs map[string]string) map[string]string {
	merged := make(map[string]string, len(attrs)+3)
	for k, v := range attrs {
		merged[k] = v
	}
	if m.Style.Color != "" {
		merged["color"] = m.Style.Color
	}
	if m.Style.FontFamily != "" {
		merged["font-family"] = m.Style.FontFamily
	}
	if m.Style.FontSize != "" {
		merged["font-size"] = m.Style.FontSize
	}
	return merged
}

// FindManifest walks upward from start looking for program.yml.
func FindManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, ManifestFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrManifestNotFound
		}
		dir = parent
	}
}
