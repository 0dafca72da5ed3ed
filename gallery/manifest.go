package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// maxManifestSize bounds how much of a remote manifest is read
const maxManifestSize = 1 << 20

var (
	// ErrUnsupportedFormat is returned for manifest extensions other than json, yaml, yml and toml
	ErrUnsupportedFormat = errors.New("unsupported manifest format")

	// ErrEmptyManifest is returned by callers that require at least one entry
	ErrEmptyManifest = errors.New("manifest has no experiments")

	// ErrInvalidEntry is returned when a record lacks a name or file
	ErrInvalidEntry = errors.New("invalid manifest entry")
)

// Entry is one experiment record of the manifest
type Entry struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	File        string `json:"file" yaml:"file" toml:"file"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Script returns the registry key of the entry's experiment script
func (e Entry) Script() string {
	return ScriptKey(e.File)
}

// tomlManifest wraps the entry list since TOML has no top-level arrays
type tomlManifest struct {
	Experiments []Entry `toml:"experiments"`
}

// ScriptKey normalizes a manifest file reference, so "experiments/Galaxy.js"
// and "./experiments/galaxy" both resolve to "experiments/galaxy"
func ScriptKey(file string) string {
	p := path.Clean(strings.ReplaceAll(strings.TrimSpace(file), "\\", "/"))
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimSuffix(p, path.Ext(p))
	return strings.ToLower(p)
}

// LoadManifest fetches and parses the manifest at location, a file path or an http(s) URL
func LoadManifest(ctx context.Context, location string) ([]Entry, error) {
	data, err := fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	return ParseManifest(formatOf(location), data)
}

// ParseManifest decodes data in the given format ("json", "yaml", "yml" or "toml")
func ParseManifest(format string, data []byte) ([]Entry, error) {
	var entries []Entry

	switch strings.ToLower(format) {
	case "json":
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse json manifest: %w", err)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml manifest: %w", err)
		}
	case "toml":
		var m tomlManifest
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse toml manifest: %w", err)
		}
		entries = m.Experiments
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.File) == "" {
			return nil, fmt.Errorf("%w: record %d needs name and file", ErrInvalidEntry, i)
		}
	}
	return entries, nil
}

// formatOf derives the format from the extension of a path or URL path
func formatOf(location string) string {
	p := location
	if u, err := url.Parse(location); err == nil && isRemote(u) {
		p = u.Path
	}
	return strings.TrimPrefix(path.Ext(p), ".")
}

func isRemote(u *url.URL) bool {
	return u.Scheme == "http" || u.Scheme == "https"
}

func fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil || !isRemote(u) {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("read manifest: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch manifest: %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize))
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}
	return data, nil
}
