package authoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a collider document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for an unsupported document format.
var ErrUnknownFormat = errors.New("unknown document format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatYAML, FormatJSON, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

func LoadYAML(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("authoring: decode yaml: %w", err)
	}
	return &doc, nil
}

func LoadJSON(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("authoring: decode json: %w", err)
	}
	return &doc, nil
}

func LoadTOML(r io.Reader) (*Document, error) {
	var doc Document
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("authoring: decode toml: %w", err)
	}
	return &doc, nil
}

// Load decodes a document in the given format.
func Load(r io.Reader, format Format) (*Document, error) {
	switch format {
	case FormatYAML:
		return LoadYAML(r)
	case FormatJSON:
		return LoadJSON(r)
	case FormatTOML:
		return LoadTOML(r)
	default:
		return nil, fmt.Errorf("authoring: %q: %w", format, ErrUnknownFormat)
	}
}

// LoadFile decodes the document at path, choosing the format by extension.
func LoadFile(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("authoring: %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("authoring: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return doc, nil
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, format Format, doc *Document) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("authoring: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("authoring: encode json: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("authoring: encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("authoring: %q: %w", format, ErrUnknownFormat)
	}
}
