// Package schemafile loads schema documents from YAML or JSON. Documents can
// only express the preset-backed subset of strategies: custom Go merge and
// validate functions have no file representation by design.
package schemafile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	kvmerge "github.com/reoring/kvmerge"
	"github.com/reoring/kvmerge/i18n"
)

// Format selects the document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// keyDoc mirrors one schema entry on disk. The keys field is a sequence, so
// both decoders preserve declaration order for free.
type keyDoc struct {
	Key      string   `yaml:"key" json:"key"`
	Required bool     `yaml:"required" json:"required"`
	Requires []string `yaml:"requires" json:"requires"`
	Merge    string   `yaml:"merge" json:"merge"`
}

type schemaDoc struct {
	Keys []keyDoc `yaml:"keys" json:"keys"`
}

func decodeIssue(err error) kvmerge.Issues {
	return kvmerge.Issues{{
		Path:    "/",
		Code:    kvmerge.CodeSchemaDefinition,
		Message: i18n.T(kvmerge.CodeSchemaDefinition, nil),
		Hint:    "schema document did not decode",
		Cause:   err,
	}}
}

// Load reads a schema document and builds an Engine from it. Unknown preset
// names and structural problems surface as schema_definition issues.
func Load(r io.Reader, format Format) (*kvmerge.Engine, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, decodeIssue(err)
	}
	var doc schemaDoc
	switch format {
	case FormatJSON:
		if err := gojson.Unmarshal(raw, &doc); err != nil {
			return nil, decodeIssue(err)
		}
	default:
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, decodeIssue(err)
		}
	}
	strategies := make([]kvmerge.Strategy, 0, len(doc.Keys))
	for _, k := range doc.Keys {
		strategies = append(strategies, kvmerge.Strategy{
			Key:      k.Key,
			Required: k.Required,
			Requires: k.Requires,
			Preset:   k.Merge,
		})
	}
	return kvmerge.New(strategies...)
}

// LoadFile loads a schema document, picking the format from the extension
// (.yaml/.yml or .json).
func LoadFile(path string) (*kvmerge.Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Load(f, FormatYAML)
	case ".json":
		return Load(f, FormatJSON)
	default:
		return nil, fmt.Errorf("schemafile: unsupported extension %q", filepath.Ext(path))
	}
}

// ReadRecord decodes one JSON object into a Record.
func ReadRecord(r io.Reader) (kvmerge.Record, error) {
	var rec kvmerge.Record
	if err := gojson.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("schemafile: decode record: %w", err)
	}
	return rec, nil
}

// ReadRecordFile decodes the JSON object stored at path.
func ReadRecordFile(path string) (kvmerge.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRecord(f)
}

// WriteRecord encodes a Record as JSON.
func WriteRecord(w io.Writer, rec kvmerge.Record) error {
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
