// records.go - Records file codec: format detection, Load and Save
package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/rootisgod/tablekit/datatable"
)

// ErrUnsupportedFormat is returned for file extensions with no codec.
var ErrUnsupportedFormat = errors.New("unsupported records format")

// Format is a records serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCBOR Format = "cbor"
)

// Compression is an optional outer compression layer.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// Detect picks the format and compression of path from its
// extensions, e.g. "people.yaml", "people.json.zst", "dump.cbor.lz4".
func Detect(path string) (Format, Compression, error) {
	name := strings.ToLower(filepath.Base(path))

	compression := CompressionNone
	switch ext := filepath.Ext(name); ext {
	case ".zst", ".zstd":
		compression = CompressionZstd
		name = strings.TrimSuffix(name, ext)
	case ".lz4":
		compression = CompressionLZ4
		name = strings.TrimSuffix(name, ext)
	}

	switch filepath.Ext(name) {
	case ".json", ".jsonc":
		return FormatJSON, compression, nil
	case ".yaml", ".yml":
		return FormatYAML, compression, nil
	case ".toml":
		return FormatTOML, compression, nil
	case ".cbor":
		return FormatCBOR, compression, nil
	}
	return "", "", fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
}

// Load reads a records file. The top level must be an array of
// objects; for TOML, an array of tables under the "records" key.
func Load(path string) ([]datatable.Record, error) {
	format, compression, err := Detect(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	data, err = decompress(data, compression)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	records, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Save writes records to path in the format its extension names.
func Save(path string, records []datatable.Record) error {
	format, compression, err := Detect(path)
	if err != nil {
		return err
	}

	data, err := Encode(records, format)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	data, err = compress(data, compression)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ─── Codecs ────────────────────────────────────────────────────────────────────

// tomlDocument is the TOML shape: records live in [[records]] tables.
type tomlDocument struct {
	Records []datatable.Record `toml:"records"`
}

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("records: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		// Nested maps decode as map[string]any like the other formats.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("records: CBOR decoder initialization failed: " + err.Error())
	}
}

// Decode parses uncompressed records data.
func Decode(data []byte, format Format) ([]datatable.Record, error) {
	var records []datatable.Record

	switch format {
	case FormatJSON:
		// Comments and trailing commas are accepted.
		if err := json.Unmarshal(jsonc.ToJSON(data), &records); err != nil {
			return nil, fmt.Errorf("parsing JSON records: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parsing YAML records: %w", err)
		}
	case FormatTOML:
		var doc tomlDocument
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing TOML records: %w", err)
		}
		records = doc.Records
	case FormatCBOR:
		if err := cborDecMode.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parsing CBOR records: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	if records == nil {
		records = []datatable.Record{}
	}
	return records, nil
}

// Encode serializes records.
func Encode(records []datatable.Record, format Format) ([]byte, error) {
	if records == nil {
		records = []datatable.Record{}
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding JSON records: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("encoding YAML records: %w", err)
		}
		return data, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(tomlDocument{Records: records}); err != nil {
			return nil, fmt.Errorf("encoding TOML records: %w", err)
		}
		return buf.Bytes(), nil
	case FormatCBOR:
		data, err := cborEncMode.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("encoding CBOR records: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
}
