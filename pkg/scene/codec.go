package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	yaml "gopkg.in/yaml.v3"

	errs "github.com/matzehuels/mosaic/pkg/errors"
)

// Format is a scene file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatTOML, FormatYAML}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "cannot infer scene format from %q (want .json, .toml, .yaml or .yml)", path)
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatTOML, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unknown scene format %q", name)
}

// Parse decodes and validates a scene.
func Parse(data []byte, format Format) (*Scene, error) {
	var s Scene
	if err := decode(data, format, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func decode(data []byte, format Format, s *Scene) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidScene, err, "decode json scene")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(s)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidScene, err, "decode toml scene")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return errs.New(errs.ErrCodeInvalidScene, "decode toml scene: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		// Only fields we define are accepted, so yaml.Unmarshal is not used.
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			if errors.Is(err, io.EOF) {
				return errs.New(errs.ErrCodeInvalidScene, "decode yaml scene: empty document")
			}
			return errs.Wrap(errs.ErrCodeInvalidScene, err, "decode yaml scene")
		}
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unknown scene format %q", format)
	}
	return nil
}

// Load reads a scene file, inferring the format from its extension.
func Load(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "scene %s", path)
		}
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Encode writes the scene in the given format.
func (s *Scene) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	return errs.New(errs.ErrCodeInvalidFormat, "unknown scene format %q", format)
}

// Marshal is Encode into a byte slice.
func (s *Scene) Marshal(format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the scene to path, inferring the format from the extension.
func (s *Scene) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := s.Marshal(format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
