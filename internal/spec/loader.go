package spec

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a stub file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DefaultOutput is the generated file name when none is configured.
const DefaultOutput = "serializer_stubs.go"

// FormatOf infers the format from a file extension. Unknown extensions are
// treated as YAML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// LoadFile loads and parses a stub file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read stub file %s", path)
	}

	f, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	f.Dir = filepath.Dir(path)

	return f, nil
}

// Parse parses stub file data in the given format.
func Parse(data []byte, format Format) (*File, error) {
	var f File

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, errors.Wrap(err, "failed to parse stub TOML")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "failed to parse stub YAML")
		}
	default:
		return nil, errors.Newf("unsupported stub file format %q", format)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Output == "" {
		f.Output = DefaultOutput
	}

	if f.SerPath == "" {
		f.SerPath = DefaultSerPath
	}

	for i := range f.Serializers {
		s := &f.Serializers[i]
		if strings.TrimSpace(s.Ok) == "" {
			s.Ok = "struct{}"
		}
	}
}

// OutputPath returns the generated file path, resolved against the stub
// file directory.
func (f *File) OutputPath() string {
	if filepath.IsAbs(f.Output) || f.Dir == "" {
		return f.Output
	}

	return filepath.Join(f.Dir, f.Output)
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
