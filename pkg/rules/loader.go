package rules

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/skillguard/pkg/errors"
	"github.com/arthur-debert/skillguard/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a corpus file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat normalizes a user supplied format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unsupported corpus format %q", name)
}

// FormatFromPath infers the corpus format from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// corpusFile is the on-disk layout shared by every format
type corpusFile struct {
	Version string       `json:"version" yaml:"version" toml:"version"`
	Rules   []Definition `json:"rules" yaml:"rules" toml:"rules"`
}

// LoadFile reads and validates a corpus file. An updater replacing the file
// between scans only needs the next LoadFile call to pick it up.
func LoadFile(path string) (*Corpus, error) {
	logger := logging.GetLogger("rules.loader")

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCorpusLoad, "cannot load corpus %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCorpusLoad, "cannot read corpus %s", path)
	}

	corpus, err := Parse(data, format)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("version", corpus.Version()).
		Int("ruleCount", corpus.Len()).
		Int("hardTriggers", len(corpus.hardTriggers)).
		Msg("Loaded rule corpus")

	return corpus, nil
}

// Parse decodes and validates corpus data in the given format
func Parse(data []byte, format Format) (*Corpus, error) {
	var file corpusFile
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &file)
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	case FormatJSON:
		err = json.Unmarshal(data, &file)
	default:
		return nil, errors.Newf(errors.ErrCorpusLoad, "unsupported corpus format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCorpusLoad, "cannot decode %s corpus", format)
	}

	if len(file.Rules) == 0 {
		return nil, errors.New(errors.ErrCorpusLoad, "corpus contains no rules")
	}

	return NewCorpus(file.Version, file.Rules)
}

// Export encodes a corpus in the given format. Parse(Export(c)) yields an
// equivalent corpus.
func Export(c *Corpus, format Format) ([]byte, error) {
	file := corpusFile{
		Version: c.Version(),
		Rules:   c.Definitions(),
	}

	switch format {
	case FormatTOML:
		return toml.Marshal(file)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(file, "", "  ")
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unsupported corpus format %q", format)
}
