// Package discovery locates skill roots, directories holding a SKILL.md
// manifest, and reads their metadata.
package discovery

import (
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/skillguard/pkg/collector"
	"github.com/arthur-debert/skillguard/pkg/errors"
	"github.com/arthur-debert/skillguard/pkg/filesystem"
	"github.com/arthur-debert/skillguard/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Skill is one discovered skill root
type Skill struct {
	// ID is the slash-separated path of the skill relative to the discovery
	// root, or the root's base name when the root itself is a skill.
	ID          string
	Path        string
	Name        string
	Description string
	Author      string
	Version     string
}

// Manifest is the YAML front matter of a SKILL.md
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Version     string `yaml:"version"`
}

var frontMatter = regexp.MustCompile(`(?s)\A---[ \t]*\r?\n(.*?)\r?\n---`)

// ParseManifest extracts metadata from SKILL.md content. Without front matter
// the first "# " heading is the name and the first plain text line is the
// description.
func ParseManifest(content []byte) (Manifest, error) {
	var m Manifest
	if match := frontMatter.FindSubmatch(content); match != nil {
		if err := yaml.Unmarshal(match[1], &m); err != nil {
			return Manifest{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid manifest front matter")
		}
		return m, nil
	}

	inFence := false
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "```"):
			inFence = !inFence
		case inFence || line == "":
		case strings.HasPrefix(line, "# "):
			if m.Name == "" {
				m.Name = strings.TrimSpace(line[2:])
			}
		case strings.HasPrefix(line, "#"):
		default:
			if m.Description == "" {
				m.Description = line
			}
		}
	}
	return m, nil
}

// Discover walks root and returns every skill found, in lexical walk order.
// It does not look for nested skills inside a skill root, and it skips the
// directories the collector prunes.
func Discover(fsys filesystem.FS, root string) ([]Skill, error) {
	logger := logging.GetLogger("discovery")

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirectoryNotFound, "directory not found: %s", root).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrDirectoryNotFound, "not a directory: %s", root).
			WithDetail("path", root)
	}

	skills := make([]Skill, 0)
	var walk func(rel string) error
	walk = func(rel string) error {
		dir := filepath.Join(root, filepath.FromSlash(rel))
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			if rel == "." {
				return errors.Wrapf(err, errors.ErrDirectoryNotFound, "cannot list directory: %s", root).
					WithDetail("path", root)
			}
			logger.Debug().Err(err).Str("path", rel).Msg("Skipping unreadable directory")
			return nil
		}

		for _, e := range entries {
			// Manifest names are matched case-insensitively (SKILL.md, skill.md)
			if strings.EqualFold(e.Name(), collector.ManifestFile) && e.Type().IsRegular() {
				skills = append(skills, load(fsys, root, rel, e.Name()))
				return nil
			}
		}

		for _, e := range entries {
			if !e.IsDir() || e.Type()&fs.ModeSymlink != 0 || collector.IsPruned(e.Name()) {
				continue
			}
			if err := walk(path.Join(rel, e.Name())); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk("."); err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Int("skills", len(skills)).Msg("Discovery complete")
	return skills, nil
}

func load(fsys filesystem.FS, root, rel, manifest string) Skill {
	dir := filepath.Join(root, filepath.FromSlash(rel))
	id := rel
	if rel == "." {
		id = filepath.Base(filepath.Clean(root))
	}

	skill := Skill{ID: id, Path: dir, Name: path.Base(filepath.ToSlash(dir))}
	logger := logging.GetLogger("discovery")

	data, err := fsys.ReadFile(filepath.Join(dir, manifest))
	if err != nil {
		logger.Warn().Err(err).Str("skill", id).Msg("Cannot read manifest")
		return skill
	}
	m, err := ParseManifest(data)
	if err != nil {
		logger.Warn().Err(err).Str("skill", id).Msg("Cannot parse manifest")
		return skill
	}

	if m.Name != "" {
		skill.Name = m.Name
	}
	skill.Description = m.Description
	skill.Author = m.Author
	skill.Version = m.Version
	return skill
}
