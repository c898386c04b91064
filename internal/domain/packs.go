package domain

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPacksDir is the default directory for vocabulary packs relative
// to the project root dir.
const DefaultPacksDir = "packs"

// Pack is a YAML vocabulary pack. Each file may add or replace the
// specialized data for any number of domains.
type Pack struct {
	Domains map[string]PackDomain `yaml:"domains"`
}

// PackDomain carries the overridable tables for one domain. Absent
// sections leave the builtin data for that domain untouched.
type PackDomain struct {
	Words        map[string][]string `yaml:"words,omitempty"`
	Analogies    map[string][]string `yaml:"analogies,omitempty"`
	Biomimicry   []BiomimicryExample `yaml:"biomimicry,omitempty"`
	Perspectives map[string][]string `yaml:"perspectives,omitempty"`
}

// PackLoader scans and parses vocabulary pack files from a directory.
// It uses an afero.Fs interface for filesystem operations, enabling
// easy testing with in-memory filesystems.
type PackLoader struct {
	fs      afero.Fs
	baseDir string
}

// NewPackLoader creates a loader over the provided filesystem.
// Use afero.NewOsFs() for real filesystem operations,
// or afero.NewMemMapFs() for testing.
func NewPackLoader(fs afero.Fs, baseDir string) *PackLoader {
	return &PackLoader{fs: fs, baseDir: baseDir}
}

// NewOsPackLoader creates a PackLoader using the real operating system
// filesystem.
func NewOsPackLoader(baseDir string) *PackLoader {
	return NewPackLoader(afero.NewOsFs(), baseDir)
}

// LoadAll parses every .yaml/.yml pack in the directory. A missing
// directory returns an empty slice; it is not an error to run without
// packs. Subdirectories are scanned recursively.
func (pl *PackLoader) LoadAll() ([]*Pack, error) {
	exists, err := afero.DirExists(pl.fs, pl.baseDir)
	if err != nil {
		return nil, fmt.Errorf("check packs directory: %w", err)
	}
	if !exists {
		return []*Pack{}, nil
	}

	var packs []*Pack

	err = afero.Walk(pl.fs, pl.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(info.Name(), ".yaml") && !strings.HasSuffix(info.Name(), ".yml") {
			return nil
		}

		pack, err := pl.loadFile(path)
		if err != nil {
			return fmt.Errorf("load pack %s: %w", path, err)
		}
		packs = append(packs, pack)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk packs directory: %w", err)
	}

	return packs, nil
}

func (pl *PackLoader) loadFile(path string) (*Pack, error) {
	file, err := pl.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var pack Pack
	if err := yaml.Unmarshal(content, &pack); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &pack, nil
}

// Exists checks if the packs directory exists.
func (pl *PackLoader) Exists() (bool, error) {
	return afero.DirExists(pl.fs, pl.baseDir)
}

// LoadPacks merges every pack from dir into the Lookup. It must run
// before the Lookup is shared; the Lookup is immutable afterwards.
func (l *Lookup) LoadPacks(fs afero.Fs, dir string) error {
	packs, err := NewPackLoader(fs, dir).LoadAll()
	if err != nil {
		return err
	}
	for _, pack := range packs {
		l.merge(pack)
	}
	return nil
}

func (l *Lookup) merge(pack *Pack) {
	for domain, data := range pack.Domains {
		if len(data.Words) > 0 {
			cats := l.words[domain]
			if cats == nil {
				cats = make(map[string][]string, len(data.Words))
			} else {
				// Copy-on-write so builtin tables stay pristine.
				copied := make(map[string][]string, len(cats)+len(data.Words))
				for c, w := range cats {
					copied[c] = w
				}
				cats = copied
			}
			for category, words := range data.Words {
				cats[category] = words
			}
			l.words[domain] = cats
		}
		if len(data.Analogies) > 0 {
			l.analogies[domain] = data.Analogies
		}
		if len(data.Biomimicry) > 0 {
			l.biomimicry[domain] = data.Biomimicry
		}
		if len(data.Perspectives) > 0 {
			l.perspectives[domain] = data.Perspectives
		}
	}
}
