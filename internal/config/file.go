package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dictionary engines.
const (
	EngineFuzzy = "fuzzy"
	EngineIndex = "index"
)

// DictionaryConfig names one dictionary to load.
type DictionaryConfig struct {
	Name   string `yaml:"name"`
	Engine string `yaml:"engine"`
	Words  string `yaml:"words"` // optional word list file; empty uses the embedded list
}

// File is the on-disk YAML configuration.
type File struct {
	Options      map[string]string  `yaml:"options"`
	Dictionaries []DictionaryConfig `yaml:"dictionaries"`
	Database     string             `yaml:"database"`
	LogDir       string             `yaml:"log_dir"`
}

// DefaultFile is used when no config file exists.
func DefaultFile() *File {
	return &File{
		Dictionaries: []DictionaryConfig{{Name: "en_GB", Engine: EngineFuzzy}},
		Database:     defaultDataPath("spellfix.db"),
		LogDir:       defaultDataPath("logs"),
	}
}

// DefaultPath returns ~/.config/spellfix/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "spellfix.yaml"
	}
	return filepath.Join(dir, "spellfix", "config.yaml")
}

func defaultDataPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "spellfix", name)
}

// Load reads a config file. A missing file yields DefaultFile.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultFile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config, filling unset fields from DefaultFile.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	def := DefaultFile()
	if len(f.Dictionaries) == 0 {
		f.Dictionaries = def.Dictionaries
	}
	for i := range f.Dictionaries {
		if f.Dictionaries[i].Name == "" {
			return nil, fmt.Errorf("dictionary %d has no name", i)
		}
		switch f.Dictionaries[i].Engine {
		case "":
			f.Dictionaries[i].Engine = EngineFuzzy
		case EngineFuzzy, EngineIndex:
		default:
			return nil, fmt.Errorf("dictionary %s: unknown engine %q", f.Dictionaries[i].Name, f.Dictionaries[i].Engine)
		}
	}
	if f.Database == "" {
		f.Database = def.Database
	}
	if f.LogDir == "" {
		f.LogDir = def.LogDir
	}
	return f, nil
}
