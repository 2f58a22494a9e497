package config

import (
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`
options:
  auto_replace: "off"
  complete_near: 3
dictionaries:
  - name: en_GB
  - name: de_DE
    engine: index
database: /tmp/words.db
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.Options[KeyAutoReplace] != "off" || f.Options[KeyCompleteNear] != "3" {
		t.Fatalf("options = %v", f.Options)
	}
	if len(f.Dictionaries) != 2 {
		t.Fatalf("dictionaries = %v", f.Dictionaries)
	}
	if f.Dictionaries[0].Engine != EngineFuzzy || f.Dictionaries[1].Engine != EngineIndex {
		t.Fatalf("engines = %q, %q", f.Dictionaries[0].Engine, f.Dictionaries[1].Engine)
	}
	if f.Database != "/tmp/words.db" {
		t.Fatalf("database = %q", f.Database)
	}
	if f.LogDir == "" {
		t.Fatal("log dir should default")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		data string
		desc string
	}{
		{"dictionaries:\n  - engine: fuzzy\n", "missing name"},
		{"dictionaries:\n  - name: x\n    engine: magic\n", "unknown engine"},
		{"options: [", "bad yaml"},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.data)); err == nil {
			t.Errorf("Parse(%q) expected error (%s)", tt.data, tt.desc)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Dictionaries) != 1 || f.Dictionaries[0].Name != "en_GB" {
		t.Fatalf("default dictionaries = %v", f.Dictionaries)
	}
}
