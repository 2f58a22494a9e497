package config

import (
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	got := Defaults()
	want := Options{
		AutoPopUpItem:        false,
		AutoReplace:          true,
		CatchInputCompletion: true,
		EatInputChar:         true,
		SuggestItem:          "${white}%S${default}",
		HideSingleDict:       true,
		CompleteNear:         0,
		ReplaceMode:          false,
		HighlightColor:       "red",
	}
	if got != want {
		t.Fatalf("Defaults() = %+v, want %+v", got, want)
	}
}

func TestStoreSetValidation(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		stored  string
		wantErr bool
		desc    string
	}{
		{KeyAutoReplace, "off", "off", false, "bool off"},
		{KeyAutoReplace, "TRUE", "on", false, "bool alias"},
		{KeyAutoReplace, "maybe", "on", true, "bad bool keeps old value"},
		{KeyCompleteNear, " 3 ", "3", false, "int trimmed"},
		{KeyCompleteNear, "-1", "0", true, "negative int"},
		{KeySuggestItem, "[%S] %D", "[%S] %D", false, "string verbatim"},
		{"nope", "on", "", true, "unknown key"},
	}

	for _, tt := range tests {
		s := NewStore(nil)
		err := s.Set(tt.key, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Set(%q, %q) err = %v, wantErr %v (%s)", tt.key, tt.value, err, tt.wantErr, tt.desc)
			continue
		}
		got, _ := s.Get(tt.key)
		if got != tt.stored {
			t.Errorf("Get(%q) = %q, expected %q (%s)", tt.key, got, tt.stored, tt.desc)
		}
	}
}

type memPersister map[string]string

func (m memPersister) SaveOption(key, value string) error {
	m[key] = value
	return nil
}

func TestStoreOnChangeAndPersist(t *testing.T) {
	p := memPersister{}
	s := NewStore(p)

	var calls []string
	var last Options
	s.OnChange(func(key, value string, opts Options) {
		calls = append(calls, key+"="+value)
		last = opts
	})

	if err := s.Set(KeyCatchInputCompletion, "off"); err != nil {
		t.Fatal(err)
	}
	// Same value again: persisted, but no change notification.
	if err := s.Set(KeyCatchInputCompletion, "off"); err != nil {
		t.Fatal(err)
	}

	if strings.Join(calls, ",") != "catch_input_completion=off" {
		t.Fatalf("listener calls = %v", calls)
	}
	if last.CatchInputCompletion {
		t.Fatal("snapshot passed to listener should have completion catching off")
	}
	if p[KeyCatchInputCompletion] != "off" {
		t.Fatalf("persisted = %q", p[KeyCatchInputCompletion])
	}
}

func TestStoreLoad(t *testing.T) {
	s := NewStore(nil)
	err := s.Load(map[string]string{
		KeyReplaceMode:  "on",
		KeyCompleteNear: "2",
		"bogus":         "x",
	})
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("Load err = %v, want mention of bogus", err)
	}
	opts := s.Options()
	if !opts.ReplaceMode || opts.CompleteNear != 2 {
		t.Fatalf("valid values not applied: %+v", opts)
	}
}

func TestKeysSorted(t *testing.T) {
	keys := NewStore(nil).Keys()
	if len(keys) != 9 {
		t.Fatalf("got %d keys", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
	if _, ok := NewStore(nil).Describe(KeyEatInputChar); !ok {
		t.Fatal("eat_input_char should have a description")
	}
}
