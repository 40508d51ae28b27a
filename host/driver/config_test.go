package driver

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseProgramsEntryShapes(t *testing.T) {
	programs, err := ParsePrograms([]byte(`{
		"1": "gimp --new-instance",
		"2": ["xterm", "-e", "htop"],
		"3": {"command": "mpv", "args": ["--fullscreen", "intro.mkv"]},
		"4": "code"
	}`))
	if err != nil {
		t.Fatalf("ParsePrograms failed: %v", err)
	}

	expected := Programs{
		"1": {"gimp", "--new-instance"},
		"2": {"xterm", "-e", "htop"},
		"3": {"mpv", "--fullscreen", "intro.mkv"},
		"4": {"code"},
	}
	if !reflect.DeepEqual(programs, expected) {
		t.Errorf("Parsed %v, expected %v", programs, expected)
	}
}

func TestParseProgramsShellQuoting(t *testing.T) {
	programs, err := ParsePrograms([]byte(`{"1": "editor \"my notes.txt\""}`))
	if err != nil {
		t.Fatalf("ParsePrograms failed: %v", err)
	}
	if !reflect.DeepEqual(programs["1"], []string{"editor", "my notes.txt"}) {
		t.Errorf("Quoted argument not preserved: %v", programs["1"])
	}
}

func TestParseProgramsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty config", `{}`},
		{"channel out of range", `{"5": "xterm"}`},
		{"channel zero", `{"0": "xterm"}`},
		{"non-numeric channel", `{"a": "xterm"}`},
		{"empty command string", `{"1": ""}`},
		{"empty argv array", `{"1": []}`},
		{"object without command", `{"1": {"args": ["-v"]}}`},
		{"not JSON", `button one runs gimp`},
	}
	for _, c := range cases {
		if _, err := ParsePrograms([]byte(c.body)); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}

func TestLoadProgramsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "programs.json")
	if err := os.WriteFile(path, []byte(`{"2": "xeyes"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	programs, err := LoadPrograms(path)
	if err != nil {
		t.Fatalf("LoadPrograms failed: %v", err)
	}
	if !reflect.DeepEqual(programs["2"], []string{"xeyes"}) {
		t.Errorf("Unexpected programs: %v", programs)
	}

	if _, err := LoadPrograms(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
