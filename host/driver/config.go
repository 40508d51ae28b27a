package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/google/shlex"

	"panelfw/core"
)

// Programs maps a panel channel ("1".."4") to the argv launched when
// that channel's button is pressed.
type Programs map[string][]string

// Config values accept three JSON shapes per channel:
//
//	"gimp --new-instance"                    shell-style string
//	["gimp", "--new-instance"]               argv array
//	{"command": "gimp", "args": ["-n"]}      object
type programObject struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// LoadPrograms reads and validates the channel->program config file.
func LoadPrograms(path string) (Programs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParsePrograms(data)
}

// ParsePrograms parses the JSON config body.
func ParsePrograms(data []byte) (Programs, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("config maps no channels to programs")
	}

	programs := make(Programs, len(raw))
	for key, entry := range raw {
		ch, err := strconv.Atoi(key)
		if err != nil || ch < 1 || ch > core.NumChannels {
			return nil, fmt.Errorf("config key %q is not a channel number 1..%d", key, core.NumChannels)
		}

		argv, err := parseEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("config entry for channel %s: %w", key, err)
		}
		programs[key] = argv
	}
	return programs, nil
}

// parseEntry resolves one config value into an argv.
func parseEntry(entry json.RawMessage) ([]string, error) {
	var str string
	if err := json.Unmarshal(entry, &str); err == nil {
		argv, err := shlex.Split(str)
		if err != nil {
			return nil, fmt.Errorf("failed to split command string: %w", err)
		}
		if len(argv) == 0 {
			return nil, fmt.Errorf("command string is empty")
		}
		return argv, nil
	}

	var list []string
	if err := json.Unmarshal(entry, &list); err == nil {
		if len(list) == 0 {
			return nil, fmt.Errorf("argv array is empty")
		}
		return list, nil
	}

	var obj programObject
	if err := json.Unmarshal(entry, &obj); err != nil {
		return nil, fmt.Errorf("unrecognized entry shape: %w", err)
	}
	if obj.Command == "" {
		return nil, fmt.Errorf("object entry has no command")
	}
	return append([]string{obj.Command}, obj.Args...), nil
}
