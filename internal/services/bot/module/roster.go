package module

import (
	"bytes"
	"errors"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"wordlebot/internal/core/announce"
	"wordlebot/internal/core/command"
	"wordlebot/internal/core/season"
	"wordlebot/internal/core/wordle"

	perr "wordlebot/internal/platform/errors"
)

// Roster is the optional YAML file next to the env config
type Roster struct {
	RequiredUsers   []string            `yaml:"required_users"`
	Admins          []string            `yaml:"admins"`
	Aliases         season.Aliases      `yaml:"aliases"`
	Messages        announce.Messages   `yaml:"messages"`
	Commands        command.Names       `yaml:"commands"`
	ResultResponses map[string][]string `yaml:"result_responses"`
}

// LoadRoster reads path; an empty path gives an empty roster
func LoadRoster(path string) (Roster, error) {
	if path == "" {
		return Roster{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read roster %s", path)
	}
	return ParseRoster(b)
}

// ParseRoster decodes a roster document, rejecting unknown keys, bad
// result response keys and aliases claimed twice
func ParseRoster(b []byte) (Roster, error) {
	var r Roster
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return Roster{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "decode roster")
	}
	if len(r.ResultResponses) > 0 {
		keyed := make(map[string][]string, len(r.ResultResponses))
		for k, texts := range r.ResultResponses {
			a, ok := wordle.ParseAttempts(k)
			if !ok {
				return Roster{}, perr.WithField(perr.InvalidArgf("result_responses key %q is not 1-6 or X", k), "result_responses")
			}
			keyed[a.String()] = append(keyed[a.String()], texts...)
		}
		r.ResultResponses = keyed
	}
	if _, err := season.New(r.Aliases); err != nil {
		return Roster{}, err
	}
	return r, nil
}

// union appends the members of b missing from a, keeping order
func union(a, b []string) []string {
	out := slices.Clone(a)
	for _, v := range b {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
