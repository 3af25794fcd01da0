package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// Command is one parsed command line
type Command struct {
	Name    string
	Args    []string               // positional arguments
	Options map[string]interface{} // key=value arguments, values parsed with ParseValue
}

// Parse splits a command line shell-style, so quoted values may contain
// spaces: findby currencies description "US Dollar"
func Parse(line string) (*Command, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("tokenize error: %w", err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	cmd := &Command{
		Name:    strings.ToLower(tokens[0]),
		Options: make(map[string]interface{}),
	}
	for _, tok := range tokens[1:] {
		if key, val, ok := strings.Cut(tok, "="); ok && key != "" {
			cmd.Options[key] = ParseValue(val)
			continue
		}
		cmd.Args = append(cmd.Args, tok)
	}
	return cmd, nil
}

// ParseValue turns a token into an int, a bool, nil ("nil" or "null") or
// leaves it as a string. Only canonical integers convert, so codes such
// as "007" or "+1" stay strings.
func ParseValue(tok string) interface{} {
	if n, err := strconv.Atoi(tok); err == nil && strconv.Itoa(n) == tok {
		return n
	}
	switch tok {
	case "true":
		return true
	case "false":
		return false
	case "nil", "null":
		return nil
	}
	return tok
}

// arg returns positional argument i or an error naming what is missing
func (c *Command) arg(i int, what string) (string, error) {
	if i >= len(c.Args) {
		return "", fmt.Errorf("%s: missing %s", c.Name, what)
	}
	return c.Args[i], nil
}
