package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Exit is the token that ends the interactive loop.
const Exit = "exit"

// InvalidInputErr signals user input that is neither a number nor the exit token.
var InvalidInputErr = errors.New("invalid input")

// Command is a parsed line of user input.
type Command struct {
	Content string
	K       int
	Exit    bool
}

// ParseCommand parses the user input into a command.
// The exit token is matched case-insensitively, anything else must be an integer.
func ParseCommand(content string) (Command, error) {
	s := strings.TrimSpace(content)
	cmd := Command{Content: s}
	if strings.EqualFold(s, Exit) {
		cmd.Exit = true
		return cmd, nil
	}
	k, err := strconv.Atoi(s)
	if err != nil {
		return cmd, fmt.Errorf("could not parse '%s' as a number of clusters: %w", s, InvalidInputErr)
	}
	cmd.K = k
	return cmd, nil
}
