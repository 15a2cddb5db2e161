// Package command turns one line of user input into a typed command.
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one of Add, Close, Swap, Exit, History or Invalid.
type Command interface {
	fmt.Stringer
	command()
}

// Add appends Text to the active list.
type Add struct{ Text string }

// Close removes the item at the 1-based Index.
type Close struct{ Index uint64 }

// Swap exchanges the items at the 1-based positions A and B.
type Swap struct{ A, B uint64 }

// Exit ends the session.
type Exit struct{}

// History shows the items closed during this session.
type History struct{}

// Invalid is anything that did not parse. Input is the trimmed line.
type Invalid struct {
	Input  string
	Reason string
}

func (Add) command()     {}
func (Close) command()   {}
func (Swap) command()    {}
func (Exit) command()    {}
func (History) command() {}
func (Invalid) command() {}

func (c Add) String() string     { return "add " + c.Text }
func (c Close) String() string   { return fmt.Sprintf("close %d", c.Index) }
func (c Swap) String() string    { return fmt.Sprintf("swap %d %d", c.A, c.B) }
func (Exit) String() string      { return "exit" }
func (History) String() string   { return "history" }
func (c Invalid) String() string { return fmt.Sprintf("invalid %q (%s)", c.Input, c.Reason) }

// Keywords lists the recognised command words in prompt order.
var Keywords = []string{"add", "close", "exit", "swap", "history"}

// Parse maps a raw input line to a Command. It never fails: malformed
// input yields Invalid.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invalid{Reason: "empty input"}
	}
	input := strings.Join(fields, " ")
	word, args := fields[0], fields[1:]

	switch word {
	case "add":
		if len(args) == 0 {
			return Invalid{Input: input, Reason: "add: empty item"}
		}
		return Add{Text: strings.Join(args, " ")}

	case "close":
		if len(args) < 1 {
			return Invalid{Input: input, Reason: "close: missing index"}
		}
		n, err := parseIndex(args[0])
		if err != nil {
			return Invalid{Input: input, Reason: "close: " + err.Error()}
		}
		return Close{Index: n}

	case "swap":
		if len(args) < 2 {
			return Invalid{Input: input, Reason: "swap: need two indexes"}
		}
		a, err := parseIndex(args[0])
		if err != nil {
			return Invalid{Input: input, Reason: "swap: " + err.Error()}
		}
		b, err := parseIndex(args[1])
		if err != nil {
			return Invalid{Input: input, Reason: "swap: " + err.Error()}
		}
		return Swap{A: a, B: b}

	case "exit":
		return Exit{}

	case "history":
		return History{}
	}
	return Invalid{Input: input, Reason: "unknown command: " + word}
}

// parseIndex accepts a non-negative decimal integer with an optional
// leading '+'.
func parseIndex(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", s)
	}
	return n, nil
}
