// Package excmd parses the ex commands typed on the ':' command line.
package excmd

import "strings"

const (
	// MaxTokens is the most tokens a command line is split into: the command
	// name and up to three arguments. Further tokens are dropped.
	MaxTokens = 4

	// MaxLength bounds the length of a command line.
	MaxLength = 256

	maxLine = 1 << 30
)

// Kind identifies a parsed command.
type Kind uint8

const (
	// KindNone is an empty command line.
	KindNone Kind = iota
	// KindUnknown is a command name no handler recognizes. It is ignored.
	KindUnknown
	// KindWrite is ":w [path]".
	KindWrite
	// KindEdit is ":find [path]" or ":e [path]".
	KindEdit
	// KindQuit is ":q".
	KindQuit
	// KindWriteQuit is ":wq [path]".
	KindWriteQuit
	// KindClose is ":close".
	KindClose
	// KindGoto is ":<N>".
	KindGoto
)

var kindNames = [...]string{
	KindNone:      "none",
	KindUnknown:   "unknown",
	KindWrite:     "write",
	KindEdit:      "edit",
	KindQuit:      "quit",
	KindWriteQuit: "writequit",
	KindClose:     "close",
	KindGoto:      "goto",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Command is a parsed command line.
type Command struct {
	Kind Kind
	// Name is the first token as typed.
	Name string
	// Args holds the remaining tokens.
	Args []string
	// Line is the 1-based target line of KindGoto.
	Line int
}

// Path returns the first argument, or "" when none was given.
func (c Command) Path() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Tokenize splits s on spaces. Runs of spaces separate tokens once, so no
// token is empty. At most MaxTokens tokens are returned.
func Tokenize(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, " ") {
		if tok == "" {
			continue
		}
		if len(out) == MaxTokens {
			break
		}
		out = append(out, tok)
	}
	return out
}

// Parse parses a command line. A leading ':' is optional.
func Parse(line string) Command {
	line = strings.TrimPrefix(line, ":")
	if len(line) > MaxLength {
		line = line[:MaxLength]
	}
	toks := Tokenize(line)
	if len(toks) == 0 {
		return Command{Kind: KindNone}
	}

	cmd := Command{Name: toks[0], Args: toks[1:]}
	switch name := toks[0]; {
	case name == "w":
		cmd.Kind = KindWrite
	case name == "find" || name == "e":
		cmd.Kind = KindEdit
	case name == "q":
		cmd.Kind = KindQuit
	case name == "wq":
		cmd.Kind = KindWriteQuit
	case name == "close":
		cmd.Kind = KindClose
	case name[0] >= '0' && name[0] <= '9':
		cmd.Kind = KindGoto
		cmd.Line = leadingNumber(name)
	default:
		cmd.Kind = KindUnknown
	}
	return cmd
}

// leadingNumber parses the digit run at the start of s.
func leadingNumber(s string) int {
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = min(n*10+int(s[i]-'0'), maxLine)
	}
	return n
}
