package tokens

import (
	"fmt"
	"strings"
)

// Split tokenizes a command line the way a shell would: tokens separated by
// unquoted whitespace, with double quotes, single quotes and backslash
// escapes (outside single quotes) grouping. An unterminated quote is an
// error.
func Split(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inToken := false

	const (
		bare = iota
		single
		double
	)
	state := bare
	escaped := false

	for _, r := range line {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}

		switch state {
		case bare:
			switch {
			case r == '\\':
				escaped = true
				inToken = true
			case r == '\'':
				state = single
				inToken = true
			case r == '"':
				state = double
				inToken = true
			case r == ' ' || r == '\t' || r == '\n':
				if inToken {
					tokens = append(tokens, current.String())
					current.Reset()
					inToken = false
				}
			default:
				current.WriteRune(r)
				inToken = true
			}
		case single:
			if r == '\'' {
				state = bare
			} else {
				current.WriteRune(r)
			}
		case double:
			switch r {
			case '\\':
				escaped = true
			case '"':
				state = bare
			default:
				current.WriteRune(r)
			}
		}
	}

	if escaped || state != bare {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if inToken {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}

// Builder assembles an argument vector fluently. String renders it with
// quoting that Split reverses, so Split(b.String()) reproduces b.Tokens().
type Builder struct {
	tokens []string
}

// NewBuilder creates an empty argument-vector builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Path appends command-path and action tokens.
func (b *Builder) Path(parts ...string) *Builder {
	b.tokens = append(b.tokens, parts...)
	return b
}

// Option appends `--name value`.
func (b *Builder) Option(name, value string) *Builder {
	b.tokens = append(b.tokens, "--"+name, value)
	return b
}

// Short appends `-x value`.
func (b *Builder) Short(short rune, value string) *Builder {
	b.tokens = append(b.tokens, "-"+string(short), value)
	return b
}

// Switch appends `--name`.
func (b *Builder) Switch(name string) *Builder {
	b.tokens = append(b.tokens, "--"+name)
	return b
}

// Positional appends a bare value token.
func (b *Builder) Positional(value string) *Builder {
	b.tokens = append(b.tokens, value)
	return b
}

// Tokens returns the logical token list.
func (b *Builder) Tokens() []string {
	return b.tokens
}

// String renders the vector as a single command line, quoting tokens that
// need it.
func (b *Builder) String() string {
	quoted := make([]string, len(b.tokens))
	for i, tok := range b.tokens {
		quoted[i] = quote(tok)
	}
	return strings.Join(quoted, " ")
}

func quote(tok string) string {
	if tok != "" && !strings.ContainsAny(tok, " \t\n'\"\\") {
		return tok
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range tok {
		if r == '"' || r == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('"')
	return sb.String()
}
