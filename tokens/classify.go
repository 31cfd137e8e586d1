// Package tokens splits the remainder of an argument vector into option
// occurrences and positional values for a resolved action, and provides a
// quoting-aware tokenizer with a matching argv builder.
package tokens

import (
	"strings"

	"github.com/rudder-tools/rudder/cmdtree"
	"github.com/rudder-tools/rudder/textdist"
	"github.com/rudder-tools/rudder/usage"
)

// Supplied is one command-line occurrence of a parameter.
type Supplied struct {
	Raw      string
	HasValue bool // false for a bare switch
}

// Classified maps parameter names to their command-line occurrences.
type Classified struct {
	byName map[string]Supplied
}

// Lookup returns the occurrence for the given parameter long name.
func (c *Classified) Lookup(name string) (Supplied, bool) {
	s, ok := c.byName[strings.ToLower(name)]
	return s, ok
}

func (c *Classified) put(spec *cmdtree.ParameterSpec, s Supplied) {
	key := strings.ToLower(spec.Name)
	if prev, ok := c.byName[key]; ok && spec.Kind == cmdtree.KindContainer && prev.HasValue && s.HasValue {
		// Repeated container occurrences accumulate.
		s.Raw = prev.Raw + "," + s.Raw
	}
	c.byName[key] = s
}

// Classify splits rest into option occurrences and positionals for action.
// Option tokens take the forms `--name`, `--name=value`, `--name value`,
// `-x` and `-x value`; whether a value token follows depends on the
// parameter kind. `--` ends option parsing. Positionals are assigned to
// argument specs by ascending position; anything unmatched is an unknown
// option error with a did-you-mean suggestion.
func Classify(rest []string, action *cmdtree.ActionNode) (*Classified, error) {
	c := &Classified{byName: make(map[string]Supplied)}
	var positionals []string
	optionsDone := false

	for i := 0; i < len(rest); i++ {
		tok := rest[i]

		switch {
		case optionsDone || tok == "-" || !strings.HasPrefix(tok, "-"):
			positionals = append(positionals, tok)

		case tok == "--":
			optionsDone = true

		case strings.HasPrefix(tok, "--"):
			name, value, hasValue := strings.Cut(tok[2:], "=")
			spec, ok := action.Lookup(name)
			if !ok {
				return nil, unknownOption("--"+name, action)
			}
			if hasValue {
				c.put(spec, Supplied{Raw: value, HasValue: true})
				continue
			}
			if !spec.ValueExpected() {
				c.put(spec, Supplied{})
				continue
			}
			if i+1 >= len(rest) {
				return nil, usage.MissingValue(spec.Name)
			}
			i++
			c.put(spec, Supplied{Raw: rest[i], HasValue: true})

		default: // short form
			body := tok[1:]
			short := []rune(body)
			if len(short) != 1 {
				return nil, unknownOption(tok, action)
			}
			spec, ok := action.LookupShort(short[0])
			if !ok {
				return nil, unknownOption(tok, action)
			}
			if !spec.ValueExpected() {
				c.put(spec, Supplied{})
				continue
			}
			if i+1 >= len(rest) {
				return nil, usage.MissingValue(spec.Name)
			}
			i++
			c.put(spec, Supplied{Raw: rest[i], HasValue: true})
		}
	}

	args := action.Arguments()
	for i, value := range positionals {
		if i >= len(args) {
			return nil, unknownOption(value, action)
		}
		c.put(args[i], Supplied{Raw: value, HasValue: true})
	}

	return c, nil
}

func unknownOption(tok string, action *cmdtree.ActionNode) error {
	name := strings.TrimLeft(tok, "-")
	suggestion, _ := textdist.FindMostSimilar(name, action.OptionNames())
	if suggestion != "" {
		suggestion = "--" + suggestion
	}
	return usage.UnknownOption(tok, suggestion)
}
