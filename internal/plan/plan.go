package plan

import (
	"sort"
	"strings"
)

// Override flags replace every other argument and are handed to dd alone.
const (
	FlagVersion = "--version"
	FlagHelp    = "--help"
)

// OutputKey is the dd operand naming the write target.
const OutputKey = "of"

// Options holds dd operands keyed by name. A repeated key keeps the last value.
type Options map[string]string

// Args renders each operand as a single "key=value" token, sorted by key.
func (o Options) Args() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys))
	for _, k := range keys {
		args = append(args, k+"="+o[k])
	}
	return args
}

// ActionPlan describes what to run and whether to confirm first.
type ActionPlan struct {
	// Gated is set when an output target must be confirmed before dd runs.
	Gated bool
	// Target is the value of the "of" operand when Gated.
	Target string
	// Args are the tokens passed to dd, one argument each.
	Args []string
}

// Passthrough joins Args with single spaces.
func (p ActionPlan) Passthrough() string {
	return strings.Join(p.Args, " ")
}

// Build maps raw command-line tokens to an ActionPlan.
//
// Tokens of the form key=value are operands. --version and --help pre-empt
// everything: the first one found becomes the whole plan and nothing is
// gated. Any other token is dropped.
func Build(raw []string) ActionPlan {
	opts := Options{}

	for _, tok := range raw {
		if tok == FlagVersion || tok == FlagHelp {
			return ActionPlan{Args: []string{tok}}
		}
		key, value, ok := strings.Cut(tok, "=")
		if !ok || key == "" {
			continue
		}
		opts[key] = value
	}

	p := ActionPlan{Args: opts.Args()}
	if target, ok := opts[OutputKey]; ok {
		p.Gated = true
		p.Target = target
	}
	return p
}
