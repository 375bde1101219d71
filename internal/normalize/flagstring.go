package normalize

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/pflag"
)

// ParseFlagString splits a raw flag string like a shell would and parses it.
func ParseFlagString(ppa string) (ParameterSet, error) {
	if strings.TrimSpace(ppa) == "" {
		return ParameterSet{}, nil
	}

	parser := shellwords.NewParser()
	tokens, err := parser.Parse(ppa)
	if err != nil {
		return nil, &ConfigError{Value: ppa, Err: fmt.Errorf("%w: %v", ErrFlagString, err)}
	}
	// The parser stops silently at unquoted shell operators (; & | < >)
	if parser.Position >= 0 {
		return nil, &ConfigError{
			Value: ppa,
			Err:   fmt.Errorf("%w: unquoted shell operator at position %d", ErrFlagString, parser.Position),
		}
	}
	return ParseFlagArgs(tokens)
}

// ParseFlagArgs parses already-split flag tokens.
//
// Short aliases are rewritten to long flags before the tokens reach pflag.
// Only flags present in the tokens end up in the returned set.
func ParseFlagArgs(tokens []string) (ParameterSet, error) {
	fs := newFlagSet()
	if err := fs.Parse(expandFlagTokens(tokens)); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("%w: %v", ErrFlagParse, err)}
	}
	if fs.NArg() > 0 {
		return nil, &ConfigError{
			Value: strings.Join(fs.Args(), " "),
			Err:   fmt.Errorf("%w: unexpected argument(s)", ErrFlagParse),
		}
	}

	set := make(ParameterSet)
	var visitErr error
	fs.Visit(func(f *pflag.Flag) {
		if visitErr != nil {
			return
		}
		p, ok := LookupKey("--" + f.Name)
		if !ok {
			return
		}
		v, err := parseString(p, f.Value.String())
		if err != nil {
			visitErr = &ConfigError{Key: LongFlag(p.Name), Value: f.Value.String(), Err: err}
			return
		}
		set[p.Name] = v
	})
	if visitErr != nil {
		return nil, visitErr
	}
	return set, nil
}

// newFlagSet builds a pflag set with one long flag per table parameter.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("ppa", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	for _, p := range Params {
		name := strings.TrimPrefix(LongFlag(p.Name), "--")
		if p.Kind == Bool {
			fs.Bool(name, false, p.Usage)
			continue
		}
		fs.String(name, p.Default, p.Usage)
	}
	return fs
}

// expandFlagTokens rewrites short aliases to long flags and glues flag values
// onto their flag, so values starting with "-" (e.g. "-t -16") are kept intact.
func expandFlagTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !strings.HasPrefix(tok, "-") || tok == "-" || tok == "--" {
			out = append(out, tok)
			continue
		}

		name, value, hasValue := strings.Cut(tok, "=")
		p, known := paramsByFlag[name]
		if !known {
			// Unknown single-dash tokens are reported as unknown long flags
			if !strings.HasPrefix(name, "--") {
				tok = "-" + tok
			}
			out = append(out, tok)
			continue
		}

		long := LongFlag(p.Name)
		switch {
		case hasValue:
			out = append(out, long+"="+value)
		case p.Kind != Bool && i+1 < len(tokens):
			i++
			out = append(out, long+"="+tokens[i])
		default:
			out = append(out, long)
		}
	}
	return out
}
