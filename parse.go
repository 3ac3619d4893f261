package clioption

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Parse scans args and replaces the result of any previous call. The first element is the program
// name and is skipped, so args is typically os.Args.
//
// Every recognized flag collects the free tokens between it and the next recognized flag (or the
// end of args), in their original order. Parsing never fails:
//   - tokens before the first recognized flag are dropped
//   - flags that match no registered option are dropped and do not split the surrounding tokens
//   - a flag given twice is reported twice
//
// Tokens are matched as "-X" (exactly two bytes, X not a dash) against short names and as
// "--name" against long names. Anything else, including "-", "--" and "-abc", is a free token.
// "--name=value" is looked up as the long name "name=value" and so is normally dropped. A dash
// followed by a multibyte character, such as "-é", is a free token.
func (p *Parser) Parse(args []string) {
	var (
		parsed  []ParsedOption
		pending []string
	)
	// Scan right to left so each flag picks up the tokens already seen to its right.
	for i := len(args) - 1; i > 0; i-- {
		tok := args[i]
		var (
			opt Option
			ok  bool
		)
		switch {
		case isShortFlag(tok):
			// A lone non-ASCII byte can never name an option.
			if c := tok[1]; c < utf8.RuneSelf {
				opt, ok = p.lookupShort(rune(c))
			}
		case isLongFlag(tok):
			opt, ok = p.lookupLong(tok[2:])
		default:
			pending = append(pending, tok)
			continue
		}
		if !ok {
			// Unknown flag: dropped without touching pending.
			continue
		}
		tokens := make([]string, len(pending))
		for j, s := range pending {
			tokens[len(pending)-1-j] = s
		}
		parsed = append(parsed, ParsedOption{Option: opt, Args: tokens})
		pending = pending[:0]
	}
	// Whatever is left in pending preceded the first flag and belongs to nothing.
	slices.Reverse(parsed)
	p.parsed = parsed
}

func isShortFlag(tok string) bool {
	return len(tok) == 2 && tok[0] == '-' && tok[1] != '-'
}

func isLongFlag(tok string) bool {
	return len(tok) > 2 && strings.HasPrefix(tok, "--")
}

// Found reports whether the latest [Parser.Parse] saw an option with the given short name.
func (p *Parser) Found(short rune) bool {
	_, ok := p.findShort(short)
	return ok
}

// FoundLong reports whether the latest [Parser.Parse] saw an option with the given long name.
func (p *Parser) FoundLong(long string) bool {
	_, ok := p.findLong(long)
	return ok
}

// Args returns the tokens collected by the first occurrence of the option with the given short
// name. The boolean is false if the option was not specified.
func (p *Parser) Args(short rune) ([]string, bool) {
	po, ok := p.findShort(short)
	if !ok {
		return nil, false
	}
	return slices.Clone(po.Args), true
}

// ArgsLong is like [Parser.Args] but matches on the long name.
func (p *Parser) ArgsLong(long string) ([]string, bool) {
	po, ok := p.findLong(long)
	if !ok {
		return nil, false
	}
	return slices.Clone(po.Args), true
}

// Parsed returns the options found by the latest [Parser.Parse], in the order they appeared.
func (p *Parser) Parsed() []ParsedOption {
	out := make([]ParsedOption, len(p.parsed))
	for i, po := range p.parsed {
		po.Args = slices.Clone(po.Args)
		out[i] = po
	}
	return out
}

func (p *Parser) findShort(short rune) (ParsedOption, bool) {
	for _, po := range p.parsed {
		if po.Short == short {
			return po, true
		}
	}
	return ParsedOption{}, false
}

func (p *Parser) findLong(long string) (ParsedOption, bool) {
	for _, po := range p.parsed {
		if po.Long == long {
			return po, true
		}
	}
	return ParsedOption{}, false
}

// lookupParsed returns the parsed entry for a registered option, matching both names.
func (p *Parser) lookupParsed(o Option) (ParsedOption, bool) {
	for _, po := range p.parsed {
		if po.Short == o.Short && po.Long == o.Long {
			return po, true
		}
	}
	return ParsedOption{}, false
}
