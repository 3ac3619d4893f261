package clioption

import (
	"io"
	"os"
	"slices"
)

// ArgType describes whether an option expects an argument. It is stored as metadata only; [Parser.Parse]
// never enforces it.
type ArgType int

const (
	// ArgNone marks an option that takes no argument.
	ArgNone ArgType = iota
	// ArgOptional marks an option whose argument may be omitted.
	ArgOptional
	// ArgRequire marks an option that expects an argument.
	ArgRequire
)

// String returns the lower-case name of the argument type.
func (a ArgType) String() string {
	switch a {
	case ArgNone:
		return "none"
	case ArgOptional:
		return "optional"
	case ArgRequire:
		return "require"
	}
	return "unknown"
}

// Option is a registered option definition.
type Option struct {
	// Arg is the declared arity of the option.
	Arg ArgType `validate:"oneof=0 1 2"`

	// Short is the single character matched by "-X" tokens. Only ASCII short names can be matched.
	Short rune `validate:"required"`

	// Long is the name matched by "--name" tokens.
	Long string `validate:"required,printascii,startsnotwith=-"`

	// Description is shown in usage output.
	Description string
}

// ParsedOption is an occurrence of a registered option on the command line, together with the free
// tokens that followed it up to the next recognized flag.
type ParsedOption struct {
	Option

	// Args holds the tokens in their original order. It is empty, never nil, when the flag was
	// followed directly by another flag or by nothing.
	Args []string
}

// Parser holds the option registry and the result of the latest [Parser.Parse] call.
//
// A Parser is not safe for concurrent use: Parse replaces internal state without locking.
type Parser struct {
	options []Option
	parsed  []ParsedOption
	output  io.Writer
}

// New returns an empty Parser that prints to [os.Stdout].
func New() *Parser {
	return &Parser{}
}

// Add registers an option and returns p so calls can be chained:
//
//	p := clioption.New().
//	    Add(clioption.ArgOptional, 'h', "help", "print help or manual.").
//	    Add(clioption.ArgOptional, 'i', "input", "input file name.")
//
// Names are not checked for uniqueness. When two options share a name, lookups during parsing
// return the first one registered. Use [Parser.Validate] to detect such mistakes.
func (p *Parser) Add(arg ArgType, short rune, long, description string) *Parser {
	p.options = append(p.options, Option{
		Arg:         arg,
		Short:       short,
		Long:        long,
		Description: description,
	})
	return p
}

// Options returns the registered options in registration order.
func (p *Parser) Options() []Option {
	return slices.Clone(p.options)
}

// SetOutput sets the destination for [Parser.Usage] and [Parser.PrintValues]. If w is nil,
// [os.Stdout] is used.
func (p *Parser) SetOutput(w io.Writer) {
	p.output = w
}

func (p *Parser) out() io.Writer {
	if p.output == nil {
		return os.Stdout
	}
	return p.output
}

func (p *Parser) lookupShort(short rune) (Option, bool) {
	for _, o := range p.options {
		if o.Short == short {
			return o, true
		}
	}
	return Option{}, false
}

func (p *Parser) lookupLong(long string) (Option, bool) {
	for _, o := range p.options {
		if o.Long == long {
			return o, true
		}
	}
	return Option{}, false
}
