package clioption

import (
	"fmt"
	"strings"
)

// prefixWidth is the column the " ... " separator is aligned to. Longer prefixes push it right.
const prefixWidth = 30

// Usage prints the header, one line per registered option and the footer to the parser's output.
// Empty header or footer lines are omitted.
func (p *Parser) Usage(header, footer string) {
	fmt.Fprint(p.out(), p.UsageString(header, footer))
}

// UsageString returns the text printed by [Parser.Usage].
func (p *Parser) UsageString(header, footer string) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(header + "\n")
	}
	for _, o := range p.options {
		writePrefix(&b, o)
		b.WriteString(o.Description)
		b.WriteString("\n")
	}
	if footer != "" {
		b.WriteString(footer + "\n")
	}
	return b.String()
}

// PrintValues prints, for every registered option, whether the latest [Parser.Parse] saw it and the
// tokens it collected.
func (p *Parser) PrintValues() {
	fmt.Fprint(p.out(), p.ValuesString())
}

// ValuesString returns the text printed by [Parser.PrintValues].
func (p *Parser) ValuesString() string {
	var b strings.Builder
	for _, o := range p.options {
		writePrefix(&b, o)
		po, ok := p.lookupParsed(o)
		if !ok {
			b.WriteString("specified : [x] \n")
			continue
		}
		b.WriteString("specified : [o] ")
		if len(po.Args) > 0 {
			b.WriteString("arguments :")
			for _, a := range po.Args {
				b.WriteString(" " + a)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// writePrefix writes "   -s, --long" left-justified to prefixWidth bytes, followed by " ... ".
func writePrefix(b *strings.Builder, o Option) {
	prefix := fmt.Sprintf("   -%c, --%s", o.Short, o.Long)
	b.WriteString(prefix)
	b.WriteString(strings.Repeat(" ", max(0, prefixWidth-len(prefix))))
	b.WriteString(" ... ")
}
