// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/message-polisher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintVariants outputs each composed variant in its own box.
func (p *Printer) PrintVariants(variants []types.MessageVariant) {
	for i, v := range variants {
		var sb strings.Builder
		if v.Subject != nil {
			sb.WriteString(fmt.Sprintf("Subject: %s\n\n", *v.Subject))
		}
		sb.WriteString(v.Message)
		p.printBox(fmt.Sprintf("Variant %d of %d", i+1, len(variants)), sb.String())
	}
}

// PrintTransform outputs the before/after of a buzzword transform.
func (p *Printer) PrintTransform(original, transformed string) {
	p.printBox("Original", original)
	p.printBox("Transformed", transformed)
}

// PrintReplies outputs reply suggestions as a numbered list.
func (p *Printer) PrintReplies(replies []string) {
	var sb strings.Builder
	for i, r := range replies {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, r))
	}
	p.printBox(fmt.Sprintf("Replies (%d)", len(replies)), strings.TrimRight(sb.String(), "\n"))
}

// PrintPhraseMap outputs a context -> phrases mapping.
func (p *Printer) PrintPhraseMap(phrases map[string][]string) {
	for context, list := range phrases {
		p.printBox(context, strings.Join(list, "\n"))
	}
}
