package internal

import (
	"fmt"
	"io"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// printTokenReport lists every non-terminal token in production order, the
// lexeme left-justified in a 10-character field followed by its category.
// The terminal marker is never printed.
func printTokenReport(p IPrinter, tokens []token) {
	p.Println("TOKENS:")
	for _, tk := range tokens {
		if tk.token == tkEOF {
			break
		}
		p.Println(fmt.Sprintf("%-10s %s", tk.lexeme, tk.category()))
	}
	p.Println()
}

func printSymbolReport(p IPrinter, table *symbolTable) {
	p.Println("SYMBOL TABLE:")
	p.Println(fmt.Sprintf("%-10s%s", "Name", "Type"))
	for _, name := range table.order {
		p.Println(fmt.Sprintf("%-10s%s", name, "int"))
	}
	p.Println()
}

func printTacReport(p IPrinter, code []string) {
	p.Println("INTERMEDIATE CODE (TAC):")
	for _, instruction := range code {
		p.Println(instruction)
	}
	p.Println()
}
