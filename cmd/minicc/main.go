package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"minicc/internal"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	var source []byte
	argsWithoutProg := os.Args[1:]
	switch len(argsWithoutProg) {
	case 0:
		source, err = io.ReadAll(os.Stdin)
	case 1:
		source, err = os.ReadFile(argsWithoutProg[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: minicc [/path/to/source.mini]")
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	if !internal.RunSourceWithPrinter(string(source), stdPrinter{}, cfg.reports) {
		os.Exit(1)
	}
}
