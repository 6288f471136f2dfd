package internal

import (
	"os"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
}

// SetLogLevel adjusts the verbosity of phase logging.
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// Reports selects which result artifacts RunSourceWithPrinter emits.
type Reports struct {
	Tokens  bool
	Symbols bool
	Tac     bool
}

// AllReports enables every report.
func AllReports() Reports {
	return Reports{Tokens: true, Symbols: true, Tac: true}
}

// RunSourceWithPrinter compiles source on a fresh pipeline: lexer, parser,
// semantic analyzer, TAC generator, each phase fully consuming the previous
// phase's output. Reports are printed through p as soon as their phase
// completes, so a later failure leaves earlier reports already emitted.
// Returns false if any phase failed, after writing the diagnostic to the
// error channel.
func RunSourceWithPrinter(source string, p IPrinter, reports Reports) (ok bool) {
	state := newCompileState(source)

	defer func() {
		if r := recover(); r != nil {
			if state.err == nil {
				panic(r)
			}
			p.Fprintln(os.Stderr, color.Red(state.err.Error()))
			ok = false
		}
	}()

	lexer := newLexer(state)
	lexer.scan()
	log.WithField("tokens", len(state.tokens)).Debug("lexical analysis complete")
	if reports.Tokens {
		printTokenReport(p, state.tokens)
	}

	parser := &parser{state: state}
	parser.parse()
	log.WithField("statements", len(state.stmts)).Debug("syntax analysis complete")

	analyzer := &analyzer{state: state}
	analyzer.analyze()
	log.WithField("symbols", len(state.table.order)).Debug("semantic analysis complete")
	if reports.Symbols {
		printSymbolReport(p, state.table)
	}

	gen := &tacGen{state: state}
	gen.generate()
	log.WithField("instructions", len(state.code)).Debug("intermediate code generation complete")
	if reports.Tac {
		printTacReport(p, state.code)
	}

	return true
}
