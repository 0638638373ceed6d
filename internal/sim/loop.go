package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/robosim/internal/game/command"
)

// Run pulls commands from src until it is exhausted or a quit command
// is read. Each line is independently parsed and dispatched; a bad
// line is reported to the error writer and never aborts the run.
//
// The world retains its state across calls, so several sources can be
// run back to back against the same World.
//
// Postcondition: Returns true if the loop ended on a quit command,
// false on source exhaustion.
func (w *World) Run(src *Source) bool {
	for {
		line, ok := src.Next()
		if !ok {
			return false
		}

		cmd, err := w.parser.Parse(line)
		if err != nil {
			fmt.Fprintln(w.errOut, err)
			w.logger.Debug("line rejected", zap.String("line", line), zap.Error(err))
			continue
		}

		switch cmd.Verb {
		case command.VerbQuit:
			// Remaining input, if any, is abandoned.
			return true
		case command.VerbHelp:
			w.printHelp()
		case command.VerbCreate:
			if err := w.CreateRobot(cmd.Args[0]); err != nil {
				fmt.Fprintln(w.errOut, err)
			}
		default:
			w.Dispatch(cmd)
		}
	}
}

func (w *World) printHelp() {
	fmt.Fprintln(w.out, "commands:")
	for _, def := range w.vocab.Definitions() {
		fmt.Fprintf(w.out, "  %-36s %s\n", def.Usage, def.Help)
	}
}
