package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/robosim/internal/game/command"
	"github.com/cory-johannsen/robosim/internal/game/entity"
)

// Dispatch routes a parsed command to its audience. A command with an
// explicit target is delivered only to that entity; otherwise it is
// broadcast to every command-responding entity in registration order.
// One listener's rejection never prevents delivery to the rest.
func (w *World) Dispatch(cmd command.Command) {
	if cmd.Target != "" {
		e, ok := w.entities.Lookup(cmd.Target)
		if !ok {
			// The parser only binds registered names, and entities are
			// never unregistered.
			w.logger.Error("targeted entity vanished", zap.String("target", cmd.Target))
			return
		}
		t, ok := e.(entity.Target)
		if !ok {
			w.logger.Error("targeted entity does not respond to commands",
				zap.String("target", cmd.Target))
			return
		}
		w.deliver(t, cmd)
		return
	}

	for _, t := range w.entities.Targets() {
		w.deliver(t, cmd)
	}
}

func (w *World) deliver(t entity.Target, cmd command.Command) {
	if msg := t.HandleCommand(cmd); msg != "" {
		fmt.Fprintf(w.out, "%s: %s\n", t.Name(), msg)
	}
}
