package engine

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fireball-dodge/internal/games/fireball"
	"github.com/vovakirdan/fireball-dodge/internal/logging"
)

// Loop drives a machine: wait for the clock, poll input, update, draw.
type Loop struct {
	Clock   FrameClock
	Input   InputSource
	Surface Surface // Optional
	Machine *fireball.Machine
	Logger  *log.Logger // Optional

	// MaxFrames stops the loop after that many iterations. Zero runs until
	// the context is done.
	MaxFrames uint64
	// StopOnTerminal ends the loop as soon as a session is won or lost.
	StopOnTerminal bool
}

// Result summarises a finished run.
type Result struct {
	Frames      uint64 // Loop iterations, including start screen frames
	Transitions []fireball.Transition
	Final       fireball.Snapshot
}

// Run executes the loop until a stop condition holds. A cancelled context
// is reported as an error along with the result so far.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	logger := l.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	var res Result
	for l.MaxFrames == 0 || res.Frames < l.MaxFrames {
		if err := l.Clock.Wait(ctx); err != nil {
			res.Final = l.Machine.Snapshot()
			return res, err
		}
		res.Frames++

		in := l.Input.Poll()
		if tr, ok := l.Machine.Update(in); ok {
			res.Transitions = append(res.Transitions, tr)
			logger.Info("phase change",
				"from", tr.From,
				"phase", tr.To,
				"tier", tr.Difficulty,
				"frame", tr.Frame,
				"reason", tr.Reason,
				"tick", l.Clock.Frame(),
			)
		}

		if l.Surface != nil {
			l.Surface.Draw(l.Machine.View())
		}

		if l.StopOnTerminal && l.Machine.Phase().Terminal() {
			break
		}
	}

	res.Final = l.Machine.Snapshot()
	logger.Debug("loop finished", "frames", res.Frames, "phase", res.Final.Phase)
	return res, nil
}
