package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/fireball-dodge/internal/engine"
)

// printResult writes the outcome of a headless run.
func printResult(w io.Writer, script engine.Script, res engine.Result) {
	snap := res.Final

	fmt.Fprintf(w, "phase:       %s\n", snap.Phase)
	if snap.Difficulty != "" {
		fmt.Fprintf(w, "tier:        %s\n", snap.Difficulty)
		fmt.Fprintf(w, "frame:       %d/%d\n", snap.Frame, snap.Threshold)
		fmt.Fprintf(w, "player:      (%d, %d)\n", snap.PlayerX, snap.PlayerY)

		active := 0
		for _, h := range snap.Hazards {
			if h.Active {
				active++
			}
		}
		fmt.Fprintf(w, "fireballs:   %d/%d active\n", active, len(snap.Hazards))
	}
	fmt.Fprintf(w, "seed:        %d\n", script.Seed)
	fmt.Fprintf(w, "loop frames: %d\n", res.Frames)

	for _, tr := range res.Transitions {
		fmt.Fprintf(w, "  %-8s -> %-8s at frame %d (%s)\n", tr.From, tr.To, tr.Frame, tr.Reason)
	}
}
