package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/core"
	"github.com/vovakirdan/fireball-dodge/internal/games/fireball"
)

// ErrInvalidScript is wrapped by every script validation error.
var ErrInvalidScript = errors.New("invalid script")

// DefaultScriptFrames bounds a script that does not set frames.
const DefaultScriptFrames = 6000

// Script is a recorded input sequence for headless runs.
//
//	seed: 42
//	difficulty: easy
//	frames: 3000
//	inputs:
//	  - {from: 1, to: 120, hold: [right, down]}
//
// Frame numbers count loop iterations from 0. When difficulty is set its
// select button is held on frame 0, so gameplay frame f is loop frame f+1.
type Script struct {
	Seed       int64        `yaml:"seed"`
	Difficulty string       `yaml:"difficulty,omitempty"`
	Frames     int          `yaml:"frames,omitempty"`
	Inputs     []ScriptStep `yaml:"inputs"`
}

// ScriptStep holds buttons over the inclusive frame range [From, To].
type ScriptStep struct {
	From int      `yaml:"from"`
	To   int      `yaml:"to"`
	Hold []string `yaml:"hold"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("engine: failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("engine: script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Script{}, err
	}
	if s.Frames == 0 {
		s.Frames = DefaultScriptFrames
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate checks frame ranges and button names.
func (s Script) Validate() error {
	var errs []error
	if s.Frames < 0 {
		errs = append(errs, fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalidScript, s.Frames))
	}
	if s.Difficulty != "" {
		if _, err := config.ParseDifficulty(s.Difficulty); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidScript, err))
		}
	}
	for i, step := range s.Inputs {
		if step.From < 0 || step.To < step.From {
			errs = append(errs, fmt.Errorf("%w: inputs[%d]: bad range [%d, %d]", ErrInvalidScript, i, step.From, step.To))
		}
		for _, name := range step.Hold {
			a, ok := core.ParseAction(name)
			if !ok || a == core.ActionNone || a == core.ActionQuit {
				errs = append(errs, fmt.Errorf("%w: inputs[%d]: unknown button %q", ErrInvalidScript, i, name))
			}
		}
	}
	return errors.Join(errs...)
}

type compiledStep struct {
	from, to int
	held     core.InputFrame
}

// ScriptInput replays a script, one frame per Poll.
type ScriptInput struct {
	steps []compiledStep
	frame int
}

// NewScriptInput compiles a validated script into an input source.
func NewScriptInput(s Script) *ScriptInput {
	in := &ScriptInput{}

	if s.Difficulty != "" {
		if d, err := config.ParseDifficulty(s.Difficulty); err == nil {
			in.steps = append(in.steps, compiledStep{held: core.NewInputFrame(fireball.SelectAction(d))})
		}
	}

	for _, step := range s.Inputs {
		cs := compiledStep{from: step.From, to: step.To}
		for _, name := range step.Hold {
			if a, ok := core.ParseAction(name); ok {
				cs.held.Set(a)
			}
		}
		in.steps = append(in.steps, cs)
	}
	return in
}

// Poll returns the buttons held on the current frame and moves to the next.
func (in *ScriptInput) Poll() core.InputFrame {
	held := core.NewInputFrame()
	for _, s := range in.steps {
		if in.frame >= s.from && in.frame <= s.to {
			held = held.Merge(s.held)
		}
	}
	in.frame++
	return held
}
