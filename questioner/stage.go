package questioner

import (
	"errors"
	"fmt"
)

// ErrStageNotFound reports a stage name missing from the runner's table.
// It signals a programming error in the host's stage registration.
var ErrStageNotFound = errors.New("stage not found")

// StageFunc is one named step of a staged flow. Stages chain by calling
// RunStage and finish the flow by calling End.
type StageFunc func(r *Runner) error

// Runner dispatches named stages in a host-declared table. Prompts are
// typically invoked from inside stage functions but have no dependency on
// the runner.
type Runner struct {
	stages map[string]StageFunc
	order  []string
	ended  bool
}

func NewRunner() *Runner {
	return &Runner{stages: make(map[string]StageFunc)}
}

// Register adds a stage. The first registered stage is the entry point.
func (r *Runner) Register(name string, fn StageFunc) *Runner {
	if _, exists := r.stages[name]; !exists {
		r.order = append(r.order, name)
	}
	r.stages[name] = fn
	return r
}

// Start invokes the first declared stage and returns once some stage has
// called End. A flow that unwinds without End is a programming error.
func (r *Runner) Start() error {
	if len(r.order) == 0 {
		return errors.New("no stages registered")
	}
	r.ended = false
	if err := r.RunStage(r.order[0]); err != nil {
		return err
	}
	if !r.ended {
		return errors.New("stage flow finished without calling End")
	}
	return nil
}

// RunStage invokes one stage by name.
func (r *Runner) RunStage(name string) error {
	fn, ok := r.stages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStageNotFound, name)
	}
	return fn(r)
}

// End marks the flow as complete.
func (r *Runner) End() {
	r.ended = true
}
