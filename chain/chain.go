package chain

import (
	"context"
	"fmt"
	"time"

	"clahe-enhancer/gray"
	"clahe-enhancer/logger"
)

// Step is one stage of a preprocessing chain. Steps never mutate their
// input; they return a fresh image (or an error).
type Step interface {
	Apply(ctx context.Context, input *gray.Image, params map[string]interface{}) (*gray.Image, error)
	Name() string
	ShouldExecute(params map[string]interface{}) bool
}

// Chain runs steps sequentially, feeding each step's output into the next.
type Chain struct {
	steps []Step
	log   logger.Logger
}

func New(steps ...Step) *Chain {
	return NewWithLogger(logger.Nop(), steps...)
}

func NewWithLogger(log logger.Logger, steps ...Step) *Chain {
	return &Chain{
		steps: steps,
		log:   log,
	}
}

// Execute runs every enabled step in order. The input image is never
// mutated; if no step runs, the input itself is returned.
func (c *Chain) Execute(ctx context.Context, input *gray.Image, params map[string]interface{}) (*gray.Image, error) {
	if err := gray.ValidateForOperation(input, "chain execution"); err != nil {
		return nil, err
	}

	current := input
	for _, step := range c.steps {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !step.ShouldExecute(params) {
			c.log.Debug("chain", "step skipped", map[string]interface{}{
				"step": step.Name(),
			})
			continue
		}

		start := time.Now()
		result, err := step.Apply(ctx, current, params)
		if err != nil {
			return nil, fmt.Errorf("step %s failed: %w", step.Name(), err)
		}

		c.log.Debug("chain", "step complete", map[string]interface{}{
			"step":       step.Name(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		current = result
	}

	return current, nil
}

func (c *Chain) AddStep(step Step) {
	c.steps = append(c.steps, step)
}

func (c *Chain) InsertStep(index int, step Step) error {
	if index < 0 || index > len(c.steps) {
		return fmt.Errorf("insert index %d out of range [0, %d]", index, len(c.steps))
	}
	c.steps = append(c.steps[:index], append([]Step{step}, c.steps[index:]...)...)
	return nil
}

// Steps returns the configured steps in execution order.
func (c *Chain) Steps() []Step {
	return c.steps
}
