package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/b97tsk/reboot/cuboid"
)

type _Reactor struct {
	log      *zap.SugaredLogger
	progress *_Progress
}

// reboot applies instructions to an empty space and reports what is left.
func (r _Reactor) reboot(mode string, instructions []cuboid.Instruction) _Result {
	log := r.log.Named(mode)

	var s cuboid.Space
	s.Observe(func(step int, s *cuboid.Space) {
		in := instructions[step-1]
		log.Debugw("applied", "step", step, "switch", in.Switch.String(), "region", in.Region.String(), "regions", s.Len())
		if r.progress != nil {
			r.progress.update(mode, step, len(instructions), s)
		}
	})

	start := time.Now()
	s.ApplyAll(instructions)
	elapsed := time.Since(start)

	result := _Result{
		Instructions: len(instructions),
		Regions:      s.Len(),
		Volume:       s.Volume(),
		Elapsed:      elapsed.String(),
	}
	log.Infow("rebooted",
		"instructions", result.Instructions,
		"regions", result.Regions,
		"volume", result.Volume,
		"elapsed", elapsed,
	)
	return result
}
