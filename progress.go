package main

import (
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/b97tsk/reboot/cuboid"
)

const _progressInterval = 100 * time.Millisecond

type _Progress struct {
	w       io.Writer
	limiter *rate.Limiter
}

func _newProgress(w io.Writer) *_Progress {
	return &_Progress{
		w:       w,
		limiter: rate.NewLimiter(rate.Every(_progressInterval), 1),
	}
}

// update redraws the status line, at most once per interval except for the
// final step, which is always drawn and kept.
func (p *_Progress) update(mode string, step, total int, s *cuboid.Space) {
	if step < total && !p.limiter.Allow() {
		return
	}

	fprint(p.w, "\033[1K\r")

	progress := 100
	if total > 0 {
		progress = step * 100 / total
	}
	const length = 20
	bar := make([]byte, length)
	for i := range bar {
		switch {
		case i < length*progress/100:
			bar[i] = '='
		case i == length*progress/100:
			bar[i] = '>'
		default:
			bar[i] = '-'
		}
	}
	fprintf(p.w, "%v %v%% [%s] %v/%v regions:%v", mode, progress, bar, step, total, s.Len())

	if step == total {
		// finished, keep this status line
		fprintln(p.w)
	}
}
