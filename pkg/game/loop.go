package game

import (
	"context"
	"time"
)

// FixedRateLoop drives a session outside Ebitengine, one Tick per interval.
// It is used by the headless simulator; the windowed game is driven by the
// ebiten.Game callbacks instead.
type FixedRateLoop struct {
	// Interval between ticks. Zero runs frames back to back.
	Interval time.Duration

	// MaxFrames stops the loop after this many ticks. Zero means no limit.
	MaxFrames int

	// StopOnGameOver ends the loop on the first tick that leaves the session in StateGameOver.
	StopOnGameOver bool

	// BeforeTick, if set, runs before every tick. Input actions belong here.
	BeforeTick func(frame int)
}

// Run ticks s until a stop condition is met and returns the number of ticks run.
// It returns ctx.Err() when the context is cancelled first.
func (l *FixedRateLoop) Run(ctx context.Context, s *Session) (int, error) {
	var tick <-chan time.Time
	if l.Interval > 0 {
		ticker := time.NewTicker(l.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	frames := 0
	for l.MaxFrames == 0 || frames < l.MaxFrames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return frames, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return frames, err
		}

		if l.BeforeTick != nil {
			l.BeforeTick(frames)
		}
		s.Tick()
		frames++

		if l.StopOnGameOver && s.IsGameOver() {
			break
		}
	}
	return frames, nil
}
