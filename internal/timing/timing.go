// Package timing computes per-frame display durations.
package timing

import (
	"errors"
	"fmt"
)

var (
	ErrNoFrames    = errors.New("no frames to time")
	ErrBadDuration = errors.New("base duration must be positive")
)

// SingleFrame selects the multiplier a one-frame animation gets, where the
// first and the last frame are the same frame.
type SingleFrame int

const (
	// LastOnly applies only the last frame rule (4x). The last rule is
	// applied after the first one and overwrites it.
	LastOnly SingleFrame = iota
	// FirstOnly applies only the first frame rule (2x).
	FirstOnly
	// Compound multiplies the first and the last frame rules (8x).
	Compound
)

const (
	firstFactor = 2
	lastFactor  = 4
)

// ParseSingleFrame returns the policy named by s.
func ParseSingleFrame(s string) (SingleFrame, error) {
	switch s {
	case "last", "":
		return LastOnly, nil
	case "first":
		return FirstOnly, nil
	case "compound":
		return Compound, nil
	default:
		return 0, fmt.Errorf("unknown single frame policy: %s", s)
	}
}

// Durations returns n frame durations in milliseconds. Every frame shows
// for base except the first, which is held twice as long, and the last,
// held four times as long.
func Durations(n, base int, single SingleFrame) ([]int, error) {
	if n < 1 {
		return nil, ErrNoFrames
	}
	if base < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDuration, base)
	}

	durations := make([]int, n)
	for i := range durations {
		durations[i] = base
	}

	if n == 1 {
		switch single {
		case FirstOnly:
			durations[0] *= firstFactor
		case Compound:
			durations[0] *= firstFactor * lastFactor
		default:
			durations[0] *= lastFactor
		}
		return durations, nil
	}

	durations[0] *= firstFactor
	durations[n-1] *= lastFactor
	return durations, nil
}
