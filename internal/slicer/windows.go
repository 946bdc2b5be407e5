package slicer

import (
	"fmt"
	"iter"

	"github.com/shidetake/codeceval/internal/audio"
)

// WindowFrames returns the number of frames in a window of the given
// duration at sampleRate.
func WindowFrames(seconds float64, sampleRate int) (int, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("%w: %v seconds", ErrInvalidWindow, seconds)
	}
	frames := audio.SecondsToFrames(seconds, sampleRate)
	if frames <= 0 {
		return 0, fmt.Errorf("%w: %v seconds at %d Hz is less than one frame", ErrInvalidWindow, seconds, sampleRate)
	}
	return frames, nil
}

// WindowCount returns how many complete windows fit in frames
func WindowCount(frames, window int) int {
	if window <= 0 {
		return 0
	}
	return frames / window
}

// Windows yields consecutive non-overlapping windows of p, each holding
// window frames of interleaved samples. Trailing frames that do not fill a
// whole window are never yielded. The slices alias p.Data.
func Windows(p *audio.PCM, window int) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		n := WindowCount(p.Frames(), window)
		size := window * p.Channels
		for i := 0; i < n; i++ {
			start, end := i*size, (i+1)*size
			if !yield(i, p.Data[start:end:end]) {
				return
			}
		}
	}
}
