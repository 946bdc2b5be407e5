package audio

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// PCM holds a decoded audio file as interleaved integer samples
type PCM struct {
	Path       string
	SampleRate int
	Channels   int
	BitDepth   int
	Format     int   // WAV format tag for the samples, FormatPCM or FormatFloat
	Data       []int // Interleaved samples at the source bit depth, 8-bit unsigned as in WAV
}

// Load reads an audio file, picking the decoder from the file extension.
// Supported inputs are WAV, AIFF and FLAC.
func Load(path string) (*PCM, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return LoadWAV(path)
	case ".aif", ".aiff":
		return LoadAIFF(path)
	case ".flac":
		return LoadFLAC(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Frames returns the number of sample frames (samples per channel)
func (p *PCM) Frames() int {
	if p.Channels <= 0 {
		return 0
	}
	return len(p.Data) / p.Channels
}

// Duration returns the duration of the audio in seconds
func (p *PCM) Duration() float64 {
	if p.SampleRate <= 0 {
		return 0
	}
	return FramesToSeconds(p.Frames(), p.SampleRate)
}

// DurationString returns a human-readable duration string (MM:SS format)
func (p *PCM) DurationString() string {
	duration := p.Duration()
	minutes := int(duration) / 60
	seconds := int(duration) % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FramesToSeconds converts a frame count to seconds
func FramesToSeconds(frames, sampleRate int) float64 {
	return float64(frames) / float64(sampleRate)
}

// SecondsToFrames converts seconds to the nearest frame count
func SecondsToFrames(seconds float64, sampleRate int) int {
	return int(math.Round(seconds * float64(sampleRate)))
}

// toUnsigned8 shifts signed 8-bit samples into WAV's offset-binary range.
// Works on both sign-extended values and raw bytes.
func toUnsigned8(data []int) {
	for i, v := range data {
		data[i] = int(uint8(v) ^ 0x80)
	}
}

func validate(p *PCM) error {
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: %s has sample rate %d", ErrInvalidFile, p.Path, p.SampleRate)
	}
	if p.Channels <= 0 {
		return fmt.Errorf("%w: %s has %d channels", ErrInvalidFile, p.Path, p.Channels)
	}
	if len(p.Data)%p.Channels != 0 {
		return fmt.Errorf("%w: %s has %d samples, not a multiple of %d channels",
			ErrInvalidFile, p.Path, len(p.Data), p.Channels)
	}
	return nil
}
