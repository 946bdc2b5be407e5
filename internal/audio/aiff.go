package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/aiff"
)

// LoadAIFF reads an AIFF file and returns its samples unmodified
func LoadAIFF(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open AIFF file %s: %w", path, err)
	}
	defer f.Close()

	decoder := aiff.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not an AIFF file: %s", ErrInvalidFile, path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data from %s: %w", path, err)
	}

	pcm := &PCM{
		Path:       path,
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		BitDepth:   int(decoder.BitDepth),
		Format:     FormatPCM,
		Data:       buf.Data,
	}
	// AIFF 8-bit samples are signed
	if pcm.BitDepth == 8 {
		toUnsigned8(pcm.Data)
	}
	if err := validate(pcm); err != nil {
		return nil, err
	}
	return pcm, nil
}
