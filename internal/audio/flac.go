package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// LoadFLAC decodes a FLAC file into interleaved integer samples
func LoadFLAC(path string) (*PCM, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse FLAC file %s: %v", ErrInvalidFile, path, err)
	}
	defer stream.Close()

	channels := int(stream.Info.NChannels)
	data := make([]int, 0, int(stream.Info.NSamples)*channels)

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode FLAC frame in %s: %w", path, err)
		}

		// Subframes hold one channel each; interleave them
		for i := 0; i < frame.Subframes[0].NSamples; i++ {
			for _, sub := range frame.Subframes {
				data = append(data, int(sub.Samples[i]))
			}
		}
	}

	pcm := &PCM{
		Path:       path,
		SampleRate: int(stream.Info.SampleRate),
		Channels:   channels,
		BitDepth:   int(stream.Info.BitsPerSample),
		Format:     FormatPCM,
		Data:       data,
	}
	if pcm.BitDepth == 8 {
		toUnsigned8(pcm.Data)
	}
	if err := validate(pcm); err != nil {
		return nil, err
	}
	return pcm, nil
}
