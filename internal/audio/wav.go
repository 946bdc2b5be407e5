package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV format tags carried through from source to output
const (
	FormatPCM   = 1 // WAVE_FORMAT_PCM, integer samples
	FormatFloat = 3 // WAVE_FORMAT_IEEE_FLOAT, samples hold the raw float32 bits
)

// LoadWAV reads a WAV file and returns its samples unmodified
func LoadWAV(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV file: %s", ErrInvalidFile, path)
	}

	if err := checkWAVFormat(int(decoder.WavAudioFormat), int(decoder.BitDepth)); err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	format := decoder.Format()

	// Read all audio data in chunks
	const bufferSize = 4096
	allData := make([]int, 0)

	for {
		buf := &audio.IntBuffer{
			Data:   make([]int, bufferSize),
			Format: format,
		}

		n, err := decoder.PCMBuffer(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to read PCM data from %s: %w", path, err)
		}
		if n == 0 {
			break
		}

		allData = append(allData, buf.Data[:n]...)
	}

	pcm := &PCM{
		Path:       path,
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
		Format:     int(decoder.WavAudioFormat),
		Data:       allData,
	}
	if err := validate(pcm); err != nil {
		return nil, err
	}
	return pcm, nil
}

// WriteWAV writes interleaved samples to a WAV file with the given format tag.
// Samples are written as-is at the given bit depth, so FormatFloat data must
// hold float32 bit patterns as returned by LoadWAV.
func WriteWAV(path string, data []int, sampleRate, channels, bitDepth, format int) (err error) {
	if err := checkWAVFormat(format, bitDepth); err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close WAV file %s: %w", path, cerr)
		}
	}()

	encoder := wav.NewEncoder(f, sampleRate, bitDepth, channels, format)

	buf := &audio.IntBuffer{
		Data: data,
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV data to %s: %w", path, err)
	}

	// Close patches the RIFF and data chunk sizes
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file %s: %w", path, err)
	}

	return nil
}

// checkWAVFormat accepts integer PCM at any bit depth and 32-bit IEEE float.
// WAVE_FORMAT_EXTENSIBLE is refused: its sub-format is not exposed by the
// decoder, and guessing would mislabel float data as integers.
func checkWAVFormat(format, bitDepth int) error {
	switch {
	case format == FormatPCM:
		return nil
	case format == FormatFloat && bitDepth == 32:
		return nil
	case format == FormatFloat:
		return fmt.Errorf("%w: %d-bit float WAV", ErrUnsupportedFormat, bitDepth)
	default:
		return fmt.Errorf("%w: WAV format tag %#x", ErrUnsupportedFormat, format)
	}
}
