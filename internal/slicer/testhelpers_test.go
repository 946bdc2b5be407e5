package slicer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shidetake/codeceval/internal/audio"
	"github.com/stretchr/testify/require"
)

// writeTone writes a 16-bit WAV whose samples count up from zero
func writeTone(t *testing.T, path string, frames, channels, rate int) []int {
	t.Helper()
	data := make([]int, frames*channels)
	for i := range data {
		data[i] = i%20000 - 10000
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, audio.WriteWAV(path, data, rate, channels, 16, audio.FormatPCM))
	return data
}
