package slicer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/log"
	"github.com/shidetake/codeceval/internal/audio"
)

// Config describes one slicing run
type Config struct {
	Patterns  []string // Recursive glob patterns selecting input files
	OutputDir string   // Root of the mirrored output tree
	BaseDir   string   // Input paths are mirrored relative to this directory
	Seconds   float64  // Window duration
	KeepGoing bool     // Record per-file failures and continue
}

// Failure records a file that could not be sliced
type Failure struct {
	Path string
	Err  error
}

// Report summarizes a slicing run
type Report struct {
	Files    int      // Files discovered
	Windows  int      // Window files written
	Written  []string // Paths of window files, in write order
	Failures []Failure
}

// Slicer cuts audio files into fixed-duration windows
type Slicer struct {
	cfg Config
	out io.Writer
}

// New validates cfg and returns a slicer printing progress to out
func New(cfg Config, out io.Writer) (*Slicer, error) {
	if len(cfg.Patterns) == 0 {
		return nil, ErrNoPatterns
	}
	if cfg.Seconds <= 0 {
		return nil, fmt.Errorf("%w: %v seconds", ErrInvalidWindow, cfg.Seconds)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = "."
	}
	if out == nil {
		out = io.Discard
	}
	return &Slicer{cfg: cfg, out: out}, nil
}

type job struct {
	path string
	stem string
}

// Run discovers the input files, creates every output directory, then
// writes each file's windows. Without KeepGoing the first failure aborts
// the run; with it, failures are collected and joined into the error.
func (s *Slicer) Run() (*Report, error) {
	files, err := Discover(s.cfg.Patterns)
	if err != nil {
		return nil, err
	}
	report := &Report{Files: len(files)}
	log.Debugf("discovered %d files", len(files))

	jobs := make([]job, 0, len(files))
	owners := make(map[string]string, len(files))
	for _, f := range files {
		stem, err := OutputStem(s.cfg.OutputDir, s.cfg.BaseDir, f)
		if err != nil {
			return report, err
		}
		// take.wav and take.flac would overwrite each other's windows
		if prev, ok := owners[stem]; ok {
			return report, fmt.Errorf("%w: %s and %s both write %s_*.wav", ErrStemCollision, prev, f, stem)
		}
		owners[stem] = f
		jobs = append(jobs, job{path: f, stem: stem})
	}

	// Directories first, so a failing file never leaves later ones without one
	for _, j := range jobs {
		dir := filepath.Dir(j.stem)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return report, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	for _, j := range jobs {
		written, err := s.sliceFile(j)
		report.Written = append(report.Written, written...)
		report.Windows += len(written)
		if err == nil {
			continue
		}

		if !s.cfg.KeepGoing {
			return report, err
		}
		log.Warnf("skipping %s: %v", j.path, err)
		fmt.Fprintf(s.out, "  ✗ %s: %v\n", j.path, err)
		report.Failures = append(report.Failures, Failure{Path: j.path, Err: err})
	}

	if len(report.Failures) > 0 {
		errs := make([]error, len(report.Failures))
		for i, f := range report.Failures {
			errs[i] = f.Err
		}
		return report, fmt.Errorf("%d of %d files failed: %w", len(report.Failures), report.Files, errors.Join(errs...))
	}
	return report, nil
}

// sliceFile writes every complete window of one file
func (s *Slicer) sliceFile(j job) ([]string, error) {
	pcm, err := audio.Load(j.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", j.path, err)
	}

	window, err := WindowFrames(s.cfg.Seconds, pcm.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", j.path, err)
	}
	count := WindowCount(pcm.Frames(), window)

	var written []string
	for i, samples := range Windows(pcm, window) {
		path := WindowName(j.stem, i, count)
		if err := audio.WriteWAV(path, samples, pcm.SampleRate, pcm.Channels, pcm.BitDepth, pcm.Format); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	fmt.Fprintf(s.out, "  ✓ %s: %d windows (%d channels, %d Hz, %s)\n",
		j.path, count, pcm.Channels, pcm.SampleRate, pcm.DurationString())
	return written, nil
}
