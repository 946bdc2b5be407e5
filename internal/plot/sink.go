package plot

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/wcharczuk/go-chart/v2"
)

// Format is a chart output file format
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) renderer() (chart.RendererProvider, error) {
	switch f {
	case FormatSVG:
		return chart.SVG, nil
	case FormatPNG:
		return chart.PNG, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Sink receives finished charts
type Sink interface {
	Emit(name string, c chart.Chart) error
}

// FileSink writes each chart to <Dir>/<name>.<Format>
type FileSink struct {
	Dir    string
	Format Format
}

// Path returns the file a chart with the given name is written to
func (s FileSink) Path(name string) string {
	return filepath.Join(s.Dir, name+"."+string(s.Format))
}

// Emit renders c into its output file
func (s FileSink) Emit(name string, c chart.Chart) error {
	provider, err := s.Format.renderer()
	if err != nil {
		return err
	}
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", s.Dir, err)
		}
	}
	return renderFile(s.Path(name), provider, c)
}

func renderFile(path string, provider chart.RendererProvider, c chart.Chart) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create figure %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close figure %s: %w", path, cerr)
		}
	}()

	if err := c.Render(provider, f); err != nil {
		return fmt.Errorf("failed to render figure %s: %w", path, err)
	}
	return nil
}

// DisplaySink renders each chart to a temporary PNG and opens it in an
// external viewer.
type DisplaySink struct {
	TempDir string   // Empty uses the system temporary directory
	Viewer  []string // Command and leading arguments; the file path is appended

	run func(name string, args ...string) error
}

// NewDisplaySink returns a sink using the platform's default opener
func NewDisplaySink() *DisplaySink {
	viewer := []string{"xdg-open"}
	if runtime.GOOS == "darwin" {
		viewer = []string{"open"}
	}
	return &DisplaySink{Viewer: viewer}
}

// Emit renders c and launches the viewer on it
func (s *DisplaySink) Emit(name string, c chart.Chart) error {
	if len(s.Viewer) == 0 {
		return fmt.Errorf("no viewer configured for %s", name)
	}

	f, err := os.CreateTemp(s.TempDir, name+"-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temporary figure: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temporary figure: %w", err)
	}

	if err := renderFile(path, chart.PNG, c); err != nil {
		os.Remove(path)
		return err
	}

	log.Debugf("opening %s with %s", path, s.Viewer[0])
	run := s.run
	if run == nil {
		run = startCommand
	}
	args := append(append([]string(nil), s.Viewer[1:]...), path)
	if err := run(s.Viewer[0], args...); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to display %s: %w", path, err)
	}
	// The viewer may read the file after the opener returns, so it stays
	return nil
}

func startCommand(name string, args ...string) error {
	_, err := startViewer(name, args...)
	return err
}

// startViewer launches the viewer without blocking. The process is reaped
// in the background; its exit status is sent on the returned channel.
func startViewer(name string, args ...string) (<-chan error, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	exited := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		if err != nil {
			log.Debugf("viewer %s exited: %v", name, err)
		}
		exited <- err
	}()
	return exited, nil
}
