// Package export drives the frame renderer across a fixed 30 fps
// grid and streams raw RGBA frames into an external encoder process.
package export

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/lyrvid/lyrvid/internal/lyrics"
	"github.com/lyrvid/lyrvid/internal/render"
	"github.com/lyrvid/lyrvid/internal/style"
)

// FrameRate is the fixed output frame rate.
const FrameRate = 30

// progress updates are emitted every progressStride frames so a
// listener is not flooded once per frame
const progressStride = 10

// Job describes one export run.
type Job struct {
	Config     style.Config
	Track      lyrics.Track
	OutputPath string
}

// encoder consumes one raw RGBA frame stream and produces the output
// container file.
type encoder interface {
	// Start launches the process and returns the write end of its
	// input pipe.
	Start() (io.WriteCloser, error)
	// Wait reaps the process after the pipe is closed.
	Wait() error
	// Abort force-terminates and reaps the process after a mid-stream
	// failure.
	Abort()
}

// Exporter runs export jobs. One job runs at a time per Exporter; the
// underlying pipe permits no concurrent writers.
type Exporter struct {
	renderer   *render.Renderer
	newEncoder func(cfg style.Config, outputPath string) (encoder, error)
}

func New() *Exporter {
	return &Exporter{
		renderer:   render.New(),
		newEncoder: newFFmpegEncoder,
	}
}

// TotalFrames is the number of frames a config's duration produces.
func TotalFrames(cfg style.Config) int {
	return int(math.Round(cfg.Export.Duration * FrameRate))
}

// Run renders every frame in order and writes it to the encoder pipe.
// The pipe write is the only flow control: when the encoder's input
// buffer is full the loop blocks. onProgress, if non-nil, receives a
// percentage every tenth frame and 100 on completion.
//
// Cancellation is observed once per frame: the pipe is closed, the
// encoder reaped, and ctx.Err() returned without a completion signal.
func (e *Exporter) Run(ctx context.Context, job Job, onProgress func(pct int)) error {
	if err := job.Config.Validate(); err != nil {
		return fmt.Errorf("invalid style config: %w", err)
	}

	enc, err := e.newEncoder(job.Config, job.OutputPath)
	if err != nil {
		return fmt.Errorf("configure encoder: %w", err)
	}

	pipe, err := enc.Start()
	if err != nil {
		return fmt.Errorf("start encoder: %w", err)
	}

	total := TotalFrames(job.Config)
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			pipe.Close()
			enc.Wait()
			return ctx.Err()
		default:
		}

		frame := e.renderer.Frame(job.Config, job.Track, float64(i)/FrameRate)
		if _, err := pipe.Write(frame.Pix); err != nil {
			pipe.Close()
			enc.Abort()
			return fmt.Errorf("write frame %d: %w", i, err)
		}

		if onProgress != nil && i%progressStride == 0 {
			onProgress(i * 100 / total)
		}
	}

	if err := pipe.Close(); err != nil {
		enc.Abort()
		return fmt.Errorf("close encoder pipe: %w", err)
	}
	if err := enc.Wait(); err != nil {
		return err
	}

	if onProgress != nil {
		onProgress(100)
	}
	return nil
}
