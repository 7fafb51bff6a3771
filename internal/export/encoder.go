package export

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/lyrvid/lyrvid/internal/ffmpeg"
	"github.com/lyrvid/lyrvid/internal/style"
)

// ffmpegEncoder wraps a long-lived ffmpeg process encoding the raw
// RGBA stream on its stdin into a ProRes 4444 file with a 10-bit
// alpha channel.
type ffmpegEncoder struct {
	cmd    *exec.Cmd
	stderr *tailBuffer
}

func newFFmpegEncoder(cfg style.Config, outputPath string) (encoder, error) {
	bin, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return nil, err
	}

	cmd := ffmpeg.Input("pipe:0", ffmpeg.KwArgs{
		"f":       "rawvideo",
		"vcodec":  "rawvideo",
		"s":       fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height),
		"pix_fmt": "rgba",
		"r":       FrameRate,
	}).Output(outputPath, ffmpeg.KwArgs{
		"c:v":       "prores_ks",
		"profile:v": "4444",
		"pix_fmt":   "yuva444p10le",
		"b:v":       cfg.Export.Bitrate,
	}).OverWriteOutput().Compile()

	// ffmpeg-go resolves "ffmpeg" from PATH; point the compiled
	// command at the provisioned binary instead
	cmd.Path = bin

	stderr := newTailBuffer(4096)
	cmd.Stderr = stderr
	cmd.Stdout = io.Discard

	return &ffmpegEncoder{cmd: cmd, stderr: stderr}, nil
}

func (e *ffmpegEncoder) Start() (io.WriteCloser, error) {
	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := e.cmd.Start(); err != nil {
		return nil, err
	}
	return stdin, nil
}

func (e *ffmpegEncoder) Wait() error {
	if err := e.cmd.Wait(); err != nil {
		if msg := strings.TrimSpace(e.stderr.String()); msg != "" {
			return fmt.Errorf("ffmpeg: %w: %s", err, msg)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

func (e *ffmpegEncoder) Abort() {
	if e.cmd.Process != nil {
		_ = e.cmd.Process.Kill()
	}
	_ = e.cmd.Wait()
}

// tailBuffer keeps the last n bytes written to it. ffmpeg logs a lot;
// only the tail matters when it exits non-zero.
type tailBuffer struct {
	limit int
	buf   []byte
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	if len(b.buf) > b.limit {
		b.buf = b.buf[len(b.buf)-b.limit:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	return string(b.buf)
}
