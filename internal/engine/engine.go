package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/ivlev/img2gif/internal/config"
	"github.com/ivlev/img2gif/internal/convert"
	"github.com/ivlev/img2gif/internal/discover"
	"github.com/ivlev/img2gif/internal/manifest"
	"github.com/ivlev/img2gif/internal/timing"
)

var ErrOutputLocked = errors.New("output is locked by another process")

// Loader decodes a raster file.
type Loader interface {
	Load(path string) (image.Image, error)
}

// Codec is a Loader that can also rewrite raster files as PNG.
type Codec interface {
	Loader
	convert.Reencoder
}

// Encoder writes an animation of frames with per-frame delays in
// milliseconds repeated loop times, 0 meaning forever.
type Encoder interface {
	Encode(w io.Writer, frames []image.Image, delays []int, loop int) error
}

type Project struct {
	Config    *config.Config
	Converter *convert.Converter
	Loader    Loader
	Encoder   Encoder
	Log       *slog.Logger
}

func NewProject(cfg *config.Config, r convert.Rasterizer, codec Codec, enc Encoder, log *slog.Logger) *Project {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Project{
		Config:    cfg,
		Converter: &convert.Converter{Rasterizer: r, Codec: codec, Log: log},
		Loader:    codec,
		Encoder:   enc,
		Log:       log,
	}
}

// Run finds the configured frames, converts them to PNG and writes the
// animation to the output path.
func (p *Project) Run(ctx context.Context) error {
	startTime := time.Now()
	cfg := p.Config

	unnumbered, err := discover.ParseUnnumbered(cfg.Unnumbered)
	if err != nil {
		return err
	}
	single, err := timing.ParseSingleFrame(cfg.SingleFrame)
	if err != nil {
		return err
	}

	files, err := discover.FindImageFiles(cfg.Directory, cfg.Extension, discover.Options{
		SortByNumbers: cfg.SortByNumbers(),
		Unnumbered:    unnumbered,
		Log:           p.Log,
	})
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	discoverEnd := time.Now()

	lock := flock.New(cfg.Output + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", cfg.Output, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutputLocked, cfg.Output)
	}
	// Unlink while still holding the lock so no other run can lock the
	// inode that is about to be removed.
	defer func() {
		os.Remove(lock.Path())
		lock.Unlock()
	}()

	if cfg.Extension != "png" {
		p.Log.Info("converting non-PNG files to PNG", "count", len(files), "dpi", cfg.DPI)
		files, err = p.Converter.ToPNGs(ctx, files, cfg.DPI)
		if err != nil {
			return err
		}
	}
	convertEnd := time.Now()

	frames := make([]image.Image, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := p.Loader.Load(f)
		if err != nil {
			return fmt.Errorf("load frame: %w", err)
		}
		frames = append(frames, img)
	}
	loadEnd := time.Now()

	// An empty frame list is left for the encoder to reject.
	var durations []int
	if len(frames) > 0 {
		durations, err = timing.Durations(len(frames), cfg.Duration, single)
		if err != nil {
			return err
		}
	}

	if err := p.writeOutput(frames, durations); err != nil {
		return err
	}

	if cfg.ManifestPath != "" {
		m := manifest.New(cfg.Output, cfg.Loop, files, durations)
		if err := manifest.Write(m, cfg.ManifestPath); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		p.Log.Info("manifest saved", "path", cfg.ManifestPath)
	}

	if cfg.ShowStats {
		p.Log.Info("performance report",
			"frames", len(frames),
			"total", time.Since(startTime),
			"discover", discoverEnd.Sub(startTime),
			"convert", convertEnd.Sub(discoverEnd),
			"load", loadEnd.Sub(convertEnd),
			"encode", time.Since(loadEnd),
		)
	}

	p.Log.Info("GIF saved", "path", cfg.Output, "frames", len(frames))
	return nil
}

// writeOutput encodes into a temporary file next to the output and renames
// it into place, so a failed encode leaves no partial file behind.
func (p *Project) writeOutput(frames []image.Image, durations []int) error {
	out := p.Config.Output
	tmp, err := os.CreateTemp(filepath.Dir(out), "."+filepath.Base(out)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := p.Encoder.Encode(tmp, frames, durations, p.Config.Loop); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), out)
}
