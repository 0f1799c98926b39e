// The img2gif command assembles the images in a directory into an animated GIF.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ivlev/img2gif/internal/animation"
	"github.com/ivlev/img2gif/internal/batch"
	"github.com/ivlev/img2gif/internal/config"
	"github.com/ivlev/img2gif/internal/engine"
	"github.com/ivlev/img2gif/internal/raster"
	"github.com/ivlev/img2gif/internal/system"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	flags := flag.NewFlagSet("img2gif", flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), `Usage of %s:

  %[1]s -dir <frames> -output <out.gif> [options]
  %[1]s -jobs <jobs.yaml> [-workers N]

`, flags.Name())
		flags.PrintDefaults()
	}

	def := config.Default()
	dir := flags.String("dir", "", "directory holding the frame images")
	output := flags.String("output", "", "path of the GIF to write")
	ext := flags.String("ext", def.Extension, "extension of the frame images (svg, png, jpg, ...)")
	dpi := flags.Int("dpi", def.DPI, "resolution for rasterizing vector frames")
	duration := flags.Int("duration", def.Duration, "base frame duration in milliseconds")
	loop := flags.Int("loop", def.Loop, "number of loops, 0 loops forever")
	sortOrder := flags.String("sort", def.Sort, "frame order: numeric or lexical")
	unnumbered := flags.String("unnumbered", def.Unnumbered, "numeric order handling of files without a number: exclude, last or error")
	single := flags.String("single-frame", def.SingleFrame, "duration rule for a single frame: last, first or compound")
	manifestPath := flags.String("manifest", "", "write a YAML description of the animation to this path")
	stats := flags.Bool("stats", false, "log a timing report")
	jobsPath := flags.String("jobs", "", "YAML file of jobs to run instead of a single build")
	workers := flags.Int("workers", 0, "concurrent jobs in -jobs mode (0: number of CPU cores)")
	logging := flags.String("log", "info", "logging level (debug, info, warn or error)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var level slog.LevelVar
	if err := level.UnmarshalText([]byte(*logging)); err != nil {
		flags.Usage()
		return 2
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level}))

	var jobs []config.Config
	n := *workers
	if *jobsPath != "" {
		j, err := config.LoadJobs(*jobsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		jobs = j.Jobs
		if n == 0 {
			n = j.Workers
		}
	} else {
		cfg := config.Config{
			Directory:    *dir,
			Output:       *output,
			Extension:    *ext,
			DPI:          *dpi,
			Duration:     *duration,
			Loop:         *loop,
			Sort:         *sortOrder,
			Unnumbered:   *unnumbered,
			SingleFrame:  *single,
			ManifestPath: *manifestPath,
			ShowStats:    *stats,
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			flags.Usage()
			return 2
		}
		jobs = []config.Config{cfg}
	}
	if n == 0 {
		n = system.DefaultWorkers()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	codec := &raster.Codec{}
	rasterizer := &raster.FitzRasterizer{Codec: codec}
	enc := &animation.GIFEncoder{}

	err := batch.Run(ctx, jobs, n, func(ctx context.Context, cfg *config.Config) error {
		jlog := log.With(slog.String("component", "img2gif"), slog.String("output", cfg.Output))
		return engine.NewProject(cfg, rasterizer, codec, enc, jlog).Run(ctx)
	})
	if err != nil {
		log.Error("failed", "error", err)
		return 1
	}
	return 0
}
