package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"
	"streetart-capture/internal/camera"
	"streetart-capture/internal/compress"
	"streetart-capture/internal/config"
	"streetart-capture/internal/geo"
	"streetart-capture/internal/logger"
	"streetart-capture/internal/services"
	"streetart-capture/internal/submission"
)

type options struct {
	source    string
	facing    string
	artist    string
	lat       string
	lon       string
	maxSizeMB float64
	maxEdge   int
}

// printNotifier writes alerts to the command output.
type printNotifier struct {
	out io.Writer
}

func (p printNotifier) Notify(a submission.Alert) {
	fmt.Fprintln(p.out, a.Message)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture one street art photo and upload it",
		Long: "Takes a still from the camera, compresses it, tags it with the location\n" +
			"and an optional artist name, and uploads it to Supabase.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "streetart-capture", Writer: cmd.ErrOrStderr()})
			opts.applyDefaults(cfg)

			publisher, closeStores, err := services.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			defer closeStores()

			return run(cmd.Context(), opts, publisher, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "camera snapshot URL or frame file (default $CAMERA_SOURCE)")
	cmd.Flags().StringVar(&opts.facing, "facing", "", "camera facing: environment or user (default $CAMERA_FACING)")
	cmd.Flags().StringVarP(&opts.artist, "artist", "a", "", "artist name, if known")
	cmd.Flags().StringVar(&opts.lat, "lat", "", "latitude in degrees (default $LOCATION_LATITUDE)")
	cmd.Flags().StringVar(&opts.lon, "lon", "", "longitude in degrees (default $LOCATION_LONGITUDE)")
	cmd.Flags().Float64Var(&opts.maxSizeMB, "max-size-mb", 0, "maximum compressed size in MB (default $COMPRESS_MAX_SIZE_MB)")
	cmd.Flags().IntVar(&opts.maxEdge, "max-dimension", 0, "maximum longer edge in pixels (default $COMPRESS_MAX_DIMENSION)")

	return cmd
}

func (o *options) applyDefaults(cfg *config.Config) {
	if o.source == "" {
		o.source = cfg.CameraSource
	}
	if o.facing == "" {
		o.facing = cfg.CameraFacing
	}
	if o.lat == "" && o.lon == "" {
		o.lat, o.lon = cfg.LocationLatitude, cfg.LocationLongitude
	}
	if o.maxSizeMB <= 0 {
		o.maxSizeMB = cfg.CompressMaxSizeMB
	}
	if o.maxEdge <= 0 {
		o.maxEdge = cfg.CompressMaxDimension
	}
}

func (o *options) locator() (geo.Locator, error) {
	if o.lat == "" && o.lon == "" {
		return nil, nil
	}
	if o.lat == "" || o.lon == "" {
		return nil, fmt.Errorf("--lat and --lon must be given together")
	}
	return geo.ParseStatic(o.lat, o.lon)
}

// run performs one capture and one submission. The camera is released on
// every return path.
func run(ctx context.Context, o *options, publisher submission.Publisher, out io.Writer) error {
	if o.source == "" {
		return fmt.Errorf("no camera source: pass --source or set CAMERA_SOURCE")
	}
	locator, err := o.locator()
	if err != nil {
		return err
	}
	source, err := camera.NewSource(o.source, camera.Facing(o.facing))
	if err != nil {
		return err
	}

	form := submission.NewForm(publisher, printNotifier{out: out})
	form.SetArtistName(o.artist)

	capturer := camera.NewCapturer(source, form.SetArtifact,
		camera.WithFacing(camera.Facing(o.facing)),
		camera.WithCompression(compress.Options{MaxSizeMB: o.maxSizeMB, MaxWidthOrHeight: o.maxEdge}),
	)
	defer capturer.Close()

	var (
		wg       sync.WaitGroup
		startErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		startErr = capturer.Start(ctx)
	}()
	go func() {
		defer wg.Done()
		geo.Request(ctx, locator, form)
	}()
	wg.Wait()

	if startErr != nil {
		return startErr
	}
	if form.State().Location == nil {
		return fmt.Errorf("location unavailable: pass --lat/--lon or set LOCATION_LATITUDE/LOCATION_LONGITUDE")
	}

	artifact, err := capturer.Capture(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "captured %s (%dx%d, %d bytes)\n", artifact.Name, artifact.Width, artifact.Height, artifact.Size())

	record, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, record.Image)
	return nil
}
