// Package camera owns the camera stream and turns frames into compressed
// artifacts.
package camera

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"streetart-capture/internal/compress"
	"streetart-capture/internal/logger"
	"streetart-capture/internal/models"
)

const (
	ArtifactName        = "image.jpg"
	ArtifactContentType = "image/jpeg"

	// snapshotQuality mirrors the usual browser canvas JPEG default.
	snapshotQuality = 92
)

var (
	ErrNoStream          = errors.New("camera stream not available")
	ErrCaptureInProgress = errors.New("capture already in progress")
	ErrClosed            = errors.New("capturer closed")
)

// CaptureFunc receives each compressed artifact exactly once.
type CaptureFunc func(a *models.Artifact)

// Capturer acquires one stream from a Source and produces artifacts on demand.
type Capturer struct {
	source      Source
	constraints Constraints
	opts        compress.Options
	onCapture   CaptureFunc
	now         func() time.Time
	log         logger.Logger

	mu      sync.Mutex
	stream  Stream
	openErr error
	started bool
	closed  bool

	capturing atomic.Bool
}

type Option func(*Capturer)

func WithCompression(opts compress.Options) Option {
	return func(c *Capturer) { c.opts = opts }
}

func WithFacing(f Facing) Option {
	return func(c *Capturer) { c.constraints.Facing = f }
}

func WithClock(now func() time.Time) Option {
	return func(c *Capturer) { c.now = now }
}

// NewCapturer builds a capturer. source may be nil when frames only arrive
// through CaptureImage.
func NewCapturer(source Source, onCapture CaptureFunc, opts ...Option) *Capturer {
	c := &Capturer{
		source:      source,
		constraints: Constraints{Facing: FacingEnvironment},
		opts:        compress.DefaultOptions(),
		onCapture:   onCapture,
		now:         time.Now,
		log:         logger.Component("camera"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start requests the camera stream once. A failure is terminal for the
// lifetime of the capturer.
func (c *Capturer) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		err := c.openErr
		c.mu.Unlock()
		return err
	}
	c.started = true
	c.mu.Unlock()

	if c.source == nil {
		c.mu.Lock()
		c.openErr = ErrNoStream
		c.mu.Unlock()
		return ErrNoStream
	}
	stream, err := c.source.Open(ctx, c.constraints)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.openErr = fmt.Errorf("%w: %v", ErrNoStream, err)
		c.log.Error().Err(err).Msg("error accessing camera")
		return c.openErr
	}
	if c.closed {
		// Close ran while the stream was being opened.
		stopStream(c.log, stream)
		c.openErr = ErrClosed
		return ErrClosed
	}

	c.stream = stream
	c.log.Info().Str("facing", string(c.constraints.Facing)).Msg("camera stream acquired")
	return nil
}

// Ready reports whether a stream is held.
func (c *Capturer) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stream != nil
}

// Capture snapshots the current frame, compresses it and emits the artifact.
func (c *Capturer) Capture(ctx context.Context) (*models.Artifact, error) {
	if !c.capturing.CompareAndSwap(false, true) {
		return nil, ErrCaptureInProgress
	}
	defer c.capturing.Store(false)

	c.mu.Lock()
	stream := c.stream
	c.mu.Unlock()
	if stream == nil {
		return nil, ErrNoStream
	}

	frame, err := stream.Snapshot(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("error reading camera frame")
		return nil, fmt.Errorf("failed to snapshot frame: %w", err)
	}

	raw, err := compress.Encode(frame, snapshotQuality)
	if err != nil {
		c.log.Error().Err(err).Msg("error encoding frame")
		return nil, err
	}
	return c.emit(raw)
}

// CaptureImage compresses a frame captured elsewhere (for example a browser
// camera) and emits it like a local capture.
func (c *Capturer) CaptureImage(ctx context.Context, data []byte) (*models.Artifact, error) {
	if !c.capturing.CompareAndSwap(false, true) {
		return nil, ErrCaptureInProgress
	}
	defer c.capturing.Store(false)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.emit(data)
}

func (c *Capturer) emit(raw []byte) (*models.Artifact, error) {
	res, err := compress.Compress(raw, c.opts)
	if err != nil {
		c.log.Error().Err(err).Msg("error compressing image")
		return nil, fmt.Errorf("failed to compress image: %w", err)
	}

	artifact := &models.Artifact{
		Name:        ArtifactName,
		ContentType: ArtifactContentType,
		Data:        res.Data,
		Width:       res.Width,
		Height:      res.Height,
		CapturedAt:  c.now(),
	}
	c.log.Debug().
		Int("bytes", len(res.Data)).
		Int("width", res.Width).
		Int("height", res.Height).
		Msg("image captured")

	if c.onCapture != nil {
		c.onCapture(artifact)
	}
	return artifact, nil
}

// Close releases the camera stream. Safe to call more than once.
func (c *Capturer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.stream == nil {
		return nil
	}
	err := stopStream(c.log, c.stream)
	c.stream = nil
	return err
}

func stopStream(log logger.Logger, s Stream) error {
	if err := s.Stop(); err != nil {
		log.Error().Err(err).Msg("error releasing camera stream")
		return err
	}
	log.Debug().Msg("camera stream released")
	return nil
}
