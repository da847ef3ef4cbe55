package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"streetart-capture/internal/compress"
)

// Facing is the preferred camera direction.
type Facing string

const (
	FacingEnvironment Facing = "environment"
	FacingUser        Facing = "user"
)

// Constraints describe the requested stream. Only video is supported.
type Constraints struct {
	Facing Facing
	Audio  bool
}

// Source acquires camera streams.
type Source interface {
	Open(ctx context.Context, c Constraints) (Stream, error)
}

// Stream is a live camera feed. Stop releases the device and is idempotent.
type Stream interface {
	Snapshot(ctx context.Context) (image.Image, error)
	Stop() error
}

var (
	ErrAudioUnsupported = errors.New("audio capture is not supported")
	ErrStreamStopped    = errors.New("stream stopped")
)

// NewSource picks a source for target: http(s) URLs are snapshot endpoints,
// anything else is a frame file path.
func NewSource(target string, facing Facing) (Source, error) {
	switch {
	case target == "":
		return nil, fmt.Errorf("camera source is empty")
	case strings.HasPrefix(target, "http://"), strings.HasPrefix(target, "https://"):
		return &SnapshotSource{URL: target, Facing: facing, Client: http.DefaultClient}, nil
	default:
		return &FileSource{Path: target, Facing: facing}, nil
	}
}

func checkConstraints(c Constraints, facing Facing) error {
	if c.Audio {
		return ErrAudioUnsupported
	}
	if c.Facing != "" && facing != "" && c.Facing != facing {
		return fmt.Errorf("camera faces %q, requested %q", facing, c.Facing)
	}
	return nil
}

// SnapshotSource reads frames from an IP camera snapshot endpoint.
type SnapshotSource struct {
	URL    string
	Facing Facing
	Client *http.Client
}

func (s *SnapshotSource) Open(ctx context.Context, c Constraints) (Stream, error) {
	if err := checkConstraints(c, s.Facing); err != nil {
		return nil, err
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	st := &snapshotStream{url: s.URL, client: client}

	// Probe once so permission and reachability errors surface at open time.
	if _, err := st.Snapshot(ctx); err != nil {
		return nil, fmt.Errorf("failed to open camera %s: %w", s.URL, err)
	}
	return st, nil
}

type snapshotStream struct {
	url    string
	client *http.Client

	mu      sync.Mutex
	stopped bool
}

func (s *snapshotStream) Snapshot(ctx context.Context) (image.Image, error) {
	s.mu.Lock()
	stopped := s.stopped
	s.mu.Unlock()
	if stopped {
		return nil, ErrStreamStopped
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot failed: status %d", resp.StatusCode)
	}

	img, err := compress.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}
	return img, nil
}

func (s *snapshotStream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	return nil
}

// FileSource reads the latest frame from a file kept fresh by an external
// grabber (fswebcam, ffmpeg -update 1, ...).
type FileSource struct {
	Path   string
	Facing Facing
}

func (s *FileSource) Open(ctx context.Context, c Constraints) (Stream, error) {
	if err := checkConstraints(c, s.Facing); err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("failed to open camera %s: %w", s.Path, err)
	}
	return &fileStream{path: s.Path}, nil
}

type fileStream struct {
	path string

	mu      sync.Mutex
	stopped bool
}

func (s *fileStream) Snapshot(ctx context.Context) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil, ErrStreamStopped
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame: %w", err)
	}

	img, err := compress.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}
	return img, nil
}

func (s *fileStream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	return nil
}
