package submission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"streetart-capture/internal/logger"
	"streetart-capture/internal/models"
)

var (
	ErrNotReady            = errors.New("submission not ready")
	ErrSubmitFailed        = errors.New("submission failed")
	ErrLocationAlreadySet  = errors.New("location already resolved")
	ErrLocationUnavailable = errors.New("location unavailable for this session")
)

// Publisher performs the remote write for one submission.
type Publisher interface {
	Publish(ctx context.Context, sub models.Submission) (*models.UploadRecord, error)
}

// Form is the submission state machine. All methods are safe for
// concurrent use; the in-flight flag makes Submit non-reentrant.
type Form struct {
	publisher Publisher
	notifier  Notifier
	now       func() time.Time
	log       logger.Logger

	mu    sync.Mutex
	state State
}

func NewForm(publisher Publisher, notifier Notifier) *Form {
	return &Form{
		publisher: publisher,
		notifier:  notifier,
		now:       time.Now,
		log:       logger.Component("submission"),
	}
}

// State returns a copy of the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) View() View {
	return Render(f.State())
}

func (f *Form) Ready() bool {
	return IsReady(f.State())
}

// SetLocation records the position. It is accepted once per session and
// never after the lookup failed.
func (f *Form) SetLocation(pos models.GeoPosition) error {
	if err := pos.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.LocationFailed {
		return ErrLocationUnavailable
	}
	if f.state.Location != nil {
		return ErrLocationAlreadySet
	}
	f.state.Location = &pos
	return nil
}

// LocationFailed marks the position as unavailable for the session.
func (f *Form) LocationFailed(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Location != nil {
		return
	}
	f.state.LocationFailed = true
	f.log.Error().Err(err).Msg("location unavailable")
}

// SetArtifact replaces the captured artifact. It matches camera.CaptureFunc.
func (f *Form) SetArtifact(a *models.Artifact) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Artifact = a
}

func (f *Form) SetArtistName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.ArtistName = name
}

// Submit uploads the artifact and writes the record. When the form is not
// ready it returns ErrNotReady and changes nothing. Remote failures surface
// as one generic alert and ErrSubmitFailed; the form keeps its fields.
func (f *Form) Submit(ctx context.Context) (*models.UploadRecord, error) {
	f.mu.Lock()
	if !IsReady(f.state) {
		f.mu.Unlock()
		return nil, ErrNotReady
	}
	f.state.Uploading = true
	sub := models.Submission{
		Artifact:   f.state.Artifact,
		Position:   *f.state.Location,
		ArtistName: f.state.ArtistName,
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.state.Uploading = false
		f.mu.Unlock()
	}()

	record, err := f.publisher.Publish(ctx, sub)
	if err != nil {
		f.log.Error().Err(err).Msg("error uploading")
		f.notify(LevelError, MessageFailure)
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	f.mu.Lock()
	// Leave newer input alone if the user kept editing while uploading.
	if f.state.Artifact == sub.Artifact {
		f.state.Artifact = nil
	}
	if f.state.ArtistName == sub.ArtistName {
		f.state.ArtistName = ""
	}
	f.mu.Unlock()

	f.notify(LevelSuccess, MessageSuccess)
	return record, nil
}

func (f *Form) notify(level Level, msg string) {
	if f.notifier == nil {
		return
	}
	f.notifier.Notify(Alert{Level: level, Message: msg, At: f.now()})
}
