package submission_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streetart-capture/internal/models"
	"streetart-capture/internal/submission"
)

type fakePublisher struct {
	mu      sync.Mutex
	calls   []models.Submission
	err     error
	started chan struct{}
	release chan struct{}
}

func (p *fakePublisher) Publish(ctx context.Context, sub models.Submission) (*models.UploadRecord, error) {
	p.mu.Lock()
	p.calls = append(p.calls, sub)
	p.mu.Unlock()

	if p.started != nil {
		p.started <- struct{}{}
	}
	if p.release != nil {
		<-p.release
	}
	if p.err != nil {
		return nil, p.err
	}
	return &models.UploadRecord{
		ArtistName: sub.ArtistName,
		Latitude:   sub.Position.Latitude,
		Longitude:  sub.Position.Longitude,
		Image:      "https://example.supabase.co/storage/v1/object/public/user_added_images/1-image.jpg",
	}, nil
}

func (p *fakePublisher) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

type recordingNotifier struct {
	mu     sync.Mutex
	alerts []submission.Alert
}

func (n *recordingNotifier) Notify(a submission.Alert) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, a)
}

func artifact() *models.Artifact {
	return &models.Artifact{Name: "image.jpg", ContentType: "image/jpeg", Data: make([]byte, 500*1024)}
}

func readyForm(pub submission.Publisher, n submission.Notifier) *submission.Form {
	f := submission.NewForm(pub, n)
	_ = f.SetLocation(models.GeoPosition{Latitude: 40.730610, Longitude: -73.935242})
	f.SetArtifact(artifact())
	f.SetArtistName("Banksy")
	return f
}

func TestForm_SubmitSuccessResetsForm(t *testing.T) {
	pub := &fakePublisher{}
	n := &recordingNotifier{}
	f := readyForm(pub, n)
	require.True(t, f.Ready())

	rec, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rec)

	require.Equal(t, 1, pub.callCount())
	sub := pub.calls[0]
	assert.Equal(t, "Banksy", sub.ArtistName)
	assert.Equal(t, 40.730610, sub.Position.Latitude)
	assert.Equal(t, -73.935242, sub.Position.Longitude)

	st := f.State()
	assert.Equal(t, "", st.ArtistName)
	assert.Nil(t, st.Artifact)
	require.NotNil(t, st.Location)
	assert.Equal(t, 40.730610, st.Location.Latitude)
	assert.False(t, st.Uploading)
	assert.False(t, f.Ready())

	require.Len(t, n.alerts, 1)
	assert.Equal(t, submission.LevelSuccess, n.alerts[0].Level)
	assert.Equal(t, "Art piece successfully uploaded!", n.alerts[0].Message)
}

func TestForm_SubmitWithoutLocationHasNoEffect(t *testing.T) {
	pub := &fakePublisher{}
	n := &recordingNotifier{}
	f := submission.NewForm(pub, n)
	a := artifact()
	f.SetArtifact(a)
	f.SetArtistName("Banksy")

	assert.False(t, f.View().SubmitEnabled)

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, submission.ErrNotReady)
	assert.Zero(t, pub.callCount())
	assert.Empty(t, n.alerts)

	st := f.State()
	assert.Same(t, a, st.Artifact)
	assert.Equal(t, "Banksy", st.ArtistName)
	assert.False(t, st.Uploading)
}

func TestForm_SubmitWithoutArtifactHasNoEffect(t *testing.T) {
	pub := &fakePublisher{}
	f := submission.NewForm(pub, nil)
	require.NoError(t, f.SetLocation(models.GeoPosition{Latitude: 1, Longitude: 1}))

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, submission.ErrNotReady)
	assert.Zero(t, pub.callCount())
}

func TestForm_SubmitFailureKeepsFields(t *testing.T) {
	pub := &fakePublisher{err: errors.New("failed to insert record: permission denied")}
	n := &recordingNotifier{}
	f := readyForm(pub, n)
	before := f.State()

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, submission.ErrSubmitFailed)

	st := f.State()
	assert.Same(t, before.Artifact, st.Artifact)
	assert.Equal(t, "Banksy", st.ArtistName)
	assert.False(t, st.Uploading)
	assert.True(t, f.Ready())

	require.Len(t, n.alerts, 1)
	assert.Equal(t, submission.LevelError, n.alerts[0].Level)
	assert.Equal(t, "Error uploading image. Please try again.", n.alerts[0].Message)
}

func TestForm_InFlightFlagGuardsReentry(t *testing.T) {
	pub := &fakePublisher{started: make(chan struct{}), release: make(chan struct{})}
	f := readyForm(pub, &recordingNotifier{})

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()
	<-pub.started

	st := f.State()
	assert.True(t, st.Uploading)
	assert.False(t, f.View().SubmitEnabled)
	assert.Equal(t, "Uploading...", f.View().SubmitLabel)

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, submission.ErrNotReady)

	close(pub.release)
	require.NoError(t, <-done)
	assert.False(t, f.State().Uploading)
	assert.Equal(t, 1, pub.callCount())
}

func TestForm_NewCaptureDuringUploadSurvives(t *testing.T) {
	pub := &fakePublisher{started: make(chan struct{}), release: make(chan struct{})}
	f := readyForm(pub, nil)

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()
	<-pub.started

	next := artifact()
	f.SetArtifact(next)
	close(pub.release)
	require.NoError(t, <-done)

	assert.Same(t, next, f.State().Artifact)
	assert.Equal(t, "", f.State().ArtistName)
}

func TestForm_LocationIsSetOnce(t *testing.T) {
	f := submission.NewForm(&fakePublisher{}, nil)

	require.NoError(t, f.SetLocation(models.GeoPosition{Latitude: 10, Longitude: 20}))
	err := f.SetLocation(models.GeoPosition{Latitude: 30, Longitude: 40})
	assert.ErrorIs(t, err, submission.ErrLocationAlreadySet)
	assert.Equal(t, 10.0, f.State().Location.Latitude)
}

func TestForm_LocationFailureIsPermanent(t *testing.T) {
	f := submission.NewForm(&fakePublisher{}, nil)
	f.LocationFailed(errors.New("denied"))
	f.SetArtifact(artifact())

	err := f.SetLocation(models.GeoPosition{Latitude: 10, Longitude: 20})
	assert.ErrorIs(t, err, submission.ErrLocationUnavailable)
	assert.True(t, f.State().LocationFailed)
	assert.False(t, f.Ready())
}

func TestForm_SetLocationRejectsOutOfRange(t *testing.T) {
	f := submission.NewForm(&fakePublisher{}, nil)
	assert.Error(t, f.SetLocation(models.GeoPosition{Latitude: 120, Longitude: 0}))
	assert.Error(t, f.SetLocation(models.GeoPosition{Latitude: math.NaN(), Longitude: 0}))
	assert.Nil(t, f.State().Location)
}
