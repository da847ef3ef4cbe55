package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streetart-capture/internal/models"
	"streetart-capture/internal/services"
)

type uploadCall struct {
	key         string
	size        int
	contentType string
}

type fakeObjects struct {
	uploads []uploadCall
	err     error
}

func (f *fakeObjects) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	f.uploads = append(f.uploads, uploadCall{key: key, size: len(data), contentType: contentType})
	return f.err
}

func (f *fakeObjects) PublicURL(key string) string {
	return "https://example.supabase.co/storage/v1/object/public/user_added_images/" + key
}

type fakeRecords struct {
	inserts []models.UploadRecord
	err     error
}

func (f *fakeRecords) InsertRecord(ctx context.Context, record models.UploadRecord) error {
	f.inserts = append(f.inserts, record)
	return f.err
}

func submissionFor(artist string) models.Submission {
	return models.Submission{
		Artifact:   &models.Artifact{Name: "image.jpg", ContentType: "image/jpeg", Data: make([]byte, 500*1024)},
		Position:   models.GeoPosition{Latitude: 40.730610, Longitude: -73.935242},
		ArtistName: artist,
	}
}

func TestUploadService_Publish(t *testing.T) {
	objects := &fakeObjects{}
	records := &fakeRecords{}
	at := time.UnixMilli(1700000000123)
	svc := services.NewUploadService(objects, records).WithClock(func() time.Time { return at })

	rec, err := svc.Publish(context.Background(), submissionFor("Banksy"))
	require.NoError(t, err)

	require.Len(t, objects.uploads, 1)
	assert.Equal(t, "1700000000123-image.jpg", objects.uploads[0].key)
	assert.Contains(t, objects.uploads[0].key, "image.jpg")
	assert.Equal(t, 500*1024, objects.uploads[0].size)
	assert.Equal(t, "image/jpeg", objects.uploads[0].contentType)

	require.Len(t, records.inserts, 1)
	inserted := records.inserts[0]
	assert.Equal(t, "Banksy", inserted.ArtistName)
	assert.Equal(t, 40.730610, inserted.Latitude)
	assert.Equal(t, -73.935242, inserted.Longitude)
	assert.Nil(t, inserted.UserID)
	assert.True(t, strings.HasSuffix(inserted.Image, "/user_added_images/1700000000123-image.jpg"))
	assert.Equal(t, inserted, *rec)

	raw, err := json.Marshal(inserted)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"user_id":null`)
}

func TestUploadService_UploadFailureSkipsInsert(t *testing.T) {
	objects := &fakeObjects{err: errors.New("bucket not found")}
	records := &fakeRecords{}
	svc := services.NewUploadService(objects, records)

	_, err := svc.Publish(context.Background(), submissionFor("Banksy"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload image")
	assert.Empty(t, records.inserts)
}

func TestUploadService_InsertFailure(t *testing.T) {
	objects := &fakeObjects{}
	records := &fakeRecords{err: errors.New("row level security")}
	svc := services.NewUploadService(objects, records)

	_, err := svc.Publish(context.Background(), submissionFor(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert record")
	assert.Len(t, objects.uploads, 1)
	require.Len(t, records.inserts, 1)
	assert.Equal(t, "", records.inserts[0].ArtistName)
}

func TestUploadService_RejectsMissingArtifact(t *testing.T) {
	objects := &fakeObjects{}
	svc := services.NewUploadService(objects, &fakeRecords{})

	_, err := svc.Publish(context.Background(), models.Submission{})
	assert.Error(t, err)
	assert.Empty(t, objects.uploads)
}

func TestObjectKey_DistinctPerTimestamp(t *testing.T) {
	a := services.ObjectKey(time.UnixMilli(1000), "image.jpg")
	b := services.ObjectKey(time.UnixMilli(1001), "image.jpg")
	assert.NotEqual(t, a, b)
	assert.Equal(t, "1000-image.jpg", a)
}
