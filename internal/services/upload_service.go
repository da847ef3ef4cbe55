package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"streetart-capture/internal/models"
)

// ObjectStore stores artifact bytes and resolves their public URL.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}

// RecordStore writes UploadRecord rows.
type RecordStore interface {
	InsertRecord(ctx context.Context, record models.UploadRecord) error
}

// UploadService performs the two-step remote write: upload the image, then
// insert the record that points at it.
type UploadService struct {
	objects ObjectStore
	records RecordStore
	now     func() time.Time
}

func NewUploadService(objects ObjectStore, records RecordStore) *UploadService {
	return &UploadService{
		objects: objects,
		records: records,
		now:     time.Now,
	}
}

// WithClock overrides the clock used for object keys.
func (s *UploadService) WithClock(now func() time.Time) *UploadService {
	s.now = now
	return s
}

// ObjectKey combines a millisecond timestamp with the artifact's filename.
func ObjectKey(at time.Time, filename string) string {
	return fmt.Sprintf("%d-%s", at.UnixMilli(), filename)
}

// Publish uploads sub.Artifact and inserts its record. The insert never runs
// when the upload failed. An object uploaded before a failed insert is left
// in the bucket.
func (s *UploadService) Publish(ctx context.Context, sub models.Submission) (*models.UploadRecord, error) {
	if sub.Artifact == nil || len(sub.Artifact.Data) == 0 {
		return nil, errors.New("no image to upload")
	}

	key := ObjectKey(s.now(), sub.Artifact.Name)
	contentType := sub.Artifact.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	if err := s.objects.Upload(ctx, key, sub.Artifact.Data, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	record := models.UploadRecord{
		UserID:     nil,
		ArtistName: sub.ArtistName,
		Latitude:   sub.Position.Latitude,
		Longitude:  sub.Position.Longitude,
		Image:      s.objects.PublicURL(key),
	}
	if err := s.records.InsertRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to insert record for %s: %w", key, err)
	}

	return &record, nil
}
