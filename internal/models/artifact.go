package models

import "time"

// Artifact is a compressed still image produced by a capture.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
	Width       int
	Height      int
	CapturedAt  time.Time
}

// Size returns the encoded size in bytes.
func (a *Artifact) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}
