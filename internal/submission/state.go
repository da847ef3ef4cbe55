// Package submission holds the capture form state and the submit sequence.
package submission

import (
	"fmt"

	"streetart-capture/internal/models"
)

const (
	LabelSubmit    = "Upload Art"
	LabelUploading = "Uploading..."
)

// State is the form state of one session.
type State struct {
	ArtistName     string
	Location       *models.GeoPosition
	LocationFailed bool
	Artifact       *models.Artifact
	Uploading      bool
}

// IsReady reports whether submit is allowed.
func IsReady(s State) bool {
	return s.Artifact != nil && s.Location != nil && !s.Uploading
}

// View is the rendered form.
type View struct {
	ArtistName    string        `json:"artist_name"`
	Location      *LocationView `json:"location,omitempty"`
	Artifact      *ArtifactView `json:"artifact,omitempty"`
	Uploading     bool          `json:"uploading"`
	SubmitEnabled bool          `json:"submit_enabled"`
	SubmitLabel   string        `json:"submit_label"`
}

type LocationView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Text      string  `json:"text"`
}

type ArtifactView struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Render describes what the form shows for s.
func Render(s State) View {
	v := View{
		ArtistName:    s.ArtistName,
		Uploading:     s.Uploading,
		SubmitEnabled: IsReady(s),
		SubmitLabel:   LabelSubmit,
	}
	if s.Uploading {
		v.SubmitLabel = LabelUploading
	}
	if s.Location != nil {
		v.Location = &LocationView{
			Latitude:  s.Location.Latitude,
			Longitude: s.Location.Longitude,
			Text:      fmt.Sprintf("📍 Location detected: %.6f, %.6f", s.Location.Latitude, s.Location.Longitude),
		}
	}
	if s.Artifact != nil {
		v.Artifact = &ArtifactView{
			Filename: s.Artifact.Name,
			Size:     s.Artifact.Size(),
			Width:    s.Artifact.Width,
			Height:   s.Artifact.Height,
		}
	}
	return v
}
