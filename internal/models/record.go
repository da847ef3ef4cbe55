package models

// UploadRecord is the row written to the user_added_art table.
// UserID is always nil: submissions are anonymous.
type UploadRecord struct {
	UserID     *string `json:"user_id"`
	ArtistName string  `json:"artist_name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Image      string  `json:"image"`
}

// Submission is the snapshot of form state handed to the publisher.
type Submission struct {
	Artifact   *Artifact
	Position   GeoPosition
	ArtistName string
}
