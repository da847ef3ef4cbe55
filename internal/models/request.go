package models

type ArtistRequest struct {
	ArtistName string `json:"artist_name"`
}

// LocationRequest carries a browser geolocation result. Pointers keep a
// zero coordinate distinguishable from a missing one.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

type LocationErrorRequest struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
