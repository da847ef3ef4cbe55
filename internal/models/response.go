package models

import "time"

type HealthResponse struct {
	Status string `json:"status"`
	Camera string `json:"camera"`
}

type CaptureResponse struct {
	Filename   string    `json:"filename"`
	Size       int       `json:"size"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	CapturedAt time.Time `json:"captured_at"`
}

type SubmitResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Record  *UploadRecord `json:"record,omitempty"`
}

type AlertResponse struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type AlertsResponse struct {
	Alerts []AlertResponse `json:"alerts"`
}
