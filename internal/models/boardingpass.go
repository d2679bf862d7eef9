package models

// BoardingPass is the synthesized boarding record for one passenger.
// The ID mirrors the passenger ID. The QR code is an opaque token, not a
// real aztec/pdf417 encoding.
type BoardingPass struct {
	ID           int    `json:"id"`
	QRCode       string `json:"qrCode"`
	Gate         string `json:"gate"`
	BoardingTime string `json:"boardingTime"` // HH:MM
	EmailSent    bool   `json:"emailSent"`
}

// BoardingPassSet is the whole-record pass state for one group, keyed by
// passenger ID. Regeneration overwrites the entire set.
type BoardingPassSet struct {
	GroupID     string               `json:"groupId"`
	ByPassenger map[int]BoardingPass `json:"byPassenger"`
}
