package qrcode

import (
	"encoding/base64"
	"encoding/json"

	qr "github.com/skip2/go-qrcode"
)

// Payload is what gets embedded in a booking pass. Providers scan it at
// the pier to verify the booking without a network round trip.
type Payload struct {
	BookingCode string  `json:"bookingCode"`
	TripTitle   string  `json:"tripTitle"`
	Tourist     string  `json:"tourist"`
	Date        string  `json:"date"`
	People      int     `json:"people"`
	Amount      float64 `json:"amount"`
}

const imageSize = 256

// BookingPass renders the payload as a QR PNG and returns it as a data
// URL ready for an <img> tag. The result is stored on the booking row
// verbatim.
func BookingPass(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	png, err := qr.Encode(string(data), qr.Medium, imageSize)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
