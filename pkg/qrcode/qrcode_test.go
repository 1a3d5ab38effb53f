package qrcode

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestBookingPass(t *testing.T) {
	out, err := BookingPass(Payload{
		BookingCode: "A1B2C3D4E5",
		TripTitle:   "Sunset Sandbank Cruise",
		Tourist:     "Mia",
		Date:        "2026-09-12",
		People:      3,
		Amount:      450,
	})
	if err != nil {
		t.Fatalf("BookingPass: %v", err)
	}
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(out, prefix) {
		t.Fatalf("missing data URL prefix: %.40q", out)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	// PNG magic bytes
	if len(raw) < 8 || raw[1] != 'P' || raw[2] != 'N' || raw[3] != 'G' {
		t.Errorf("decoded artifact is not a PNG")
	}
}
