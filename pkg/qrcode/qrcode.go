package qrcode

import (
	"encoding/base64"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// EncodePNG renders a scan token as a PNG image of the given pixel size.
func EncodePNG(token string, size int) ([]byte, error) {
	png, err := qr.Encode(token, qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}

// EncodeDataURL renders a scan token as a base64 PNG data URL for
// embedding directly in ID-card payloads.
func EncodeDataURL(token string, size int) (string, error) {
	png, err := EncodePNG(token, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
