// Package qr wraps QR image generation for book labels.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256 // pixels, square

// BookPayload is the string encoded into a book's QR label.
func BookPayload(bookID int64) string {
	return fmt.Sprintf("BOOK-%d", bookID)
}

// EncodePNG renders the payload as a PNG image.
func EncodePNG(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, imageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

// EncodeDataURL renders the payload as a data URL, ready to drop into
// an <img> tag by the view layer.
func EncodeDataURL(payload string) (string, error) {
	png, err := EncodePNG(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
