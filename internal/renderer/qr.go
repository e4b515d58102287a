package renderer

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// qrPixelSize is the edge length of the generated QR image. 256px scans
// reliably when printed at the certificate's QR footprint.
const qrPixelSize = 256

// EncodeQR produces a PNG image encoding the verification URL that gets
// embedded into the certificate page.
func EncodeQR(verificationURL string) ([]byte, error) {
	png, err := qrcode.Encode(verificationURL, qrcode.Medium, qrPixelSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// VerificationURL builds the public link encoded into the QR payload. The
// frontend resolves it against the verification endpoint.
func VerificationURL(frontendBase string, userId string, eventId string) string {
	return fmt.Sprintf("%s/certificates/verify/%s/%s", frontendBase, userId, eventId)
}
