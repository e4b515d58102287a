package renderer_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/campusflow/cert-api/internal/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData(t *testing.T) renderer.CertificateData {
	t.Helper()

	qr, err := renderer.EncodeQR("https://events.example.edu/certificates/verify/user-1/event-1")
	require.NoError(t, err)

	return renderer.CertificateData{
		StudentName: "Jordan Mensah",
		EventTitle:  "Autumn Robotics Workshop",
		EventDate:   time.Date(2025, time.October, 12, 0, 0, 0, 0, time.UTC),
		QRPNG:       qr,
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	r := renderer.NewCertificateRenderer("")

	pdf, err := r.Render(testData(t))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(pdf), 1000, "rendered document should not be empty")
}

func TestRender_MissingWatermarkIsNotAnError(t *testing.T) {
	// The watermark asset is optional; a dangling path degrades gracefully.
	r := renderer.NewCertificateRenderer(filepath.Join(t.TempDir(), "no-such-watermark.png"))

	pdf, err := r.Render(testData(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestRender_WithoutQR(t *testing.T) {
	r := renderer.NewCertificateRenderer("")

	data := testData(t)
	data.QRPNG = nil

	pdf, err := r.Render(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestEncodeQR(t *testing.T) {
	png, err := renderer.EncodeQR("https://events.example.edu/certificates/verify/u/e")
	require.NoError(t, err)

	// PNG signature
	assert.True(t, bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}))
}

func TestVerificationURL(t *testing.T) {
	url := renderer.VerificationURL("https://events.example.edu", "user-7", "event-9")
	assert.Equal(t, "https://events.example.edu/certificates/verify/user-7/event-9", url)
}
