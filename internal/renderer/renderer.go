// Package renderer draws participation certificates as single-page A4
// landscape PDFs with an embedded verification QR code.
package renderer

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 20.0

	// Body lines cascade: the gap below each line is spacingUnit times an
	// increasing multiplier, so blocks spread slightly toward the bottom.
	spacingUnit = 4.0
)

// CertificateData carries everything drawn onto one certificate page.
type CertificateData struct {
	StudentName string
	EventTitle  string
	EventDate   time.Time
	// QRPNG is the pre-encoded verification QR image.
	QRPNG []byte
}

// CertificateRenderer renders certificate pages. The watermark is optional;
// a missing watermark file is skipped, never an error.
type CertificateRenderer struct {
	watermarkPath string
}

func NewCertificateRenderer(watermarkPath string) *CertificateRenderer {
	return &CertificateRenderer{watermarkPath: watermarkPath}
}

// Render draws one certificate and returns the PDF bytes.
func (r *CertificateRenderer) Render(data CertificateData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape orientation for certificates
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	printableWidth := pageWidth - 2*pageMargin
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r.drawWatermark(pdf, pageWidth, pageHeight)

	// Top horizontal rule
	pdf.SetDrawColor(130, 130, 130)
	pdf.SetLineWidth(0.6)
	pdf.Line(pageMargin, 28, pageWidth-pageMargin, 28)

	// Title
	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Times", "B", 34)
	pdf.SetXY(pageMargin, 38)
	pdf.CellFormat(printableWidth, 14, "Certificate of Participation", "", 0, "C", false, 0, "")

	// Stacked body, centered within the printable width
	y := 66.0
	multiplier := 1.0
	writeLine := func(text string, style string, size float64, height float64) {
		pdf.SetFont("Times", style, size)
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(printableWidth, height, tr(text), "", 0, "C", false, 0, "")
		y += height + spacingUnit*multiplier
		multiplier++
	}

	pdf.SetTextColor(50, 50, 50)
	writeLine("This is to certify that", "", 14, 7)

	pdf.SetTextColor(20, 20, 20)
	writeLine(data.StudentName, "BU", 26, 12)

	pdf.SetTextColor(50, 50, 50)
	writeLine("has successfully participated in", "", 14, 7)

	pdf.SetTextColor(20, 20, 20)
	writeLine(data.EventTitle, "B", 20, 10)

	pdf.SetTextColor(105, 105, 105)
	writeLine(fmt.Sprintf("Completed on: %s", data.EventDate.Format("January 2, 2006")), "I", 13, 7)

	r.drawSignatureLines(pdf, pageWidth)
	r.drawQR(pdf, data.QRPNG, pageWidth, pageHeight)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// drawWatermark places the faint full-bleed background image when the asset
// exists. Absence of the asset is part of the contract, not a failure.
func (r *CertificateRenderer) drawWatermark(pdf *gofpdf.Fpdf, pageWidth float64, pageHeight float64) {
	if r.watermarkPath == "" {
		return
	}

	if _, err := os.Stat(r.watermarkPath); err != nil {
		slog.Debug("Watermark asset not found, rendering without it", "path", r.watermarkPath)
		return
	}

	pdf.SetAlpha(0.08, "Normal")
	pdf.ImageOptions(r.watermarkPath, 0, 0, pageWidth, pageHeight, false, gofpdf.ImageOptions{}, 0, "")
	pdf.SetAlpha(1.0, "Normal")
}

func (r *CertificateRenderer) drawSignatureLines(pdf *gofpdf.Fpdf, pageWidth float64) {
	const (
		lineY     = 172.0
		lineWidth = 62.0
	)

	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.4)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Times", "", 12)

	// Left: Coordinator
	leftX := pageMargin + 18
	pdf.Line(leftX, lineY, leftX+lineWidth, lineY)
	pdf.SetXY(leftX, lineY+2)
	pdf.CellFormat(lineWidth, 6, "Coordinator", "", 0, "C", false, 0, "")

	// Right: Head of Department
	rightX := pageWidth - pageMargin - 18 - lineWidth
	pdf.Line(rightX, lineY, rightX+lineWidth, lineY)
	pdf.SetXY(rightX, lineY+2)
	pdf.CellFormat(lineWidth, 6, "Head of Department", "", 0, "C", false, 0, "")
}

func (r *CertificateRenderer) drawQR(pdf *gofpdf.Fpdf, qrPNG []byte, pageWidth float64, pageHeight float64) {
	if len(qrPNG) == 0 {
		return
	}

	const qrSize = 20.0

	pdf.RegisterImageOptionsReader("verify-qr", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("verify-qr", (pageWidth-qrSize)/2, pageHeight-qrSize-6, qrSize, qrSize, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}
