// Package generator orchestrates the renderer, QR encoder and certificate
// store to produce one certificate file for one (user, event) pair.
package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campusflow/cert-api/common/util"
	"github.com/campusflow/cert-api/internal/renderer"
	"github.com/campusflow/cert-api/internal/store"
	"github.com/campusflow/cert-api/type/shared/model"
)

// Result describes one generated certificate file.
type Result struct {
	FilePath      string
	FileName      string
	CertificateID string
}

// Engine renders and stores certificate files. It never writes database
// records; callers persist the record after a successful render so a repair
// can re-run the same path under an existing certificate id.
type Engine struct {
	renderer     *renderer.CertificateRenderer
	signer       *renderer.CertificateSigner
	store        *store.CertificateStore
	frontendBase string
}

func NewEngine(rend *renderer.CertificateRenderer, signer *renderer.CertificateSigner, certStore *store.CertificateStore, frontendBase string) *Engine {
	return &Engine{
		renderer:     rend,
		signer:       signer,
		store:        certStore,
		frontendBase: frontendBase,
	}
}

// Generate produces the certificate file for (user, event) under the supplied
// certificate id. The id is caller-supplied so the repair path can regenerate
// a file without changing the record's identity.
func (e *Engine) Generate(ctx context.Context, user *model.User, event *model.Event, certificateID string) (*Result, error) {
	if user == nil || event == nil {
		return nil, fmt.Errorf("user and event are required")
	}
	if certificateID == "" {
		return nil, fmt.Errorf("certificate id is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	verifyURL := renderer.VerificationURL(e.frontendBase, user.ID, event.ID)

	qrPNG, err := renderer.EncodeQR(verifyURL)
	if err != nil {
		return nil, fmt.Errorf("failed to encode verification QR: %w", err)
	}

	pdfBytes, err := e.renderer.Render(renderer.CertificateData{
		StudentName: user.Name,
		EventTitle:  event.Title,
		EventDate:   event.Date,
		QRPNG:       qrPNG,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render certificate: %w", err)
	}

	if e.signer.IsEnabled() {
		signed, signErr := e.signer.SignPDF(pdfBytes, certificateID)
		if signErr != nil {
			slog.Warn("Certificate signing failed, storing unsigned document",
				"error", signErr,
				"certificate_id", certificateID)
		} else {
			pdfBytes = signed
		}
	}

	filePath, fileName, err := e.store.Write(&model.Certificate{
		CertificateID: certificateID,
		UserID:        user.ID,
		EventID:       event.ID,
	}, pdfBytes)
	if err != nil {
		return nil, err
	}

	if util.MirrorEnabled() {
		if mirrorErr := util.MirrorCertificate(ctx, fileName, pdfBytes); mirrorErr != nil {
			slog.Warn("Failed to mirror certificate to object storage",
				"error", mirrorErr,
				"file_name", fileName)
		}
	}

	slog.Info("Certificate generated",
		"certificate_id", certificateID,
		"user_id", user.ID,
		"event_id", event.ID,
		"file_path", filePath)

	return &Result{
		FilePath:      filePath,
		FileName:      fileName,
		CertificateID: certificateID,
	}, nil
}
