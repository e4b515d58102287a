// Package store maps certificate records to files in the certificate
// directory. The file naming convention changed during the platform's life:
// current files are named <eventId>_<userId>.pdf, older ones
// certificate_<certificateId>.pdf. Both stay resolvable indefinitely.
package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/campusflow/cert-api/type/shared/model"
)

// namingScheme is one file naming convention. Conventions are tried in
// declaration order; adding a third scheme means appending one entry.
type namingScheme struct {
	name     string
	fileName func(cert *model.Certificate) string
}

var schemes = []namingScheme{
	{
		name: "pair",
		fileName: func(cert *model.Certificate) string {
			return fmt.Sprintf("%s_%s.pdf", cert.EventID, cert.UserID)
		},
	},
	{
		name: "legacy",
		fileName: func(cert *model.Certificate) string {
			return fmt.Sprintf("certificate_%s.pdf", cert.CertificateID)
		},
	},
}

// CertificateStore persists rendered certificates in a dedicated directory.
type CertificateStore struct {
	dir string
}

func NewCertificateStore(dir string) (*CertificateStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create certificate directory %s: %w", dir, err)
	}
	return &CertificateStore{dir: dir}, nil
}

// FileName returns the current-convention file name for a certificate.
func (s *CertificateStore) FileName(cert *model.Certificate) string {
	return schemes[0].fileName(cert)
}

// Resolve maps a certificate record to its file. It first scans the directory
// for any file whose name contains the certificate id, then walks the known
// naming schemes. When nothing exists on disk it returns the current-convention
// path with exists=false; callers treat that as "needs generation", not as an
// error.
func (s *CertificateStore) Resolve(cert *model.Certificate) (string, bool) {
	if entries, err := os.ReadDir(s.dir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if cert.CertificateID != "" && strings.Contains(entry.Name(), cert.CertificateID) {
				return filepath.Join(s.dir, entry.Name()), true
			}
		}
	}

	for _, scheme := range schemes {
		path := filepath.Join(s.dir, scheme.fileName(cert))
		if _, err := os.Stat(path); err == nil {
			slog.Debug("Certificate file resolved", "scheme", scheme.name, "path", path)
			return path, true
		}
	}

	return filepath.Join(s.dir, schemes[0].fileName(cert)), false
}

// Write persists rendered bytes under the current naming convention and
// returns the file path and name.
func (s *CertificateStore) Write(cert *model.Certificate, data []byte) (string, string, error) {
	fileName := s.FileName(cert)
	path := filepath.Join(s.dir, fileName)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write certificate file %s: %w", path, err)
	}

	return path, fileName, nil
}

// Delete removes the resolved file if present and reports whether a deletion
// occurred.
func (s *CertificateStore) Delete(cert *model.Certificate) (bool, error) {
	path, exists := s.Resolve(cert)
	if !exists {
		return false, nil
	}

	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("failed to delete certificate file %s: %w", path, err)
	}

	slog.Info("Certificate file deleted", "path", path)
	return true, nil
}
