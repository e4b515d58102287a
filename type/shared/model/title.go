package model

import "fmt"

// CertificateTitle derives the stored certificate title from the event title.
func CertificateTitle(eventTitle string) string {
	return fmt.Sprintf("%s - Certificate of Participation", eventTitle)
}
