package payload

import "time"

// VerifiedCertificate is the public metadata returned by the verification
// endpoint. File paths deliberately never appear here.
type VerifiedCertificate struct {
	CertificateID string    `json:"certificateId"`
	Title         string    `json:"title"`
	StudentName   string    `json:"studentName"`
	StudentEmail  string    `json:"studentEmail"`
	EventTitle    string    `json:"eventTitle"`
	EventDate     time.Time `json:"eventDate"`
	EventLocation string    `json:"eventLocation"`
	IssuedAt      time.Time `json:"issuedAt"`
}

// VerifyCertificateResult is the fixed response shape of the public verify
// endpoint. Any non-match collapses to {valid:false, message} so the endpoint
// does not reveal whether a given user/event pair exists.
type VerifyCertificateResult struct {
	Valid       bool                 `json:"valid"`
	Message     string               `json:"message,omitempty"`
	Certificate *VerifiedCertificate `json:"certificate,omitempty"`
}

// BatchSummary reports one batch run.
type BatchSummary struct {
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
}
