package model

import "time"

// Certificate statuses
const (
	CertificateStatusPending = "pending"
	CertificateStatusIssued  = "issued"
	CertificateStatusExpired = "expired"
)

// Event statuses relevant to certificate generation
const (
	EventStatusCancelled = "cancelled"
)

// Participant statuses
const (
	ParticipantStatusRegistered = "registered"
	ParticipantStatusAttended   = "attended"
	ParticipantStatusNoShow     = "no-show"
)

// Certificate is the issuance record for one (user, event) pair. The
// composite unique index backs the at-most-one-certificate invariant so a
// concurrent batch and repair request cannot both insert.
type Certificate struct {
	ID            string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CertificateID string    `gorm:"size:64;not null;uniqueIndex" json:"certificate_id"`
	UserID        string    `gorm:"size:64;not null;uniqueIndex:idx_certificates_user_event" json:"user_id"`
	EventID       string    `gorm:"size:64;not null;uniqueIndex:idx_certificates_user_event" json:"event_id"`
	FilePath      string    `gorm:"type:text" json:"-"`
	Title         string    `gorm:"type:text;not null" json:"title"`
	Status        string    `gorm:"size:20;not null;default:'issued'" json:"status"`
	IssuedAt      time.Time `gorm:"not null" json:"issued_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

// Event is owned by the event subsystem; this service only reads it.
type Event struct {
	ID       string    `gorm:"size:64;primary_key" json:"id"`
	Title    string    `gorm:"type:text;not null" json:"title"`
	Location string    `gorm:"type:text" json:"location"`
	Date     time.Time `gorm:"not null" json:"date"`
	Status   string    `gorm:"size:20;not null" json:"status"`

	Participants []EventParticipant `gorm:"foreignKey:EventID" json:"participants,omitempty"`
}

// EventParticipant keeps the registration order through Position.
type EventParticipant struct {
	ID       string `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID  string `gorm:"size:64;not null;index" json:"event_id"`
	UserID   string `gorm:"size:64;not null" json:"user_id"`
	Position int    `gorm:"not null;default:0" json:"position"`
	Status   string `gorm:"size:20;not null;default:'registered'" json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// User is owned by the account subsystem; this service only reads it.
type User struct {
	ID    string `gorm:"size:64;primary_key" json:"id"`
	Name  string `gorm:"type:text;not null" json:"name"`
	Email string `gorm:"type:text" json:"email"`
}
