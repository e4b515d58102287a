package eventmodel

import (
	"errors"
	"log/slog"
	"time"

	"github.com/campusflow/cert-api/type/shared/model"
	"gorm.io/gorm"
)

// EventRepository reads event data owned by the event subsystem. Nothing in
// the certificate engine writes through it.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetById(eventId string) (*model.Event, error) {
	event := new(model.Event)
	queryErr := r.db.
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_participants.position ASC")
		}).
		Preload("Participants.User").
		Where("id = ?", eventId).
		First(event).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Event GetById", "error", queryErr, "event_id", eventId)
		return nil, queryErr
	}

	return event, nil
}

// ListCompleted returns non-cancelled events whose date precedes the cutoff,
// with participants in registration order.
func (r *EventRepository) ListCompleted(cutoff time.Time) ([]*model.Event, error) {
	var events []*model.Event
	queryErr := r.db.
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_participants.position ASC")
		}).
		Preload("Participants.User").
		Where("date < ? AND status <> ?", cutoff, model.EventStatusCancelled).
		Order("date ASC").
		Find(&events).Error

	if queryErr != nil {
		slog.Error("Event ListCompleted", "error", queryErr, "cutoff", cutoff)
		return nil, queryErr
	}

	return events, nil
}
