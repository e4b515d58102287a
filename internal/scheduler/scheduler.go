// Package scheduler runs the batch certificate generation pass over completed
// events. One long-lived Scheduler instance is shared between the cron
// schedule and the manual trigger endpoint; its run guard ensures batches
// never overlap.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	certificatemodel "github.com/campusflow/cert-api/api/model/certificateModel"
	eventmodel "github.com/campusflow/cert-api/api/model/eventModel"
	"github.com/campusflow/cert-api/internal/generator"
	"github.com/campusflow/cert-api/internal/renderer"
	"github.com/campusflow/cert-api/type/payload"
	"github.com/campusflow/cert-api/type/shared/model"
	"github.com/google/uuid"
)

// ErrBatchRunning is returned when a trigger arrives while a batch is in
// progress. The trigger is dropped, not queued.
var ErrBatchRunning = errors.New("certificate batch already running")

const defaultRenderTimeout = 30 * time.Second

// Notifier delivers issuance notifications. Mail delivery lives outside this
// subsystem; a failed notification never fails issuance.
type Notifier interface {
	Notify(recipient string, subject string, body string) error
}

// Scheduler owns the single run state for batch generation.
type Scheduler struct {
	mu        sync.Mutex
	isRunning bool

	events eventmodel.IEventRepository
	certs  certificatemodel.ICertificateRepository
	engine generator.ICertificateGenerator

	notifier      Notifier
	frontendBase  string
	renderTimeout time.Duration

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewScheduler(events eventmodel.IEventRepository, certs certificatemodel.ICertificateRepository, engine generator.ICertificateGenerator, notifier Notifier, frontendBase string) *Scheduler {
	return &Scheduler{
		events:        events,
		certs:         certs,
		engine:        engine,
		notifier:      notifier,
		frontendBase:  frontendBase,
		renderTimeout: defaultRenderTimeout,
		now:           time.Now,
	}
}

// RunBatch scans completed events and issues certificates for every eligible
// participant. Per-participant failures are logged and counted as skipped;
// only repository-level failures abort the run.
func (s *Scheduler) RunBatch(ctx context.Context) (*payload.BatchSummary, error) {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		slog.Warn("Certificate batch trigger ignored, batch already running")
		return nil, ErrBatchRunning
	}
	s.isRunning = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	cutoff := s.todayUTC()
	startedAt := s.now()
	slog.Info("Certificate batch starting", "cutoff", cutoff)

	events, err := s.events.ListCompleted(cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed events: %w", err)
	}

	summary := &payload.BatchSummary{}

	for _, event := range events {
		if err := ctx.Err(); err != nil {
			slog.Warn("Certificate batch cancelled", "error", err, "generated", summary.Generated, "skipped", summary.Skipped)
			return summary, err
		}

		for i := range event.Participants {
			s.processParticipant(ctx, event, &event.Participants[i], summary)
		}
	}

	slog.Info("Certificate batch completed",
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"events", len(events),
		"duration", s.now().Sub(startedAt))

	return summary, nil
}

func (s *Scheduler) processParticipant(ctx context.Context, event *model.Event, participant *model.EventParticipant, summary *payload.BatchSummary) {
	if participant.User == nil {
		slog.Warn("Batch skip: participant has no resolvable user",
			"event_id", event.ID,
			"participant_id", participant.ID)
		summary.Skipped++
		return
	}
	user := participant.User

	if participant.Status == model.ParticipantStatusNoShow {
		slog.Debug("Batch skip: participant was a no-show", "event_id", event.ID, "user_id", user.ID)
		summary.Skipped++
		return
	}

	existing, err := s.certs.GetByUserAndEvent(user.ID, event.ID)
	if err != nil {
		slog.Error("Batch skip: certificate lookup failed", "error", err, "event_id", event.ID, "user_id", user.ID)
		summary.Skipped++
		return
	}
	if existing != nil {
		summary.Skipped++
		return
	}

	certificateID := uuid.New().String()

	renderCtx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	result, err := s.engine.Generate(renderCtx, user, event, certificateID)
	cancel()

	if err != nil {
		slog.Error("Batch skip: certificate generation failed",
			"error", err,
			"event_id", event.ID,
			"user_id", user.ID)
		summary.Skipped++
		return
	}

	cert := &model.Certificate{
		CertificateID: certificateID,
		UserID:        user.ID,
		EventID:       event.ID,
		FilePath:      result.FilePath,
		Title:         model.CertificateTitle(event.Title),
		Status:        model.CertificateStatusIssued,
		IssuedAt:      s.now(),
	}

	if err := s.certs.Create(cert); err != nil {
		if errors.Is(err, certificatemodel.ErrAlreadyIssued) {
			// A concurrent repair request persisted first; the pair is issued
			// either way.
			summary.Skipped++
			return
		}
		slog.Error("Batch skip: certificate record persist failed",
			"error", err,
			"event_id", event.ID,
			"user_id", user.ID)
		summary.Skipped++
		return
	}

	summary.Generated++
	s.notifyIssued(user, event)
}

func (s *Scheduler) notifyIssued(user *model.User, event *model.Event) {
	if s.notifier == nil || user.Email == "" {
		return
	}

	verifyURL := renderer.VerificationURL(s.frontendBase, user.ID, event.ID)
	subject := fmt.Sprintf("Your certificate for %s", event.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your certificate of participation for <b>%s</b> has been issued.</p>
		<p>You can verify it at any time: <a href="%s">%s</a></p>
	`, user.Name, event.Title, verifyURL, verifyURL)

	if err := s.notifier.Notify(user.Email, subject, body); err != nil {
		slog.Warn("Issuance notification failed",
			"error", err,
			"user_id", user.ID,
			"event_id", event.ID)
	}
}

// todayUTC truncates the current time to midnight UTC. Events dated before
// this instant count as completed.
func (s *Scheduler) todayUTC() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
