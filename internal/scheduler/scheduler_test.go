package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	certificatemodel "github.com/campusflow/cert-api/api/model/certificateModel"
	eventmodel "github.com/campusflow/cert-api/api/model/eventModel"
	"github.com/campusflow/cert-api/internal/generator"
	"github.com/campusflow/cert-api/type/shared/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inMemoryCerts backs the mock repository with a map so consecutive batch
// runs observe earlier issuances.
func inMemoryCerts() (*certificatemodel.MockCertificateRepository, map[string]*model.Certificate) {
	issued := make(map[string]*model.Certificate)
	key := func(userId, eventId string) string { return userId + "|" + eventId }

	mock := certificatemodel.NewMockCertificateRepository()
	mock.GetByUserAndEventFunc = func(userId string, eventId string) (*model.Certificate, error) {
		return issued[key(userId, eventId)], nil
	}
	mock.CreateFunc = func(cert *model.Certificate) error {
		k := key(cert.UserID, cert.EventID)
		if _, exists := issued[k]; exists {
			return certificatemodel.ErrAlreadyIssued
		}
		issued[k] = cert
		return nil
	}

	return mock, issued
}

func completedEvent(participants ...model.EventParticipant) *model.Event {
	return &model.Event{
		ID:           "event-1",
		Title:        "Spring Science Fair",
		Location:     "Main Auditorium",
		Date:         time.Date(2025, time.August, 31, 9, 0, 0, 0, time.UTC),
		Status:       "approved",
		Participants: participants,
	}
}

func attendee(userId string, name string, position int) model.EventParticipant {
	return model.EventParticipant{
		ID:       "p-" + userId,
		EventID:  "event-1",
		UserID:   userId,
		Position: position,
		Status:   model.ParticipantStatusAttended,
		User:     &model.User{ID: userId, Name: name},
	}
}

func noShow(userId string, name string, position int) model.EventParticipant {
	p := attendee(userId, name, position)
	p.Status = model.ParticipantStatusNoShow
	return p
}

func newTestScheduler(events eventmodel.IEventRepository, certs certificatemodel.ICertificateRepository, engine generator.ICertificateGenerator) *Scheduler {
	s := NewScheduler(events, certs, engine, nil, "https://events.example.edu")
	// Day after the test event
	s.now = func() time.Time {
		return time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestRunBatch_Scenario(t *testing.T) {
	// Event with one attendee and one no-show: the first run issues exactly
	// one certificate, the second run issues none.
	events := eventmodel.NewMockEventRepository()
	events.ListCompletedFunc = func(cutoff time.Time) ([]*model.Event, error) {
		return []*model.Event{completedEvent(
			attendee("u1", "Student One", 0),
			noShow("u2", "Student Two", 1),
		)}, nil
	}

	certs, issued := inMemoryCerts()

	var generatedFor []string
	engine := generator.NewMockGenerator()
	engine.GenerateFunc = func(ctx context.Context, user *model.User, event *model.Event, certificateID string) (*generator.Result, error) {
		generatedFor = append(generatedFor, user.ID)
		return &generator.Result{
			FilePath:      "/certs/" + event.ID + "_" + user.ID + ".pdf",
			FileName:      event.ID + "_" + user.ID + ".pdf",
			CertificateID: certificateID,
		}, nil
	}

	s := newTestScheduler(events, certs, engine)

	summary, err := s.RunBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, []string{"u1"}, generatedFor, "only the attendee is generated for")

	cert := issued["u1|event-1"]
	require.NotNil(t, cert)
	assert.Equal(t, "Spring Science Fair - Certificate of Participation", cert.Title)
	assert.Equal(t, model.CertificateStatusIssued, cert.Status)

	// Second run: u1 pre-existing, u2 still excluded, nothing new generated
	summary, err = s.RunBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Generated)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, []string{"u1"}, generatedFor, "no further generation on the second run")
	assert.Nil(t, issued["u2|event-1"], "no-show never receives a certificate")
}

func TestRunBatch_SkipsParticipantWithoutUser(t *testing.T) {
	orphan := model.EventParticipant{
		ID: "p-ghost", EventID: "event-1", UserID: "ghost",
		Status: model.ParticipantStatusAttended,
	}

	events := eventmodel.NewMockEventRepository()
	events.ListCompletedFunc = func(cutoff time.Time) ([]*model.Event, error) {
		return []*model.Event{completedEvent(orphan, attendee("u1", "Student One", 1))}, nil
	}

	certs, issued := inMemoryCerts()

	s := newTestScheduler(events, certs, generator.NewMockGenerator())

	summary, err := s.RunBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Nil(t, issued["ghost|event-1"])
}

func TestRunBatch_GenerationFailureDoesNotAbortBatch(t *testing.T) {
	events := eventmodel.NewMockEventRepository()
	events.ListCompletedFunc = func(cutoff time.Time) ([]*model.Event, error) {
		return []*model.Event{completedEvent(
			attendee("u1", "Student One", 0),
			attendee("u2", "Student Two", 1),
		)}, nil
	}

	certs, issued := inMemoryCerts()

	engine := generator.NewMockGenerator()
	engine.GenerateFunc = func(ctx context.Context, user *model.User, event *model.Event, certificateID string) (*generator.Result, error) {
		if user.ID == "u1" {
			return nil, fmt.Errorf("font asset missing")
		}
		return &generator.Result{CertificateID: certificateID}, nil
	}

	s := newTestScheduler(events, certs, engine)

	summary, err := s.RunBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Nil(t, issued["u1|event-1"])
	assert.NotNil(t, issued["u2|event-1"])
}

func TestRunBatch_DuplicateInsertCountsAsSkipped(t *testing.T) {
	// A repair request wins the insert between the pre-check and the write;
	// the constraint violation is treated as "already issued".
	events := eventmodel.NewMockEventRepository()
	events.ListCompletedFunc = func(cutoff time.Time) ([]*model.Event, error) {
		return []*model.Event{completedEvent(attendee("u1", "Student One", 0))}, nil
	}

	certs := certificatemodel.NewMockCertificateRepository()
	certs.CreateFunc = func(cert *model.Certificate) error {
		return certificatemodel.ErrAlreadyIssued
	}

	s := newTestScheduler(events, certs, generator.NewMockGenerator())

	summary, err := s.RunBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Generated)
	assert.Equal(t, 1, summary.Skipped)
}

func TestRunBatch_CutoffIsMidnightUTC(t *testing.T) {
	var gotCutoff time.Time
	events := eventmodel.NewMockEventRepository()
	events.ListCompletedFunc = func(cutoff time.Time) ([]*model.Event, error) {
		gotCutoff = cutoff
		return nil, nil
	}

	certs, _ := inMemoryCerts()
	s := newTestScheduler(events, certs, generator.NewMockGenerator())

	_, err := s.RunBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), gotCutoff)
}

func TestRunBatch_ConcurrentTriggerIsNoOp(t *testing.T) {
	events := eventmodel.NewMockEventRepository()
	events.ListCompletedFunc = func(cutoff time.Time) ([]*model.Event, error) {
		return []*model.Event{completedEvent(attendee("u1", "Student One", 0))}, nil
	}

	certs, _ := inMemoryCerts()

	started := make(chan struct{})
	release := make(chan struct{})
	engine := generator.NewMockGenerator()
	engine.GenerateFunc = func(ctx context.Context, user *model.User, event *model.Event, certificateID string) (*generator.Result, error) {
		close(started)
		<-release
		return &generator.Result{CertificateID: certificateID}, nil
	}

	s := newTestScheduler(events, certs, engine)

	done := make(chan error, 1)
	go func() {
		_, err := s.RunBatch(context.Background())
		done <- err
	}()

	<-started
	_, err := s.RunBatch(context.Background())
	assert.ErrorIs(t, err, ErrBatchRunning)

	close(release)
	require.NoError(t, <-done)

	// Guard released after completion: a new run is accepted again
	_, err = s.RunBatch(context.Background())
	assert.NoError(t, err)
}

func TestRunBatch_RepositoryFailureAborts(t *testing.T) {
	events := eventmodel.NewMockEventRepository()
	events.ListCompletedFunc = func(cutoff time.Time) ([]*model.Event, error) {
		return nil, errors.New("database connection error")
	}

	certs, _ := inMemoryCerts()
	s := newTestScheduler(events, certs, generator.NewMockGenerator())

	_, err := s.RunBatch(context.Background())
	assert.Error(t, err)
}
