package generator_test

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/campusflow/cert-api/internal/generator"
	"github.com/campusflow/cert-api/internal/renderer"
	"github.com/campusflow/cert-api/internal/store"
	"github.com/campusflow/cert-api/type/shared/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *generator.Engine {
	t.Helper()

	certStore, err := store.NewCertificateStore(t.TempDir())
	require.NoError(t, err)

	rend := renderer.NewCertificateRenderer("")
	return generator.NewEngine(rend, nil, certStore, "https://events.example.edu")
}

func testUserAndEvent() (*model.User, *model.Event) {
	user := &model.User{ID: "user-1", Name: "Amara Osei", Email: "amara@example.edu"}
	event := &model.Event{
		ID:     "event-1",
		Title:  "Campus Hackathon",
		Date:   time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC),
		Status: "approved",
	}
	return user, event
}

func TestEngine_Generate(t *testing.T) {
	engine := newTestEngine(t)
	user, event := testUserAndEvent()

	result, err := engine.Generate(context.Background(), user, event, "cert-1")
	require.NoError(t, err)

	assert.Equal(t, "cert-1", result.CertificateID)
	assert.Equal(t, "event-1_user-1.pdf", result.FileName)

	data, readErr := os.ReadFile(result.FilePath)
	require.NoError(t, readErr)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestEngine_GenerateSameIdOverwrites(t *testing.T) {
	// The repair path re-renders under the certificate id already on the
	// record; the second render lands on the same file.
	engine := newTestEngine(t)
	user, event := testUserAndEvent()

	first, err := engine.Generate(context.Background(), user, event, "cert-1")
	require.NoError(t, err)

	require.NoError(t, os.Remove(first.FilePath))

	second, err := engine.Generate(context.Background(), user, event, "cert-1")
	require.NoError(t, err)

	assert.Equal(t, first.FilePath, second.FilePath)
	assert.Equal(t, first.CertificateID, second.CertificateID)

	_, statErr := os.Stat(second.FilePath)
	assert.NoError(t, statErr)
}

func TestEngine_GenerateValidatesInput(t *testing.T) {
	engine := newTestEngine(t)
	user, event := testUserAndEvent()

	_, err := engine.Generate(context.Background(), nil, event, "cert-1")
	assert.Error(t, err)

	_, err = engine.Generate(context.Background(), user, nil, "cert-1")
	assert.Error(t, err)

	_, err = engine.Generate(context.Background(), user, event, "")
	assert.Error(t, err)
}

func TestEngine_GenerateHonorsCancelledContext(t *testing.T) {
	engine := newTestEngine(t)
	user, event := testUserAndEvent()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Generate(ctx, user, event, "cert-1")
	assert.ErrorIs(t, err, context.Canceled)
}
