package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moimlab/schedsync/internal/schedule/domain"
	"github.com/moimlab/schedsync/pkg/observability"
)

type capturedRequest struct {
	method      string
	path        string
	owner       string
	correlation string
	body        []byte
}

func commandServer(t *testing.T, status int, respBody string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.owner = r.Header.Get("X-Owner-Id")
		captured.correlation = r.Header.Get("X-Correlation-Id")
		captured.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestCommandClientCreate(t *testing.T) {
	srv, captured := commandServer(t, http.StatusNoContent, "")
	client := NewCommandClient(srv.URL, 0, nil)
	owner := uuid.New()

	start, err := domain.ParseLocalDateTime("2025-10-01T09:00:00")
	require.NoError(t, err)
	end, err := domain.ParseLocalDateTime("2025-10-01T09:15:00")
	require.NoError(t, err)

	err = client.Create(context.Background(), owner, domain.CreateScheduleRequest{
		Title:   "Standup",
		StartAt: start,
		EndAt:   end,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/schedules/custom", captured.path)
	assert.Equal(t, owner.String(), captured.owner)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(captured.body, &sent))
	assert.Equal(t, "Standup", sent["title"])
	assert.Equal(t, "2025-10-01T09:00:00", sent["startAt"])
	assert.Equal(t, "2025-10-01T09:15:00", sent["endAt"])
	assert.NotContains(t, sent, "description")
}

func TestCommandClientUpdateUsesPatch(t *testing.T) {
	srv, captured := commandServer(t, http.StatusNoContent, "")
	client := NewCommandClient(srv.URL, 0, nil)

	start, _ := domain.ParseLocalDateTime("2025-10-01T09:00:00")
	end, _ := domain.ParseLocalDateTime("2025-10-01T10:00:00")
	id := uuid.New()

	err := client.Update(context.Background(), uuid.New(), domain.UpdateScheduleRequest{
		ScheduleID: id,
		Title:      "Standup (moved)",
		StartAt:    start,
		EndAt:      end,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, captured.method)
	assert.Equal(t, "/schedules/custom", captured.path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(captured.body, &sent))
	assert.Equal(t, id.String(), sent["scheduleId"])
}

func TestCommandClientDeleteCarriesBody(t *testing.T) {
	srv, captured := commandServer(t, http.StatusNoContent, "")
	client := NewCommandClient(srv.URL, 0, nil)
	id := uuid.New()

	err := client.Delete(context.Background(), uuid.New(), domain.DeleteScheduleRequest{ScheduleID: id})
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, captured.method)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(captured.body, &sent))
	assert.Equal(t, id.String(), sent["scheduleId"])
}

func TestCommandClientSurfacesStatusAndBody(t *testing.T) {
	srv, _ := commandServer(t, http.StatusConflict, "version conflict")
	client := NewCommandClient(srv.URL, 0, nil)

	err := client.Delete(context.Background(), uuid.New(), domain.DeleteScheduleRequest{ScheduleID: uuid.New()})
	require.Error(t, err)

	var terr *domain.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, domain.ServiceCommand, terr.Service)
	assert.Equal(t, http.StatusConflict, terr.Status)
	assert.Equal(t, "version conflict", terr.Body)
}

func TestCommandClientAcceptsEmptyOKBody(t *testing.T) {
	// Some deployments answer 200 with a zero-length body instead of 204;
	// both are success and neither is decoded.
	srv, _ := commandServer(t, http.StatusOK, "")
	client := NewCommandClient(srv.URL, 0, nil)

	err := client.Delete(context.Background(), uuid.New(), domain.DeleteScheduleRequest{ScheduleID: uuid.New()})
	assert.NoError(t, err)
}

func TestCommandClientPropagatesCorrelationID(t *testing.T) {
	srv, captured := commandServer(t, http.StatusNoContent, "")
	client := NewCommandClient(srv.URL, 0, nil)

	ctx := observability.WithCorrelationID(context.Background(), "corr-abc")
	err := client.Delete(ctx, uuid.New(), domain.DeleteScheduleRequest{ScheduleID: uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, "corr-abc", captured.correlation)
}

func TestCommandClientOmitsCorrelationHeaderWithoutID(t *testing.T) {
	srv, captured := commandServer(t, http.StatusNoContent, "")
	client := NewCommandClient(srv.URL, 0, nil)

	err := client.Delete(context.Background(), uuid.New(), domain.DeleteScheduleRequest{ScheduleID: uuid.New()})
	require.NoError(t, err)

	assert.Empty(t, captured.correlation)
}

func TestCommandClientPing(t *testing.T) {
	srv, _ := commandServer(t, http.StatusMethodNotAllowed, "")
	client := NewCommandClient(srv.URL, 0, nil)

	// Any HTTP response means the service is up, even an error status.
	assert.NoError(t, client.Ping(context.Background()))

	srv.Close()
	assert.Error(t, client.Ping(context.Background()))
}
