package remote_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"events-portal/internal/event/repository"
	"events-portal/internal/event/repository/remote"
)

const testBaseURL = "http://events.test"

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type repoEnv struct {
	transport *httpmock.MockTransport
	metrics   *remote.Metrics
	repo      repository.EventRepository
}

func newRepoEnv() repoEnv {
	transport := httpmock.NewMockTransport()
	metrics := remote.NewMetrics(prometheus.NewRegistry())
	client := remote.NewClient(testBaseURL, &http.Client{Transport: transport}, metrics)
	return repoEnv{
		transport: transport,
		metrics:   metrics,
		repo:      remote.New(client, &mockLogger{}),
	}
}

func TestRemoteRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("GetEvent Passes Field Through", func(t *testing.T) {
		env := newRepoEnv()
		env.transport.RegisterResponder(http.MethodGet, testBaseURL+"/events/42",
			httpmock.NewStringResponder(http.StatusOK, `{"event":{"id":"42","title":"Meetup","date":"2026-10-19"},"meta":1}`))

		ev, err := env.repo.GetEvent(ctx, "42")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"42","title":"Meetup","date":"2026-10-19"}`, string(ev))
		assert.Equal(t, 1, env.transport.GetCallCountInfo()["GET "+testBaseURL+"/events/42"])
	})

	t.Run("ListEvents Passes Field Through", func(t *testing.T) {
		env := newRepoEnv()
		env.transport.RegisterResponder(http.MethodGet, testBaseURL+"/events",
			httpmock.NewStringResponder(http.StatusOK, `{"events":[{"id":"1"},{"id":"2"},{"id":"3"}]}`))

		evs, err := env.repo.ListEvents(ctx)
		require.NoError(t, err)
		require.Len(t, evs, 3)
		assert.JSONEq(t, `{"id":"3"}`, string(evs[2]))
	})

	t.Run("Single Attempt On Failure", func(t *testing.T) {
		env := newRepoEnv()
		env.transport.RegisterResponder(http.MethodGet, testBaseURL+"/events",
			httpmock.NewStringResponder(http.StatusServiceUnavailable, `down`))

		_, err := env.repo.ListEvents(ctx)
		var statusErr *remote.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
		assert.Equal(t, "down", statusErr.Body)
		assert.Equal(t, 1, env.transport.GetTotalCallCount())
	})

	t.Run("MutateEvent Sends Method And Bearer", func(t *testing.T) {
		env := newRepoEnv()
		var gotAuth string
		env.transport.RegisterResponder(http.MethodDelete, testBaseURL+"/events/42",
			func(req *http.Request) (*http.Response, error) {
				gotAuth = req.Header.Get("Authorization")
				return httpmock.NewStringResponse(http.StatusOK, `{"message":"Event deleted."}`), nil
			})

		err := env.repo.MutateEvent(ctx, repository.MutateEventOptions{ID: "42", Method: http.MethodDelete, Token: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer secret", gotAuth)
	})

	t.Run("MutateEvent Empty Token Still Sent", func(t *testing.T) {
		env := newRepoEnv()
		var gotAuth string
		env.transport.RegisterResponder(http.MethodPatch, testBaseURL+"/events/7",
			func(req *http.Request) (*http.Response, error) {
				gotAuth = req.Header.Get("Authorization")
				return httpmock.NewStringResponse(http.StatusOK, ``), nil
			})

		err := env.repo.MutateEvent(ctx, repository.MutateEventOptions{ID: "7", Method: http.MethodPatch})
		require.NoError(t, err)
		assert.Equal(t, "Bearer ", gotAuth)
	})

	t.Run("Transport Error", func(t *testing.T) {
		env := newRepoEnv()
		env.transport.RegisterResponder(http.MethodGet, testBaseURL+"/events/1",
			httpmock.NewErrorResponder(errors.New("connection reset")))

		_, err := env.repo.GetEvent(ctx, "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestRemoteMetrics(t *testing.T) {
	ctx := context.Background()
	env := newRepoEnv()
	reg := prometheus.NewRegistry()
	metrics := remote.NewMetrics(reg)
	client := remote.NewClient(testBaseURL, &http.Client{Transport: env.transport}, metrics)

	env.transport.RegisterResponder(http.MethodGet, testBaseURL+"/events",
		httpmock.NewStringResponder(http.StatusOK, `{"events":[]}`))
	env.transport.RegisterResponder(http.MethodGet, testBaseURL+"/events/bad",
		httpmock.NewStringResponder(http.StatusOK, `not json`))
	env.transport.RegisterResponder(http.MethodDelete, testBaseURL+"/events/1",
		httpmock.NewStringResponder(http.StatusInternalServerError, ``))

	_, err := client.ListEvents(ctx)
	require.NoError(t, err)
	_, err = client.GetEvent(ctx, "bad")
	require.ErrorIs(t, err, repository.ErrMalformedBody)
	err = client.MutateEvent(ctx, http.MethodDelete, "1", "t")
	require.Error(t, err)

	count, err := testutil.GatherAndCount(reg, "events_upstream_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	expected := `
# HELP events_upstream_requests_total Requests sent to the events API, by operation and outcome.
# TYPE events_upstream_requests_total counter
events_upstream_requests_total{operation="get_event",outcome="decode_error"} 1
events_upstream_requests_total{operation="list_events",outcome="success"} 1
events_upstream_requests_total{operation="mutate_event",outcome="status_error"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "events_upstream_requests_total"))
}
