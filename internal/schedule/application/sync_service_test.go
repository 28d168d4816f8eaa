package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moimlab/schedsync/internal/schedule/domain"
	"github.com/moimlab/schedsync/pkg/observability"
)

type mockCommandPort struct {
	mock.Mock
}

func (m *mockCommandPort) Create(ctx context.Context, ownerID uuid.UUID, req domain.CreateScheduleRequest) error {
	args := m.Called(ctx, ownerID, req)
	return args.Error(0)
}

func (m *mockCommandPort) Update(ctx context.Context, ownerID uuid.UUID, req domain.UpdateScheduleRequest) error {
	args := m.Called(ctx, ownerID, req)
	return args.Error(0)
}

func (m *mockCommandPort) Delete(ctx context.Context, ownerID uuid.UUID, req domain.DeleteScheduleRequest) error {
	args := m.Called(ctx, ownerID, req)
	return args.Error(0)
}

type mockQueryPort struct {
	mock.Mock
}

func (m *mockQueryPort) GetByID(ctx context.Context, ownerID, scheduleID uuid.UUID) (*domain.Schedule, error) {
	args := m.Called(ctx, ownerID, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *mockQueryPort) GetByDay(ctx context.Context, ownerID uuid.UUID, day time.Time, q domain.ListQuery) (*domain.Page, error) {
	args := m.Called(ctx, ownerID, day, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

func (m *mockQueryPort) GetAll(ctx context.Context, ownerID uuid.UUID, q domain.ListQuery) (*domain.Page, error) {
	args := m.Called(ctx, ownerID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

func (m *mockQueryPort) GetByMonth(ctx context.Context, ownerID uuid.UUID, year int, month time.Month, q domain.ListQuery) (*domain.Page, error) {
	args := m.Called(ctx, ownerID, year, month, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

func validCreate(t *testing.T) domain.CreateScheduleRequest {
	t.Helper()
	start, err := domain.ParseLocalDateTime("2025-10-01T09:00:00")
	require.NoError(t, err)
	end, err := domain.ParseLocalDateTime("2025-10-01T09:15:00")
	require.NoError(t, err)
	return domain.CreateScheduleRequest{Title: "Standup", StartAt: start, EndAt: end}
}

func newService(commands domain.CommandPort, queries domain.QueryPort) *SyncService {
	return NewSyncService(commands, queries, uuid.New(), 10*time.Millisecond, nil)
}

func TestFetchScheduleSuccess(t *testing.T) {
	queries := new(mockQueryPort)
	svc := newService(new(mockCommandPort), queries)
	id := uuid.New()
	want := &domain.Schedule{ID: id, Title: "Standup"}

	queries.On("GetByID", mock.Anything, svc.OwnerID(), id).Return(want, nil)

	got := svc.FetchSchedule(context.Background(), id)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
	assert.NoError(t, svc.Err())
	assert.False(t, svc.Loading())
}

func TestFetchAllFailureReturnsNilSentinel(t *testing.T) {
	queries := new(mockQueryPort)
	svc := newService(new(mockCommandPort), queries)
	boom := &domain.TransportError{Service: domain.ServiceQuery, Status: 502, Body: "bad gateway"}

	queries.On("GetAll", mock.Anything, svc.OwnerID(), domain.ListQuery{}).Return(nil, boom)

	got := svc.FetchAll(context.Background(), domain.ListQuery{})
	assert.Nil(t, got)

	var terr *domain.TransportError
	require.ErrorAs(t, svc.Err(), &terr)
	assert.Equal(t, 502, terr.Status)
	assert.False(t, svc.Loading())
}

func TestErrorClearedWhenNextOperationStarts(t *testing.T) {
	queries := new(mockQueryPort)
	svc := newService(new(mockCommandPort), queries)

	queries.On("GetAll", mock.Anything, svc.OwnerID(), domain.ListQuery{}).
		Return(nil, errors.New("down")).Once()
	queries.On("GetAll", mock.Anything, svc.OwnerID(), domain.ListQuery{}).
		Return(&domain.Page{Last: true, Empty: true}, nil).Once()

	assert.Nil(t, svc.FetchAll(context.Background(), domain.ListQuery{}))
	require.Error(t, svc.Err())

	assert.NotNil(t, svc.FetchAll(context.Background(), domain.ListQuery{}))
	assert.NoError(t, svc.Err())
}

func TestLoadingTrueWhileInFlight(t *testing.T) {
	queries := new(mockQueryPort)
	svc := newService(new(mockCommandPort), queries)

	queries.On("GetAll", mock.Anything, svc.OwnerID(), domain.ListQuery{}).
		Run(func(mock.Arguments) {
			assert.True(t, svc.Loading())
		}).
		Return(&domain.Page{}, nil)

	svc.FetchAll(context.Background(), domain.ListQuery{})
	assert.False(t, svc.Loading())
}

func TestCreateSuccess(t *testing.T) {
	commands := new(mockCommandPort)
	svc := newService(commands, new(mockQueryPort))
	req := validCreate(t)

	commands.On("Create", mock.Anything, svc.OwnerID(), req).Return(nil)

	assert.True(t, svc.Create(context.Background(), req))
	assert.NoError(t, svc.Err())
}

func TestCreateValidationFailureSkipsTransport(t *testing.T) {
	commands := new(mockCommandPort)
	svc := newService(commands, new(mockQueryPort))

	req := validCreate(t)
	req.Title = ""

	assert.False(t, svc.Create(context.Background(), req))

	var verr *domain.ValidationError
	require.ErrorAs(t, svc.Err(), &verr)
	assert.Equal(t, "title", verr.Field)
	commands.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSurfacesNotFound(t *testing.T) {
	commands := new(mockCommandPort)
	svc := newService(commands, new(mockQueryPort))

	req := domain.UpdateScheduleRequest{
		ScheduleID: uuid.New(),
		Title:      "Standup",
		StartAt:    validCreate(t).StartAt,
		EndAt:      validCreate(t).EndAt,
	}
	commands.On("Update", mock.Anything, svc.OwnerID(), req).
		Return(fmt.Errorf("schedule %s: %w", req.ScheduleID, domain.ErrNotFound))

	assert.False(t, svc.Update(context.Background(), req))
	assert.ErrorIs(t, svc.Err(), domain.ErrNotFound)
}

func TestDeleteValidationFailure(t *testing.T) {
	commands := new(mockCommandPort)
	svc := newService(commands, new(mockQueryPort))

	assert.False(t, svc.Delete(context.Background(), domain.DeleteScheduleRequest{}))
	commands.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduleRefreshFiresAfterDelay(t *testing.T) {
	svc := newService(new(mockCommandPort), new(mockQueryPort))
	defer svc.Close()

	fired := make(chan struct{})
	svc.ScheduleRefresh(func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("refresh callback never fired")
	}
}

func TestScheduleRefreshRearmReplacesPending(t *testing.T) {
	svc := newService(new(mockCommandPort), new(mockQueryPort))
	defer svc.Close()

	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)
	svc.ScheduleRefresh(func() { first <- struct{}{} })
	svc.ScheduleRefresh(func() { second <- struct{}{} })

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("replacement callback never fired")
	}
	select {
	case <-first:
		t.Fatal("replaced callback fired")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCloseCancelsPendingRefresh(t *testing.T) {
	svc := newService(new(mockCommandPort), new(mockQueryPort))

	fired := make(chan struct{}, 1)
	svc.ScheduleRefresh(func() { fired <- struct{}{} })
	svc.Close()

	select {
	case <-fired:
		t.Fatal("refresh fired after Close")
	case <-time.After(50 * time.Millisecond):
	}

	// Arming after Close is a no-op.
	svc.ScheduleRefresh(func() { fired <- struct{}{} })
	select {
	case <-fired:
		t.Fatal("refresh armed after Close")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestOperationsRecordMetrics(t *testing.T) {
	commands := new(mockCommandPort)
	queries := new(mockQueryPort)
	metrics := observability.NewInMemoryMetrics()
	svc := newService(commands, queries).WithMetrics(metrics)

	commands.On("Create", mock.Anything, svc.OwnerID(), mock.Anything).Return(nil)
	queries.On("GetAll", mock.Anything, svc.OwnerID(), domain.ListQuery{}).
		Return(nil, &domain.TransportError{Service: domain.ServiceQuery, Status: 503})

	require.True(t, svc.Create(context.Background(), validCreate(t)))
	assert.Nil(t, svc.FetchAll(context.Background(), domain.ListQuery{}))

	createTag := observability.T(observability.OperationKey, "create")
	fetchTag := observability.T(observability.OperationKey, "fetch_all")

	assert.Equal(t, int64(1), metrics.GetCounter(observability.MetricOperationTotal, createTag))
	assert.Equal(t, int64(1), metrics.GetCounter(observability.MetricSchedulesCreated))
	assert.Equal(t, int64(1), metrics.GetCounter(observability.MetricOperationTotal, fetchTag))
	assert.Equal(t, int64(1), metrics.GetCounter(observability.MetricOperationErrors, fetchTag))
	assert.Len(t, metrics.GetTimings(observability.MetricOperationDuration, createTag), 1)
}

func TestRefreshLifecycleRecordsMetrics(t *testing.T) {
	metrics := observability.NewInMemoryMetrics()
	// Long delay so neither timer can fire before it is replaced or closed.
	svc := NewSyncService(new(mockCommandPort), new(mockQueryPort), uuid.New(), time.Minute, nil).
		WithMetrics(metrics)

	svc.ScheduleRefresh(func() {})
	svc.ScheduleRefresh(func() {})
	assert.Equal(t, int64(2), metrics.GetCounter(observability.MetricRefreshScheduled))
	assert.Equal(t, int64(1), metrics.GetCounter(observability.MetricRefreshCancelled))

	svc.Close()
	assert.Equal(t, int64(2), metrics.GetCounter(observability.MetricRefreshCancelled))
}
