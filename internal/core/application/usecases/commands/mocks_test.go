package commands_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/application/engine"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/snapshot"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type MockSnapshotRepository struct{ mock.Mock }

func (m *MockSnapshotRepository) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*snapshot.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepository) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SnapshotRepository() ports.SnapshotRepository {
	args := m.Called()
	return args.Get(0).(ports.SnapshotRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newEngine() *engine.Engine {
	return engine.NewDefault(kernel.MoneyFromInt(services.DefaultMinimumTariff), services.FixedClock(now))
}

// seedRun returns a snapshot holding one open road run.
func seedRun(t *testing.T, eng *engine.Engine) (*snapshot.Snapshot, kernel.UUID) {
	t.Helper()
	maxWeight, _ := kernel.WeightFromFloat(50)
	distance, _ := kernel.DistanceFromFloat(100)
	runID := kernel.NewUUID()

	snap, _, err := eng.CreateRun(snapshot.Empty(), engine.RunSpec{
		ID:        runID,
		Number:    "R-1",
		Mode:      kernel.Road,
		MaxWeight: maxWeight,
		Distance:  distance,
	})
	require.NoError(t, err)
	return snap, runID
}

// expectCycle wires a full begin-load-save-commit cycle and returns the mocks.
func expectCycle(ctx context.Context, snap *snapshot.Snapshot, saveErr, commitErr error) (*MockUoWFactory, *MockUoW, *MockSnapshotRepository) {
	repo := new(MockSnapshotRepository)
	uow := new(MockUoW)

	calls := []*mock.Call{
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SnapshotRepository").Return(repo).Once(),
		repo.On("Load", ctx).Return(snap, nil).Once(),
		repo.On("Save", ctx, mock.AnythingOfType("*snapshot.Snapshot")).Return(saveErr).Once(),
	}
	if saveErr == nil {
		calls = append(calls, uow.On("Commit", ctx).Return(commitErr).Once())
	}
	calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
	mock.InOrder(calls...)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}

// expectFailedTransform wires a cycle that stops after Load.
func expectFailedTransform(ctx context.Context, snap *snapshot.Snapshot) (*MockUoWFactory, *MockUoW, *MockSnapshotRepository) {
	repo := new(MockSnapshotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SnapshotRepository").Return(repo).Once(),
		repo.On("Load", ctx).Return(snap, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}
