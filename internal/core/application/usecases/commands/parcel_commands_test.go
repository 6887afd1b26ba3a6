package commands_test

import (
	"testing"

	"freight/internal/core/application/engine"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/snapshot"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func savedSnapshot(t *testing.T, repo *MockSnapshotRepository) *snapshot.Snapshot {
	t.Helper()
	for _, call := range repo.Calls {
		if call.Method == "Save" {
			return call.Arguments.Get(1).(*snapshot.Snapshot)
		}
	}
	t.Fatal("Save was not called")
	return nil
}

func seedParcel(t *testing.T, eng *engine.Engine, snap *snapshot.Snapshot, runID *kernel.UUID) (*snapshot.Snapshot, kernel.UUID) {
	t.Helper()
	w, _ := kernel.WeightFromFloat(2)
	id := kernel.NewUUID()
	out, _, err := eng.CreateParcel(snap, runID, engine.ParcelSpec{ID: id, Weight: w, Category: kernel.Food, Count: 1})
	require.NoError(t, err)
	return out, id
}

func TestNewCreateParcelCommand(t *testing.T) {
	w, _ := kernel.WeightFromFloat(2)

	t.Run("should accept a chemical parcel with a tier", func(t *testing.T) {
		tier := 3
		cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), nil, w, kernel.Chemical, 1, &tier)

		require.NoError(t, err)
		assert.Nil(t, cmd.RunID())
		assert.Equal(t, 3, *cmd.ToxicityTier())
	})

	t.Run("should join every invalid field", func(t *testing.T) {
		badRun := kernel.UUID{}
		_, err := commands.NewCreateParcelCommand(kernel.NewUUID(), &badRun, w, kernel.Food, 0, nil)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCreateParcelCommandHandler_Handle(t *testing.T) {
	w, _ := kernel.WeightFromFloat(10)

	t.Run("should price and attach", func(t *testing.T) {
		ctx := t.Context()
		eng := newEngine()
		snap, runID := seedRun(t, eng)
		cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), &runID, w, kernel.Food, 1, nil)
		require.NoError(t, err)
		factory, uow, repo := expectCycle(ctx, snap, nil, nil)

		report, err := commands.NewCreateParcelCommandHandler(factory, eng).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Len(t, report.Applied, 1)
		uow.AssertExpectations(t)
		p, err := savedSnapshot(t, repo).Parcel(cmd.ParcelID())
		require.NoError(t, err)
		assert.True(t, p.FinalTariff().IsEqual(kernel.MoneyFromInt(100_000)))
	})

	t.Run("should refuse an over capacity parcel", func(t *testing.T) {
		ctx := t.Context()
		eng := newEngine()
		snap, runID := seedRun(t, eng)
		heavy, _ := kernel.WeightFromFloat(50.5)
		cmd, _ := commands.NewCreateParcelCommand(kernel.NewUUID(), &runID, heavy, kernel.Food, 1, nil)
		factory, uow, repo := expectFailedTransform(ctx, snap)

		_, err := commands.NewCreateParcelCommandHandler(factory, eng).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrCapacity)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})
}

func TestAttachDetachCommandHandlers(t *testing.T) {
	ctx := t.Context()
	eng := newEngine()
	snap, runID := seedRun(t, eng)
	snap, parcelID := seedParcel(t, eng, snap, nil)

	attach, err := commands.NewAttachParcelCommand(runID, parcelID)
	require.NoError(t, err)
	factory, _, repo := expectCycle(ctx, snap, nil, nil)

	_, err = commands.NewAttachParcelCommandHandler(factory, eng).Handle(ctx, attach)
	require.NoError(t, err)
	attached := savedSnapshot(t, repo)
	p, _ := attached.Parcel(parcelID)
	assert.True(t, p.IsAttachedTo(runID))

	detach, err := commands.NewDetachParcelCommand(runID, parcelID)
	require.NoError(t, err)
	factory, _, repo = expectCycle(ctx, attached, nil, nil)

	_, err = commands.NewDetachParcelCommandHandler(factory, eng).Handle(ctx, detach)
	require.NoError(t, err)
	p, _ = savedSnapshot(t, repo).Parcel(parcelID)
	assert.Nil(t, p.RunID())
}

func TestNewAttachParcelCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAttachParcelCommand(kernel.UUID{}, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewDetachParcelCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	assert.ErrorIs(t, (commands.AttachParcelCommand{}).Validate(), commands.ErrAttachParcelCommandIsNotConstructed)
}

func TestChangeRunStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	eng := newEngine()
	snap, runID := seedRun(t, eng)
	snap, parcelID := seedParcel(t, eng, snap, &runID)
	snap, _, err := eng.ChangeRunStatus(snap, runID, cargo.Close)
	require.NoError(t, err)

	cmd, err := commands.NewChangeRunStatusCommand(runID, cargo.Depart)
	require.NoError(t, err)
	factory, uow, repo := expectCycle(ctx, snap, nil, nil)

	report, err := commands.NewChangeRunStatusCommandHandler(factory, eng).Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, report.Corrections, 1)
	uow.AssertExpectations(t)
	p, _ := savedSnapshot(t, repo).Parcel(parcelID)
	assert.Equal(t, parcel.InTransit, p.Status())
}

func TestChangeRunStatusCommandHandler_Handle_Illegal(t *testing.T) {
	ctx := t.Context()
	eng := newEngine()
	snap, runID := seedRun(t, eng)
	cmd, _ := commands.NewChangeRunStatusCommand(runID, cargo.Arrive)
	factory, _, repo := expectFailedTransform(ctx, snap)

	_, err := commands.NewChangeRunStatusCommandHandler(factory, eng).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrLegality)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestNewChangeRunStatusCommand_InvalidTransition(t *testing.T) {
	_, err := commands.NewChangeRunStatusCommand(kernel.NewUUID(), cargo.Transition("fly"))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeParcelStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	eng := newEngine()
	snap, runID := seedRun(t, eng)
	snap, parcelID := seedParcel(t, eng, snap, &runID)

	cmd, err := commands.NewChangeParcelStatusCommand(parcelID, parcel.Cancelled)
	require.NoError(t, err)
	factory, _, repo := expectCycle(ctx, snap, nil, nil)

	_, err = commands.NewChangeParcelStatusCommandHandler(factory, eng).Handle(ctx, cmd)

	require.NoError(t, err)
	saved := savedSnapshot(t, repo)
	p, _ := saved.Parcel(parcelID)
	assert.Equal(t, parcel.Cancelled, p.Status())
	run, _ := saved.Run(runID)
	assert.False(t, run.HasParcel(parcelID))
}

func TestApplyBulkStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	eng := newEngine()
	snap, runID := seedRun(t, eng)
	snap, first := seedParcel(t, eng, snap, &runID)
	snap, second := seedParcel(t, eng, snap, &runID)
	snap, _, err := eng.ChangeRunStatus(snap, runID, cargo.Close)
	require.NoError(t, err)
	snap, _, err = eng.ChangeRunStatus(snap, runID, cargo.Depart)
	require.NoError(t, err)

	cmd, err := commands.NewApplyBulkStatusCommand(nil, &runID, parcel.Lost)
	require.NoError(t, err)
	factory, _, repo := expectCycle(ctx, snap, nil, nil)

	report, err := commands.NewApplyBulkStatusCommandHandler(factory, eng).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.ElementsMatch(t, []kernel.UUID{first, second}, report.Applied)
	saved := savedSnapshot(t, repo)
	for _, id := range []kernel.UUID{first, second} {
		p, _ := saved.Parcel(id)
		assert.Equal(t, parcel.Lost, p.Status())
	}
}

func TestNewApplyBulkStatusCommand_RequiresSelection(t *testing.T) {
	_, err := commands.NewApplyBulkStatusCommand(nil, nil, parcel.Recovered)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestReconcileRunsCommandHandler_Handle(t *testing.T) {
	t.Run("should not write a clean snapshot", func(t *testing.T) {
		ctx := t.Context()
		eng := newEngine()
		snap, _ := seedRun(t, eng)
		factory, uow, repo := expectFailedTransform(ctx, snap)

		report, err := commands.NewReconcileRunsCommandHandler(factory, eng).Handle(ctx, commands.NewReconcileRunsCommand())

		require.NoError(t, err)
		assert.True(t, report.Noop)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should save corrections", func(t *testing.T) {
		ctx := t.Context()
		eng := newEngine()
		snap, runID := seedRun(t, eng)
		snap, parcelID := seedParcel(t, eng, snap, &runID)
		snap, _, err := eng.ChangeRunStatus(snap, runID, cargo.Close)
		require.NoError(t, err)
		snap, _, err = eng.ChangeRunStatus(snap, runID, cargo.Depart)
		require.NoError(t, err)
		// undo the reconciliation the engine did on departure
		lagging := restoreStatus(t, snap, parcelID, parcel.Pending)
		factory, _, repo := expectCycle(ctx, lagging, nil, nil)

		report, err := commands.NewReconcileRunsCommandHandler(factory, eng).Handle(ctx, commands.NewReconcileRunsCommand())

		require.NoError(t, err)
		assert.False(t, report.Noop)
		p, _ := savedSnapshot(t, repo).Parcel(parcelID)
		assert.Equal(t, parcel.InTransit, p.Status())
	})
}

// restoreStatus rebuilds snap with one parcel forced to status, as a
// repaired-by-hand database row would look.
func restoreStatus(t *testing.T, snap *snapshot.Snapshot, parcelID kernel.UUID, status parcel.Status) *snapshot.Snapshot {
	t.Helper()
	parcels := snap.Parcels()
	for i, p := range parcels {
		if !p.ID().IsEqual(parcelID) {
			continue
		}
		restored, err := parcel.RestoreParcel(parcel.State{
			ID:          p.ID(),
			RunID:       p.RunID(),
			Weight:      p.Weight(),
			Category:    p.Category(),
			Count:       p.Count(),
			BaseTariff:  p.BaseTariff(),
			FinalTariff: p.FinalTariff(),
			Status:      status,
			CreatedAt:   p.CreatedAt(),
		})
		require.NoError(t, err)
		parcels[i] = restored
	}
	out, err := snapshot.New(snap.Runs(), parcels, snap.Version())
	require.NoError(t, err)
	return out
}
