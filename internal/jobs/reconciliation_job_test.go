package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"freight/internal/core/application/engine"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/jobs"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReconcileHandler struct {
	mock.Mock
}

func (m *MockReconcileHandler) Handle(ctx context.Context, cmd commands.ReconcileRunsCommand) (engine.Report, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(engine.Report), args.Error(1)
}

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestReconciliationJob_RunOnce(t *testing.T) {
	corrections := []services.Correction{{RunID: kernel.NewUUID(), ParcelID: kernel.NewUUID()}}

	tests := []struct {
		name    string
		report  engine.Report
		err     error
		level   string
		message string
	}{
		{"noop", engine.Report{Noop: true}, nil, "level=DEBUG", "nothing to correct"},
		{"corrections", engine.Report{Corrections: corrections}, nil, "level=INFO", "corrections=1"},
		{"version conflict", engine.Report{}, errs.NewVersionIsInvalidError("snapshot"), "level=WARN", "lost a write race"},
		{"storage failure", engine.Report{}, errors.New("connection refused"), "level=ERROR", "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := new(MockReconcileHandler)
			handler.On("Handle", mock.Anything, mock.AnythingOfType("commands.ReconcileRunsCommand")).
				Return(tt.report, tt.err).Once()
			logger, buf := newLogger()

			job := jobs.NewReconciliationJob(handler, "", logger)
			report := job.RunOnce(context.Background())

			assert.Equal(t, tt.report, report)
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), tt.message)
			handler.AssertExpectations(t)
		})
	}
}

func TestReconciliationJob_InvalidSchedule(t *testing.T) {
	logger, _ := newLogger()
	job := jobs.NewReconciliationJob(new(MockReconcileHandler), "not a schedule", logger)

	require.Error(t, job.Start())
}

func TestJobManager_RunsOnSchedule(t *testing.T) {
	handler := new(MockReconcileHandler)
	called := make(chan struct{}, 8)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(engine.Report{Noop: true}, nil).
		Run(func(mock.Arguments) { called <- struct{}{} })

	logger, _ := newLogger()
	manager := jobs.NewJobManager(handler, "* * * * * *", logger)
	require.NoError(t, manager.StartAll())
	defer manager.StopAll()

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatal("reconciliation did not run within 3s")
	}
}
