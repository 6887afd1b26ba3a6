package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateRun handles POST /api/v1/runs.
func (s *Server) CreateRun(ctx echo.Context) error {
	var body servers.CreateRunJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	runID, err := optionalUUID(body.Id)
	if err != nil {
		return s.fail(ctx, err)
	}
	mode, err := kernel.ParseTransportMode(body.Mode)
	if err != nil {
		return s.fail(ctx, err)
	}
	maxWeight, err := kernel.NewWeight(decimalFrom(body.MaxWeight))
	if err != nil {
		return s.fail(ctx, err)
	}
	distance, err := kernel.NewDistance(decimalFrom(body.Distance))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateCargoRunCommand(runID, body.Number, mode, maxWeight, distance)
	if err != nil {
		return s.fail(ctx, err)
	}
	if _, err := s.h.CreateRun.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: runID.Bytes()})
}

// GetRun handles GET /api/v1/runs/{runId}.
func (s *Server) GetRun(ctx echo.Context, runId servers.RunId) error {
	id, err := toKernelUUID(runId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetRunLoadQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	load, err := s.h.GetRunLoad.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RunLoad{
		Id:              load.ID.Bytes(),
		Number:          load.Number,
		Mode:            load.Mode,
		Availability:    load.Availability,
		Progress:        load.Progress,
		MaxWeight:       load.MaxWeight.String(),
		UsedWeight:      load.UsedWeight.String(),
		RemainingWeight: load.RemainingWeight.String(),
		Distance:        load.Distance.String(),
		PriceTotal:      load.PriceTotal.StringFixed(2),
		ParcelCount:     load.ParcelCount,
		ParcelsByStatus: load.ParcelsByStatus,
	})
}

// ChangeRunStatus handles POST /api/v1/runs/{runId}/status.
func (s *Server) ChangeRunStatus(ctx echo.Context, runId servers.RunId) error {
	var body servers.ChangeRunStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	id, err := toKernelUUID(runId)
	if err != nil {
		return s.fail(ctx, err)
	}
	transition, err := cargo.ParseTransition(string(body.Transition))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeRunStatusCommand(id, transition)
	if err != nil {
		return s.fail(ctx, err)
	}
	report, err := s.h.ChangeRunStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationReport(report))
}

// CreateRunParcel handles POST /api/v1/runs/{runId}/parcels.
func (s *Server) CreateRunParcel(ctx echo.Context, runId servers.RunId) error {
	id, err := toKernelUUID(runId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.createParcel(ctx, &id)
}

// AttachParcel handles PUT /api/v1/runs/{runId}/parcels/{parcelId}.
func (s *Server) AttachParcel(ctx echo.Context, runId servers.RunId, parcelId servers.ParcelId) error {
	rID, err := toKernelUUID(runId)
	if err != nil {
		return s.fail(ctx, err)
	}
	pID, err := toKernelUUID(parcelId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAttachParcelCommand(rID, pID)
	if err != nil {
		return s.fail(ctx, err)
	}
	report, err := s.h.AttachParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationReport(report))
}

// DetachParcel handles DELETE /api/v1/runs/{runId}/parcels/{parcelId}.
func (s *Server) DetachParcel(ctx echo.Context, runId servers.RunId, parcelId servers.ParcelId) error {
	rID, err := toKernelUUID(runId)
	if err != nil {
		return s.fail(ctx, err)
	}
	pID, err := toKernelUUID(parcelId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDetachParcelCommand(rID, pID)
	if err != nil {
		return s.fail(ctx, err)
	}
	report, err := s.h.DetachParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationReport(report))
}
