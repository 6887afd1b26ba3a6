package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	return s.createParcel(ctx, nil)
}

func (s *Server) createParcel(ctx echo.Context, runID *kernel.UUID) error {
	var body servers.CreateParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	parcelID, err := optionalUUID(body.Id)
	if err != nil {
		return s.fail(ctx, err)
	}
	weight, err := kernel.NewWeight(decimalFrom(body.Weight))
	if err != nil {
		return s.fail(ctx, err)
	}
	category, err := kernel.NewGoodsCategory(body.Category)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		runID,
		weight,
		category,
		countOrDefault(body.Count),
		body.ToxicityTier,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if _, err := s.h.CreateParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: parcelID.Bytes()})
}

// ChangeParcelStatus handles POST /api/v1/parcels/{parcelId}/status.
func (s *Server) ChangeParcelStatus(ctx echo.Context, parcelId servers.ParcelId) error {
	var body servers.ChangeParcelStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	id, err := toKernelUUID(parcelId)
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := parcel.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeParcelStatusCommand(id, target)
	if err != nil {
		return s.fail(ctx, err)
	}
	report, err := s.h.ChangeParcelStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationReport(report))
}

// ApplyBulkStatus handles POST /api/v1/parcels/bulk-status. Per-parcel
// failures are part of a 200 response; only a malformed request fails as a whole.
func (s *Server) ApplyBulkStatus(ctx echo.Context) error {
	var body servers.ApplyBulkStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	target, err := parcel.ParseStatus(string(body.Target))
	if err != nil {
		return s.fail(ctx, err)
	}

	var parcelIDs []kernel.UUID
	if body.ParcelIds != nil {
		parcelIDs = make([]kernel.UUID, 0, len(*body.ParcelIds))
		for _, raw := range *body.ParcelIds {
			id, idErr := toKernelUUID(raw)
			if idErr != nil {
				return s.fail(ctx, idErr)
			}
			parcelIDs = append(parcelIDs, id)
		}
	}

	var runID *kernel.UUID
	if body.RunId != nil {
		id, idErr := toKernelUUID(*body.RunId)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		runID = &id
	}

	cmd, err := commands.NewApplyBulkStatusCommand(parcelIDs, runID, target)
	if err != nil {
		return s.fail(ctx, err)
	}
	report, err := s.h.ApplyBulkStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationReport(report))
}
