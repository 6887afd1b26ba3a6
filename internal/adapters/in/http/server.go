// Package http exposes the freight engine over the generated OpenAPI server
// interface. Handlers translate request bodies into commands and queries and
// the typed errors they return into status codes.
package http

import (
	"log/slog"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateRun          commands.CreateCargoRunCommandHandler
	CreateParcel       commands.CreateParcelCommandHandler
	AttachParcel       commands.AttachParcelCommandHandler
	DetachParcel       commands.DetachParcelCommandHandler
	ChangeRunStatus    commands.ChangeRunStatusCommandHandler
	ChangeParcelStatus commands.ChangeParcelStatusCommandHandler
	ApplyBulkStatus    commands.ApplyBulkStatusCommandHandler
	ReconcileRuns      commands.ReconcileRunsCommandHandler

	QuoteTariff     queries.QuoteTariffQueryHandler
	CheckTransition queries.CheckTransitionQueryHandler
	GetRunLoad      queries.GetRunLoadQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http"),
	}
}

// QuoteTariff handles POST /api/v1/tariffs/quote.
func (s *Server) QuoteTariff(ctx echo.Context) error {
	var body servers.QuoteTariffJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	query, err := queries.NewQuoteTariffQuery(
		body.Category,
		body.Mode,
		decimalFrom(body.Weight),
		decimalFrom(body.Distance),
		countOrDefault(body.ParcelCount),
		body.ToxicityTier,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	quote, err := s.h.QuoteTariff.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TariffQuote{
		Unit:    quote.Unit.String(),
		Raw:     quote.Raw.String(),
		Final:   quote.Final.String(),
		Minimum: quote.Minimum.String(),
	})
}

// CheckTransition handles GET /api/v1/transitions/check.
func (s *Server) CheckTransition(ctx echo.Context, params servers.CheckTransitionParams) error {
	query, err := queries.NewCheckTransitionQuery(params.From, params.To)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.h.CheckTransition.Handle(query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TransitionCheck{
		From:  resp.From,
		To:    resp.To,
		Legal: resp.Legal,
	})
}

// Reconcile handles POST /api/v1/reconciliations.
func (s *Server) Reconcile(ctx echo.Context) error {
	report, err := s.h.ReconcileRuns.Handle(ctx.Request().Context(), commands.NewReconcileRunsCommand())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOperationReport(report))
}

func (s *Server) badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

// optionalUUID returns a fresh id when the client did not send one.
func optionalUUID(id *openapi_types.UUID) (kernel.UUID, error) {
	if id == nil {
		return kernel.NewUUID(), nil
	}
	return toKernelUUID(*id)
}

func countOrDefault(count *int) int {
	if count == nil {
		return 1
	}
	return *count
}
