package http

import (
	"freight/internal/core/application/engine"
	"freight/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// decimalFrom keeps the shortest decimal that round-trips the float64, so
// 1234567.89 arrives as 1234567.89 and 0.1 as 0.1.
func decimalFrom(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func toOperationReport(r engine.Report) servers.OperationReport {
	out := servers.OperationReport{
		Applied:     make([]openapi_types.UUID, 0, len(r.Applied)),
		Corrections: make([]servers.Correction, 0, len(r.Corrections)),
		Rejections:  make([]servers.Rejection, 0, len(r.Rejections)),
		Noop:        r.Noop,
	}
	for _, id := range r.Applied {
		out.Applied = append(out.Applied, id.Bytes())
	}
	for _, c := range r.Corrections {
		out.Corrections = append(out.Corrections, servers.Correction{
			RunId:    c.RunID.Bytes(),
			ParcelId: c.ParcelID.Bytes(),
			From:     c.From.String(),
			To:       c.To.String(),
			At:       c.At,
		})
	}
	for _, rej := range r.Rejections {
		out.Rejections = append(out.Rejections, servers.Rejection{
			ParcelId: rej.ParcelID.Bytes(),
			Reason:   rej.Reason,
		})
	}
	return out
}
