// Package engine is the freight lifecycle engine. It composes the domain
// services over a snapshot: every operation takes a snapshot, works on a copy
// and returns the copy with a report, so a failed operation leaves nothing to
// undo.
//
//	snap, _ := repo.Load(ctx)
//	next, report, err := eng.ChangeRunStatus(snap, runID, cargo.Depart)
//	if err != nil {
//	    return err
//	}
//	err = repo.Save(ctx, next)
package engine

import (
	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/snapshot"
	"freight/internal/core/domain/services"
)

// Report describes what an operation changed besides the returned snapshot.
type Report struct {
	// Corrections are the parcel statuses moved by reconciliation.
	Corrections []services.Correction
	// Applied lists the parcels whose status the operation changed directly.
	Applied    []kernel.UUID
	Rejections []services.Rejection
	// Noop is set when reconciliation ran and found nothing to correct.
	Noop bool
}

// RunSpec describes a run to create.
type RunSpec struct {
	ID        kernel.UUID
	Number    string
	Mode      kernel.TransportMode
	MaxWeight kernel.Weight
	Distance  kernel.Distance
}

// ParcelSpec describes a parcel to create.
type ParcelSpec struct {
	ID           kernel.UUID
	Weight       kernel.Weight
	Category     kernel.GoodsCategory
	Count        int
	ToxicityTier *int
}

type Engine struct {
	calculator services.TariffCalculator
	validator  services.TransitionValidator
	ledger     services.CapacityLedger
	reconciler services.Reconciler
	bulk       services.BulkCoordinator
	clock      services.Clock
}

func New(
	calculator services.TariffCalculator,
	validator services.TransitionValidator,
	ledger services.CapacityLedger,
	reconciler services.Reconciler,
	bulk services.BulkCoordinator,
	clock services.Clock,
) *Engine {
	return &Engine{
		calculator: calculator,
		validator:  validator,
		ledger:     ledger,
		reconciler: reconciler,
		bulk:       bulk,
		clock:      clock,
	}
}

// NewDefault wires the standard services around minimum and clock.
func NewDefault(minimum kernel.Money, clock services.Clock) *Engine {
	validator := services.NewTransitionValidator()
	return New(
		services.NewTariffCalculator(minimum),
		validator,
		services.NewCapacityLedger(),
		services.NewReconciler(clock),
		services.NewBulkCoordinator(validator),
		clock,
	)
}

func (e *Engine) ComputeTariff(req services.TariffRequest) (services.Quote, error) {
	return e.calculator.Price(req)
}

func (e *Engine) IsTransitionLegal(from, to parcel.Status) bool {
	return e.validator.IsParcelTransitionLegal(from, to)
}

// UsedWeight is the weight currently loaded on a run of snap.
func (e *Engine) UsedWeight(snap *snapshot.Snapshot, runID kernel.UUID) (kernel.Weight, error) {
	run, err := snap.Run(runID)
	if err != nil {
		return kernel.Weight{}, err
	}
	return e.ledger.UsedWeight(run, snap), nil
}

// CreateRun adds an OUVERT / EN_ATTENTE run.
func (e *Engine) CreateRun(snap *snapshot.Snapshot, spec RunSpec) (*snapshot.Snapshot, Report, error) {
	run, err := cargo.NewRun(spec.ID, spec.Number, spec.Mode, spec.MaxWeight, spec.Distance, e.clock.Now())
	if err != nil {
		return nil, Report{}, err
	}

	out := snap.Clone()
	if err := out.AddRun(run); err != nil {
		return nil, Report{}, err
	}
	return out, Report{}, nil
}

// CreateParcel adds a parcel. With a runID the parcel is priced for that run
// and attached to it in the same step; without one it stays unattached, with
// no base tariff and a final tariff floored at the minimum until AttachParcel.
func (e *Engine) CreateParcel(
	snap *snapshot.Snapshot,
	runID *kernel.UUID,
	spec ParcelSpec,
) (*snapshot.Snapshot, Report, error) {
	p, err := parcel.NewParcel(spec.ID, spec.Weight, spec.Category, spec.Count, spec.ToxicityTier, e.clock.Now())
	if err != nil {
		return nil, Report{}, err
	}

	out := snap.Clone()
	if err := out.AddParcel(p); err != nil {
		return nil, Report{}, err
	}

	if runID == nil {
		if err := p.Reprice(kernel.ZeroMoney(), e.calculator.Minimum()); err != nil {
			return nil, Report{}, err
		}
		return out, Report{Applied: []kernel.UUID{p.ID()}}, nil
	}

	if err := e.attach(out, *runID, p); err != nil {
		return nil, Report{}, err
	}
	return out, Report{Applied: []kernel.UUID{p.ID()}}, nil
}

// AttachParcel prices an unattached parcel for the run and attaches it.
func (e *Engine) AttachParcel(
	snap *snapshot.Snapshot,
	runID, parcelID kernel.UUID,
) (*snapshot.Snapshot, Report, error) {
	out := snap.Clone()
	p, err := out.Parcel(parcelID)
	if err != nil {
		return nil, Report{}, err
	}
	if err := e.attach(out, runID, p); err != nil {
		return nil, Report{}, err
	}
	return out, Report{Applied: []kernel.UUID{parcelID}}, nil
}

// DetachParcel removes a parcel from its run. It is legal in every state.
func (e *Engine) DetachParcel(
	snap *snapshot.Snapshot,
	runID, parcelID kernel.UUID,
) (*snapshot.Snapshot, Report, error) {
	out := snap.Clone()
	run, err := out.Run(runID)
	if err != nil {
		return nil, Report{}, err
	}
	p, err := out.Parcel(parcelID)
	if err != nil {
		return nil, Report{}, err
	}
	if err := e.ledger.Detach(run, p); err != nil {
		return nil, Report{}, err
	}
	return out, Report{Applied: []kernel.UUID{parcelID}}, nil
}

// ChangeRunStatus applies t to the run, then reconciles the snapshot so no
// parcel lags behind the new progress.
func (e *Engine) ChangeRunStatus(
	snap *snapshot.Snapshot,
	runID kernel.UUID,
	t cargo.Transition,
) (*snapshot.Snapshot, Report, error) {
	out := snap.Clone()
	run, err := out.Run(runID)
	if err != nil {
		return nil, Report{}, err
	}
	if err := e.validator.ValidateRunTransition(run, t); err != nil {
		return nil, Report{}, err
	}
	if err := run.Apply(t, e.clock.Now()); err != nil {
		return nil, Report{}, err
	}

	reconciled, corrections := e.reconciler.Reconcile(out)
	return reconciled, Report{Corrections: corrections, Noop: len(corrections) == 0}, nil
}

// TransitionParcel moves one parcel along the status table. A cancelled
// parcel is detached from its run and frees its capacity.
func (e *Engine) TransitionParcel(
	snap *snapshot.Snapshot,
	parcelID kernel.UUID,
	to parcel.Status,
) (*snapshot.Snapshot, Report, error) {
	if err := to.Validate(); err != nil {
		return nil, Report{}, err
	}

	out := snap.Clone()
	p, err := out.Parcel(parcelID)
	if err != nil {
		return nil, Report{}, err
	}
	if err := p.TransitionTo(to, e.clock.Now()); err != nil {
		return nil, Report{}, err
	}

	if to == parcel.Cancelled {
		if runID := p.RunID(); runID != nil {
			run, err := out.Run(*runID)
			if err != nil {
				return nil, Report{}, err
			}
			if err := e.ledger.Detach(run, p); err != nil {
				return nil, Report{}, err
			}
		}
	}

	return out, Report{Applied: []kernel.UUID{parcelID}}, nil
}

// Reconcile aligns every parcel with its run. Noop reports a clean snapshot.
func (e *Engine) Reconcile(snap *snapshot.Snapshot) (*snapshot.Snapshot, Report, error) {
	out, corrections := e.reconciler.Reconcile(snap)
	return out, Report{Corrections: corrections, Noop: len(corrections) == 0}, nil
}

// ApplyBulk applies req with partial success, stamping changed parcels with
// the clock's time.
func (e *Engine) ApplyBulk(snap *snapshot.Snapshot, req services.BulkRequest) (*snapshot.Snapshot, Report, error) {
	out, bulkReport, err := e.bulk.ApplyBulk(snap, req, e.clock.Now())
	if err != nil {
		return nil, Report{}, err
	}
	return out, Report{Applied: bulkReport.Applied, Rejections: bulkReport.Rejections}, nil
}

func (e *Engine) attach(out *snapshot.Snapshot, runID kernel.UUID, p *parcel.Parcel) error {
	run, err := out.Run(runID)
	if err != nil {
		return err
	}
	if err := e.ledger.CanAttach(run, p, out); err != nil {
		return err
	}

	quote, err := e.calculator.Price(services.TariffRequest{
		Category:     p.Category(),
		Mode:         run.Mode(),
		Weight:       p.Weight(),
		Distance:     run.Distance(),
		ParcelCount:  p.Count(),
		ToxicityTier: p.ToxicityTier(),
	})
	if err != nil {
		return err
	}
	if err := p.Reprice(quote.Raw, quote.Final); err != nil {
		return err
	}
	return e.ledger.Attach(run, p, out)
}
