package services

import (
	"time"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/snapshot"
)

// Correction records one parcel status moved to follow its run.
type Correction struct {
	RunID    kernel.UUID
	ParcelID kernel.UUID
	From     parcel.Status
	To       parcel.Status
	At       time.Time
}

// Reconciler keeps parcel statuses from lagging behind their run's progress:
//
//	run EN_COURS + parcel EN_ATTENTE -> parcel EN_COURS
//	run ARRIVE   + parcel EN_COURS   -> parcel ARRIVE, stamped with the run's arrival
//
// Every other pair is left alone, terminal parcels included. A second pass over
// its own output finds nothing to correct.
type Reconciler struct {
	clock Clock
}

func NewReconciler(clock Clock) Reconciler {
	return Reconciler{clock: clock}
}

// Reconcile returns a corrected copy of snap and the corrections made. snap
// itself is not modified.
func (r Reconciler) Reconcile(snap *snapshot.Snapshot) (*snapshot.Snapshot, []Correction) {
	out := snap.Clone()
	var corrections []Correction

	for _, run := range out.Runs() {
		for _, p := range out.ParcelsOf(run) {
			to, at, ok := r.correctionFor(run, p)
			if !ok {
				continue
			}

			from := p.Status()
			if err := p.TransitionTo(to, at); err != nil {
				// both rules are table transitions, an error means the parcel
				// moved on and there is nothing to repair
				continue
			}
			corrections = append(corrections, Correction{
				RunID:    run.ID(),
				ParcelID: p.ID(),
				From:     from,
				To:       to,
				At:       at,
			})
		}
	}

	return out, corrections
}

func (r Reconciler) correctionFor(run *cargo.Run, p *parcel.Parcel) (parcel.Status, time.Time, bool) {
	switch {
	case run.Progress() == cargo.InTransit && p.Status() == parcel.Pending:
		return parcel.InTransit, r.clock.Now(), true
	case run.Progress() == cargo.Arrived && p.Status() == parcel.InTransit:
		if arrived := run.ArrivedAt(); arrived != nil {
			return parcel.Arrived, *arrived, true
		}
		return parcel.Arrived, r.clock.Now(), true
	default:
		return parcel.Unknown, time.Time{}, false
	}
}
