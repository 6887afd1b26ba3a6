package services

import (
	"fmt"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/snapshot"
	"freight/internal/pkg/errs"
)

// CapacityLedger attaches parcels to runs within the run's weight bound.
//
// Used weight is never stored: it is summed from the parcels the run lists
// each time it is needed. Reaching the maximum exactly is allowed.
//
// Attach and Detach change the run and parcel they are given. The engine
// passes members of a cloned snapshot.
type CapacityLedger struct{}

func NewCapacityLedger() CapacityLedger {
	return CapacityLedger{}
}

// UsedWeight sums the weights of the parcels attached to run.
func (CapacityLedger) UsedWeight(run *cargo.Run, snap *snapshot.Snapshot) kernel.Weight {
	used := kernel.ZeroWeight()
	for _, p := range snap.ParcelsOf(run) {
		used = used.Add(p.Weight())
	}
	return used
}

// RemainingWeight is the weight the run can still take.
func (l CapacityLedger) RemainingWeight(run *cargo.Run, snap *snapshot.Snapshot) kernel.Weight {
	return run.MaxWeight().Sub(l.UsedWeight(run, snap))
}

// CanAttach runs every Attach check without changing anything.
func (l CapacityLedger) CanAttach(run *cargo.Run, p *parcel.Parcel, snap *snapshot.Snapshot) error {
	if err := run.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	label := fmt.Sprintf("run %s", run.Number())

	if !run.IsOpen() {
		return errs.NewCapacityError(label, "run is sealed and takes no new parcels")
	}
	if p.RunID() != nil {
		return errs.NewLegalityError(fmt.Sprintf("parcel %s is already attached to run %s", p.ID(), p.RunID()))
	}
	if p.Status() != parcel.Pending {
		return errs.NewLegalityError(fmt.Sprintf("parcel %s is %s, only %s parcels can be attached", p.ID(), p.Status(), parcel.Pending))
	}
	if err := CheckLegality(p.Category(), run.Mode()); err != nil {
		return err
	}

	used := l.UsedWeight(run, snap)
	if next := used.Add(p.Weight()); next.GreaterThan(run.MaxWeight()) {
		return errs.NewCapacityError(label, fmt.Sprintf(
			"%s kg used + %s kg exceeds the maximum of %s kg", used, p.Weight(), run.MaxWeight(),
		))
	}
	return nil
}

// Attach links p to run and adds its final tariff to the run's total.
func (l CapacityLedger) Attach(run *cargo.Run, p *parcel.Parcel, snap *snapshot.Snapshot) error {
	if err := l.CanAttach(run, p, snap); err != nil {
		return err
	}
	if err := run.Load(p.ID(), p.FinalTariff()); err != nil {
		return err
	}
	return p.AttachTo(run.ID())
}

// Detach unlinks p from run. It is legal in every run and parcel state.
func (CapacityLedger) Detach(run *cargo.Run, p *parcel.Parcel) error {
	if !p.IsAttachedTo(run.ID()) {
		return errs.NewObjectNotFoundError(fmt.Sprintf("parcel on run %s", run.Number()), p.ID())
	}
	if err := run.Unload(p.ID(), p.FinalTariff()); err != nil {
		return err
	}
	p.Detach()
	return nil
}
