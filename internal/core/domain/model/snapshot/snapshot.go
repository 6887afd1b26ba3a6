// Package snapshot holds Snapshot, the full set of runs and parcels one engine
// operation works on.
package snapshot

import (
	"errors"
	"fmt"
	"slices"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"
)

// Snapshot is every run and parcel at one point in time plus the storage
// version it was loaded at. Engine operations take a snapshot and return a new
// one; they never change the one they were given.
//
// Runs and parcels keep insertion order so that reports and saves are stable.
type Snapshot struct {
	runs    []*cargo.Run
	parcels []*parcel.Parcel

	runIndex    map[kernel.UUID]int
	parcelIndex map[kernel.UUID]int

	version int64
}

// Empty returns a snapshot with no runs or parcels at version 0.
func Empty() *Snapshot {
	return &Snapshot{
		runIndex:    map[kernel.UUID]int{},
		parcelIndex: map[kernel.UUID]int{},
	}
}

// New builds a snapshot and checks the cross references between runs and
// parcels: every attached parcel must be listed by its run and every listed id
// must be a parcel attached to that run.
func New(runs []*cargo.Run, parcels []*parcel.Parcel, version int64) (*Snapshot, error) {
	s := Empty()
	s.version = version

	var joined []error
	for _, r := range runs {
		joined = append(joined, s.AddRun(r))
	}
	for _, p := range parcels {
		joined = append(joined, s.addParcel(p))
	}
	if err := errors.Join(joined...); err != nil {
		return nil, err
	}

	if err := s.checkReferences(); err != nil {
		return nil, err
	}
	return s, nil
}

// Version is the storage token Save compares against.
func (s *Snapshot) Version() int64 {
	return s.version
}

// Runs returns the runs in insertion order.
func (s *Snapshot) Runs() []*cargo.Run {
	return slices.Clone(s.runs)
}

// Parcels returns the parcels in insertion order.
func (s *Snapshot) Parcels() []*parcel.Parcel {
	return slices.Clone(s.parcels)
}

// Run returns the run with the given id or an ObjectNotFoundError.
func (s *Snapshot) Run(id kernel.UUID) (*cargo.Run, error) {
	i, ok := s.runIndex[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("run", id)
	}
	return s.runs[i], nil
}

// Parcel returns the parcel with the given id or an ObjectNotFoundError.
func (s *Snapshot) Parcel(id kernel.UUID) (*parcel.Parcel, error) {
	i, ok := s.parcelIndex[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcel", id)
	}
	return s.parcels[i], nil
}

// RunByNumber returns the run labelled number, if any.
func (s *Snapshot) RunByNumber(number string) (*cargo.Run, bool) {
	for _, r := range s.runs {
		if r.Number() == number {
			return r, true
		}
	}
	return nil, false
}

// ParcelsOf returns the parcels attached to run in the run's attachment order.
func (s *Snapshot) ParcelsOf(run *cargo.Run) []*parcel.Parcel {
	ids := run.ParcelIDs()
	out := make([]*parcel.Parcel, 0, len(ids))
	for _, id := range ids {
		if i, ok := s.parcelIndex[id]; ok {
			out = append(out, s.parcels[i])
		}
	}
	return out
}

// AddRun appends run. Ids and numbers are unique within a snapshot.
func (s *Snapshot) AddRun(run *cargo.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}
	if _, dup := s.runIndex[run.ID()]; dup {
		return errs.NewValueIsInvalidErrorWithCause("run", fmt.Errorf("id %s already exists", run.ID()))
	}
	if _, dup := s.RunByNumber(run.Number()); dup {
		return errs.NewValueIsInvalidErrorWithCause("run", fmt.Errorf("number %s already exists", run.Number()))
	}

	s.runIndex[run.ID()] = len(s.runs)
	s.runs = append(s.runs, run)
	return nil
}

// AddParcel appends a parcel that is not yet attached to any run. Attachment
// goes through the capacity ledger.
func (s *Snapshot) AddParcel(p *parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.RunID() != nil {
		return errs.NewLegalityError(fmt.Sprintf("parcel %s must be added unattached", p.ID()))
	}
	return s.addParcel(p)
}

// Clone returns a deep copy: mutating the copy's runs or parcels leaves s as it was.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		runs:        make([]*cargo.Run, len(s.runs)),
		parcels:     make([]*parcel.Parcel, len(s.parcels)),
		runIndex:    make(map[kernel.UUID]int, len(s.runIndex)),
		parcelIndex: make(map[kernel.UUID]int, len(s.parcelIndex)),
		version:     s.version,
	}
	for i, r := range s.runs {
		c.runs[i] = r.Clone()
		c.runIndex[r.ID()] = i
	}
	for i, p := range s.parcels {
		c.parcels[i] = p.Clone()
		c.parcelIndex[p.ID()] = i
	}
	return c
}

func (s *Snapshot) addParcel(p *parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, dup := s.parcelIndex[p.ID()]; dup {
		return errs.NewValueIsInvalidErrorWithCause("parcel", fmt.Errorf("id %s already exists", p.ID()))
	}

	s.parcelIndex[p.ID()] = len(s.parcels)
	s.parcels = append(s.parcels, p)
	return nil
}

func (s *Snapshot) checkReferences() error {
	var joined []error

	for _, r := range s.runs {
		for _, id := range r.ParcelIDs() {
			p, err := s.Parcel(id)
			if err != nil {
				joined = append(joined, fmt.Errorf("run %s lists a missing parcel: %w", r.Number(), err))
				continue
			}
			if !p.IsAttachedTo(r.ID()) {
				joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
					"parcel reference",
					fmt.Errorf("run %s lists parcel %s which points elsewhere", r.Number(), id),
				))
			}
		}
	}

	for _, p := range s.parcels {
		runID := p.RunID()
		if runID == nil {
			continue
		}
		r, err := s.Run(*runID)
		if err != nil {
			joined = append(joined, fmt.Errorf("parcel %s points at a missing run: %w", p.ID(), err))
			continue
		}
		if !r.HasParcel(p.ID()) {
			joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
				"parcel reference",
				fmt.Errorf("parcel %s is not listed by run %s", p.ID(), r.Number()),
			))
		}
	}

	return errors.Join(joined...)
}
