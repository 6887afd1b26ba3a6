package cargo

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrRunIsNotConstructed is returned when a Run was not built through NewRun
	// or RestoreRun.
	ErrRunIsNotConstructed = errors.New("Run must be created via NewRun constructor")
)

// Run is a scheduled transport batch: one mode, one route leg, zero or more
// parcels. It is the aggregate root for the parcel id list and the price total.
//
// Run follows these invariants:
//   - availability and progress are independent axes, except that progress
//     leaves EN_ATTENTE only while availability is FERME
//   - a FERME run takes no new parcels
//   - parcelIDs holds each id at most once, in attachment order
//   - priceTotal is the sum of the final tariffs of the attached parcels
//
// Used weight is not stored here. It is derived from the attached parcels by
// the capacity ledger.
type Run struct {
	// id is the unique identifier of the run
	id kernel.UUID

	// number is the human label shown to operators, unique across runs
	number string

	mode      kernel.TransportMode
	maxWeight kernel.Weight
	distance  kernel.Distance

	availability Availability
	progress     Progress

	parcelIDs  []kernel.UUID
	priceTotal kernel.Money

	createdAt  time.Time
	departedAt *time.Time
	arrivedAt  *time.Time

	guard guard.ConstructorGuard
}

// RunState is the full persisted shape of a run, used by RestoreRun.
type RunState struct {
	ID           kernel.UUID
	Number       string
	Mode         kernel.TransportMode
	MaxWeight    kernel.Weight
	Distance     kernel.Distance
	Availability Availability
	Progress     Progress
	ParcelIDs    []kernel.UUID
	PriceTotal   kernel.Money
	CreatedAt    time.Time
	DepartedAt   *time.Time
	ArrivedAt    *time.Time
}

// NewRun creates an OUVERT / EN_ATTENTE run with no parcels.
//
// Example:
//
//	maxWeight, _ := kernel.WeightFromFloat(1000)
//	distance, _ := kernel.DistanceFromFloat(350)
//	run, err := cargo.NewRun(kernel.NewUUID(), "R-2025-001", kernel.Road, maxWeight, distance, now)
func NewRun(
	id kernel.UUID,
	number string,
	mode kernel.TransportMode,
	maxWeight kernel.Weight,
	distance kernel.Distance,
	createdAt time.Time,
) (*Run, error) {
	r := &Run{
		availability: Open,
		progress:     Pending,
		priceTotal:   kernel.ZeroMoney(),
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setNumber(number),
		r.setMode(mode),
		r.setMaxWeight(maxWeight),
		r.setDistance(distance),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRun rebuilds a run from storage. It checks field validity and the
// seal-before-departure rule, but not capacity, which needs the parcels.
func RestoreRun(s RunState) (*Run, error) {
	r := &Run{
		priceTotal: s.PriceTotal,
		createdAt:  s.CreatedAt,
		departedAt: copyTime(s.DepartedAt),
		arrivedAt:  copyTime(s.ArrivedAt),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(s.ID),
		r.setNumber(s.Number),
		r.setMode(s.Mode),
		r.setMaxWeight(s.MaxWeight),
		r.setDistance(s.Distance),
		s.Availability.Validate(),
		s.Progress.Validate(),
		r.setParcelIDs(s.ParcelIDs),
	); err != nil {
		return nil, err
	}

	if s.Progress != Pending && s.Availability != Closed {
		return nil, errs.NewLegalityError(
			fmt.Sprintf("run %s is %s while %s", s.ID, s.Progress, s.Availability),
		)
	}

	r.availability = s.Availability
	r.progress = s.Progress
	return r, nil
}

// Validate ensures the Run was built through NewRun or RestoreRun.
func (r *Run) Validate() error {
	if r == nil {
		return ErrRunIsNotConstructed
	}
	return r.guard.Validate(ErrRunIsNotConstructed)
}

// IsEqual compares two runs by id.
func (r *Run) IsEqual(other *Run) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the unique identifier of the run.
func (r *Run) ID() kernel.UUID {
	return r.id
}

// Number returns the human-readable run label.
func (r *Run) Number() string {
	return r.number
}

// Mode returns the transport mode every parcel on the run is priced for.
func (r *Run) Mode() kernel.TransportMode {
	return r.mode
}

// MaxWeight returns the load capacity in kilograms.
func (r *Run) MaxWeight() kernel.Weight {
	return r.maxWeight
}

// Distance returns the leg length in kilometres.
func (r *Run) Distance() kernel.Distance {
	return r.distance
}

// Availability tells whether the run still accepts parcels.
func (r *Run) Availability() Availability {
	return r.availability
}

// Progress tells where the run is on its leg.
func (r *Run) Progress() Progress {
	return r.progress
}

// ParcelIDs returns a copy of the attached parcel ids in attachment order.
func (r *Run) ParcelIDs() []kernel.UUID {
	return slices.Clone(r.parcelIDs)
}

// PriceTotal is the sum of the final tariffs of the attached parcels.
func (r *Run) PriceTotal() kernel.Money {
	return r.priceTotal
}

// CreatedAt returns when the run was opened.
func (r *Run) CreatedAt() time.Time {
	return r.createdAt
}

// DepartedAt is set by Depart.
func (r *Run) DepartedAt() *time.Time {
	return copyTime(r.departedAt)
}

// ArrivedAt is the real arrival time, set by Arrive.
func (r *Run) ArrivedAt() *time.Time {
	return copyTime(r.arrivedAt)
}

// IsOpen reports whether the run is OUVERT.
func (r *Run) IsOpen() bool {
	return r.availability == Open
}

// HasParcel reports whether parcelID is in the run's id list.
func (r *Run) HasParcel(parcelID kernel.UUID) bool {
	return r.indexOf(parcelID) >= 0
}

// Close seals the run. Closing a run that is already FERME is illegal.
func (r *Run) Close() error {
	if err := r.CanApply(Close); err != nil {
		return err
	}
	r.availability = Closed
	return nil
}

// Reopen unseals a FERME run that has not departed.
func (r *Run) Reopen() error {
	if err := r.CanApply(Reopen); err != nil {
		return err
	}
	r.availability = Open
	return nil
}

// Depart moves a sealed EN_ATTENTE run to EN_COURS and records the departure time.
func (r *Run) Depart(at time.Time) error {
	if err := r.CanApply(Depart); err != nil {
		return err
	}
	r.progress = InTransit
	r.departedAt = &at
	return nil
}

// Arrive moves an EN_COURS run to ARRIVE and records the real arrival time.
func (r *Run) Arrive(at time.Time) error {
	if err := r.CanApply(Arrive); err != nil {
		return err
	}
	r.progress = Arrived
	r.arrivedAt = &at
	return nil
}

// Apply dispatches a Transition to Close, Reopen, Depart or Arrive.
func (r *Run) Apply(t Transition, at time.Time) error {
	switch t {
	case Close:
		return r.Close()
	case Reopen:
		return r.Reopen()
	case Depart:
		return r.Depart(at)
	case Arrive:
		return r.Arrive(at)
	default:
		return t.Validate()
	}
}

// CanApply returns nil when t is legal from the run's current axes and a
// LegalityError describing the blocking state otherwise.
func (r *Run) CanApply(t Transition) error {
	if err := t.Validate(); err != nil {
		return err
	}

	var reason string
	switch t {
	case Close:
		if r.availability != Open {
			reason = fmt.Sprintf("is already %s", r.availability)
		}
	case Reopen:
		switch {
		case r.availability != Closed:
			reason = fmt.Sprintf("is already %s", r.availability)
		case r.progress != Pending:
			reason = fmt.Sprintf("is %s and can no longer be reopened", r.progress)
		}
	case Depart:
		switch {
		case r.progress != Pending:
			reason = fmt.Sprintf("is %s, departure needs %s", r.progress, Pending)
		case r.availability != Closed:
			reason = fmt.Sprintf("must be %s before it departs", Closed)
		}
	case Arrive:
		if r.progress != InTransit {
			reason = fmt.Sprintf("is %s, arrival needs %s", r.progress, InTransit)
		}
	}

	if reason != "" {
		return errs.NewLegalityError(fmt.Sprintf("run %s %s: %s", r.number, reason, t))
	}
	return nil
}

// Load appends parcelID and adds its tariff to the price total. The weight
// bound is checked by the capacity ledger before Load is called.
func (r *Run) Load(parcelID kernel.UUID, tariff kernel.Money) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	if r.availability == Closed {
		return errs.NewCapacityError(fmt.Sprintf("run %s", r.number), "run is sealed and takes no new parcels")
	}
	if r.HasParcel(parcelID) {
		return errs.NewLegalityError(fmt.Sprintf("parcel %s is already loaded on run %s", parcelID, r.number))
	}

	r.parcelIDs = append(r.parcelIDs, parcelID)
	r.priceTotal = r.priceTotal.Add(tariff)
	return nil
}

// Unload removes parcelID and takes its tariff off the price total. It is
// legal in every state.
func (r *Run) Unload(parcelID kernel.UUID, tariff kernel.Money) error {
	i := r.indexOf(parcelID)
	if i < 0 {
		return errs.NewObjectNotFoundError(fmt.Sprintf("parcel on run %s", r.number), parcelID)
	}

	r.parcelIDs = slices.Delete(r.parcelIDs, i, i+1)
	r.priceTotal = r.priceTotal.Sub(tariff)
	return nil
}

// Reprice replaces the price total, used after the run's parcels were re-read.
func (r *Run) Reprice(total kernel.Money) {
	r.priceTotal = total
}

// Clone returns a deep copy sharing no slices or pointers with r.
func (r *Run) Clone() *Run {
	c := *r
	c.parcelIDs = slices.Clone(r.parcelIDs)
	c.departedAt = copyTime(r.departedAt)
	c.arrivedAt = copyTime(r.arrivedAt)
	return &c
}

func (r *Run) indexOf(parcelID kernel.UUID) int {
	return slices.IndexFunc(r.parcelIDs, func(id kernel.UUID) bool {
		return id.IsEqual(parcelID)
	})
}

func (r *Run) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Run) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("run number")
	}
	r.number = number
	return nil
}

func (r *Run) setMode(mode kernel.TransportMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	r.mode = mode
	return nil
}

func (r *Run) setMaxWeight(maxWeight kernel.Weight) error {
	if err := maxWeight.Validate(); err != nil {
		return err
	}
	if maxWeight.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("max weight is invalid", errors.New("0 is not greater than 0"))
	}
	r.maxWeight = maxWeight
	return nil
}

func (r *Run) setDistance(distance kernel.Distance) error {
	if err := distance.Validate(); err != nil {
		return err
	}
	r.distance = distance
	return nil
}

func (r *Run) setParcelIDs(ids []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(ids))
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"parcel ids are invalid",
				fmt.Errorf("%s is listed twice", id),
			)
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	r.parcelIDs = out
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}
