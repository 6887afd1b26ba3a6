package parcel

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not built through
	// NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel is a shipped item, or a declared group of identical items, priced and
// tracked as one unit.
//
// Invariants:
//   - weight is positive and count is at least 1
//   - toxicityTier is set exactly when the category is chemical
//   - status changes only along the transition table
//   - arrivedAt, recoveredAt and lostAt are set only by the matching transition
type Parcel struct {
	id           kernel.UUID
	runID        *kernel.UUID
	weight       kernel.Weight
	category     kernel.GoodsCategory
	count        int
	toxicityTier *int

	// baseTariff is the raw price before the minimum is applied.
	baseTariff  kernel.Money
	finalTariff kernel.Money

	status      Status
	createdAt   time.Time
	arrivedAt   *time.Time
	recoveredAt *time.Time
	lostAt      *time.Time

	guard guard.ConstructorGuard
}

// State is the full persisted shape of a parcel, used by RestoreParcel.
type State struct {
	ID           kernel.UUID
	RunID        *kernel.UUID
	Weight       kernel.Weight
	Category     kernel.GoodsCategory
	Count        int
	ToxicityTier *int
	BaseTariff   kernel.Money
	FinalTariff  kernel.Money
	Status       Status
	CreatedAt    time.Time
	ArrivedAt    *time.Time
	RecoveredAt  *time.Time
	LostAt       *time.Time
}

// NewParcel creates an unattached, unpriced parcel in EN_ATTENTE.
//
//	p, err := parcel.NewParcel(kernel.NewUUID(), weight, kernel.Food, 1, nil, now)
func NewParcel(
	id kernel.UUID,
	weight kernel.Weight,
	category kernel.GoodsCategory,
	count int,
	toxicityTier *int,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setWeight(weight),
		p.setCategory(category),
		p.setCount(count),
		ValidateToxicityTier(category, toxicityTier),
	); err != nil {
		return nil, err
	}

	p.toxicityTier = copyInt(toxicityTier)
	return p, nil
}

// RestoreParcel rebuilds a parcel from storage, validating the same invariants
// as NewParcel plus the status value.
func RestoreParcel(s State) (*Parcel, error) {
	p := &Parcel{
		baseTariff:  s.BaseTariff,
		finalTariff: s.FinalTariff,
		createdAt:   s.CreatedAt,
		arrivedAt:   copyTime(s.ArrivedAt),
		recoveredAt: copyTime(s.RecoveredAt),
		lostAt:      copyTime(s.LostAt),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(s.ID),
		p.setRunID(s.RunID),
		p.setWeight(s.Weight),
		p.setCategory(s.Category),
		p.setCount(s.Count),
		ValidateToxicityTier(s.Category, s.ToxicityTier),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	p.toxicityTier = copyInt(s.ToxicityTier)
	p.status = s.Status
	return p, nil
}

// Validate returns ErrParcelIsNotConstructed for a nil or zero-value Parcel.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the unique identifier of the parcel.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// RunID returns the owning run, or nil while unattached.
func (p *Parcel) RunID() *kernel.UUID {
	if p.runID == nil {
		return nil
	}
	id := *p.runID
	return &id
}

// Weight returns the weight of one item in kilograms.
func (p *Parcel) Weight() kernel.Weight {
	return p.weight
}

// Category returns the goods category the tariff is looked up by.
func (p *Parcel) Category() kernel.GoodsCategory {
	return p.category
}

// Count is the declared number of identical items the tariff is multiplied by.
func (p *Parcel) Count() int {
	return p.count
}

// ToxicityTier returns a copy of the tier for chemical goods, nil otherwise.
func (p *Parcel) ToxicityTier() *int {
	return copyInt(p.toxicityTier)
}

// BaseTariff returns the raw price before the minimum is applied.
func (p *Parcel) BaseTariff() kernel.Money {
	return p.baseTariff
}

// FinalTariff returns the price charged, never below the minimum once priced.
func (p *Parcel) FinalTariff() kernel.Money {
	return p.finalTariff
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// CreatedAt returns when the parcel was registered.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// ArrivedAt is set by the move to ARRIVE.
func (p *Parcel) ArrivedAt() *time.Time {
	return copyTime(p.arrivedAt)
}

// RecoveredAt is set by the move to RECUPERE.
func (p *Parcel) RecoveredAt() *time.Time {
	return copyTime(p.recoveredAt)
}

// LostAt is set by the move to PERDU.
func (p *Parcel) LostAt() *time.Time {
	return copyTime(p.lostAt)
}

// IsAttachedTo reports whether the parcel belongs to the given run.
func (p *Parcel) IsAttachedTo(runID kernel.UUID) bool {
	return p.runID != nil && p.runID.IsEqual(runID)
}

// TransitionTo moves the parcel to status `to` and stamps the timestamp that
// belongs to the target status, if any. Illegal moves leave the parcel intact.
func (p *Parcel) TransitionTo(to Status, at time.Time) error {
	next, err := p.status.TransitionTo(to)
	if err != nil {
		return errs.NewLegalityErrorWithCause(fmt.Sprintf("parcel %s", p.id), err)
	}

	stamp := at
	switch next {
	case Arrived:
		p.arrivedAt = &stamp
	case Recovered:
		p.recoveredAt = &stamp
	case Lost:
		p.lostAt = &stamp
	default:
	}

	p.status = next
	return nil
}

// Reprice stores the raw and final tariff computed for the parcel's run.
func (p *Parcel) Reprice(base, final kernel.Money) error {
	if final.LessThan(base) {
		return errs.NewValueIsInvalidErrorWithCause(
			"final tariff is invalid",
			fmt.Errorf("%s is below the base tariff %s", final, base),
		)
	}
	p.baseTariff = base
	p.finalTariff = final
	return nil
}

// AttachTo records the owning run. A parcel belongs to at most one run.
func (p *Parcel) AttachTo(runID kernel.UUID) error {
	if err := runID.Validate(); err != nil {
		return err
	}
	if p.runID != nil {
		return errs.NewLegalityError(fmt.Sprintf("parcel %s is already attached to run %s", p.id, p.runID))
	}
	p.runID = &runID
	return nil
}

// Detach clears the owning run. Tariffs are kept until the next attach reprices them.
func (p *Parcel) Detach() {
	p.runID = nil
}

// Clone returns a deep copy sharing no pointers with p.
func (p *Parcel) Clone() *Parcel {
	c := *p
	c.runID = p.RunID()
	c.toxicityTier = copyInt(p.toxicityTier)
	c.arrivedAt = copyTime(p.arrivedAt)
	c.recoveredAt = copyTime(p.recoveredAt)
	c.lostAt = copyTime(p.lostAt)
	return &c
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setRunID(runID *kernel.UUID) error {
	if runID == nil {
		return nil
	}
	if err := runID.Validate(); err != nil {
		return err
	}
	id := *runID
	p.runID = &id
	return nil
}

func (p *Parcel) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	if weight.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", errors.New("0 is not greater than 0"))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setCategory(category kernel.GoodsCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Parcel) setCount(count int) error {
	if count < 1 {
		return errs.NewValueIsInvalidErrorWithCause("count is invalid", fmt.Errorf("%d is less than 1", count))
	}
	p.count = count
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}
