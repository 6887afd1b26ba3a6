// Package services holds the freight domain services: the pieces of business
// logic that span runs and parcels or have no aggregate of their own.
//
//   - TariffCalculator prices a parcel and enforces goods/mode legality
//   - TransitionValidator answers parcel and run status questions
//   - CapacityLedger attaches and detaches parcels within a run's weight bound
//   - Reconciler aligns parcel statuses with their run's progress
//   - BulkCoordinator applies one status to many parcels with partial success
//
// All of them are synchronous and hold no mutable state; time comes from an
// injected Clock.
package services
