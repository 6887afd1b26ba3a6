// Package kernel provides the value objects shared by the parcel and cargo
// aggregates and by the tariff calculator:
//   - UUID: identity of runs and parcels
//   - Weight, Distance: positive decimal quantities (kilograms, kilometres)
//   - Money: non-negative decimal tariff amounts
//   - TransportMode: closed enum of road, sea and air with fixed wire names
//   - GoodsCategory: open set of goods classifications
//
// Values are immutable; zero values of guarded types fail Validate.
package kernel
