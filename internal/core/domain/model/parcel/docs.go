// Package parcel implements the Parcel aggregate and the parcel status state
// machine.
//
// Key business rules:
//   - Parcels are created in EN_ATTENTE and unattached; the engine prices
//     them when it attaches them, and floors unattached ones at the minimum
//   - Status changes follow the transition table in status.go and nothing else
//   - Arrival, recovery and loss timestamps are set only on the matching
//     transition
//   - A toxicity tier is carried by chemical goods and by nothing else
package parcel
