// Package cargo implements the cargo Run aggregate.
//
// A run has two status axes. Availability (OUVERT, FERME) says whether it still
// takes parcels; progress (EN_ATTENTE, EN_COURS, ARRIVE) is its transport phase.
// The axes move independently with one coupling: a run must be FERME to leave
// EN_ATTENTE, and it can be reopened only while it is still EN_ATTENTE.
//
// Lifecycle:
//
//	OUVERT/EN_ATTENTE --close--> FERME/EN_ATTENTE --depart--> FERME/EN_COURS --arrive--> FERME/ARRIVE
//	FERME/EN_ATTENTE --reopen--> OUVERT/EN_ATTENTE
package cargo
