// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - AssignmentEngine: claims a courier affiliation for a Ready order and
//     releases it after delivery, keeping order and affiliation state in sync
//
// Domain services coordinate between aggregates, implementing business logic
// that does not naturally belong to a single aggregate root.
package services
