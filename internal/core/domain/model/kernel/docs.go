// Package kernel contains shared value objects used across the domain model.
// These are the building blocks every aggregate depends on, with no
// dependencies on other domain packages.
package kernel
