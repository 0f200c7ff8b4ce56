// Package testutil provides test doubles for the chefops capability
// seams: an in-memory filesystem, scriptable process runner, map-backed
// inputs and environment, and a spy reporter.
package testutil
