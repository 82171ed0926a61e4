// Package runner drives one trajectory generator per start value, in order,
// and hands the resulting snapshots to a visit callback.
//
// The only contract to implement is Trajectory (Next/Err), produced by a
// Factory. This keeps the runner swappable and testable.
package runner
