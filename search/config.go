// Package search drives the five-stage coordination-site search over a
// crystal's existing atoms: a sequential sphere-sphere scan, a parallel
// circle sweep, a parallel single-site directional sweep, a parallel
// double-site circle sweep, and a final merge/dedup pass.
package search

import "gonum.org/v1/gonum/spatial/r3"

// ToCheckAtom is one existing atom the search probes outward from.
type ToCheckAtom struct {
	AtomID int
	Point  r3.Vec
}

// Config holds the atoms to probe and the bondlength every candidate
// site is searched at.
type Config struct {
	ToCheck    []ToCheckAtom
	Bondlength float64
}

func NewConfig(toCheck []ToCheckAtom, bondlength float64) Config {
	return Config{ToCheck: toCheck, Bondlength: bondlength}
}
