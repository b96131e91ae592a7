package main

// Component counts
const (
	pairComponents  = 2 // N, E
	threeComponents = 3 // N, E, Z
)

// Polarization windows overlap by half
const (
	defaultStepFraction = 0.5
)
