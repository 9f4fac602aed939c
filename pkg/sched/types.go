package sched

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Algorithm identifies a head scheduling strategy
type Algorithm string

const (
	AlgFCFS  Algorithm = "FCFS"
	AlgSSTF  Algorithm = "SSTF"
	AlgSCAN  Algorithm = "SCAN"
	AlgCSCAN Algorithm = "C-SCAN"
	AlgLOOK  Algorithm = "LOOK"
	AlgCLOOK Algorithm = "C-LOOK"
)

// DefaultAlgorithm is used by Execute when handed an algorithm it does not know.
const DefaultAlgorithm = AlgFCFS

// Algorithms returns the supported algorithms in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgFCFS, AlgSSTF, AlgSCAN, AlgCSCAN, AlgLOOK, AlgCLOOK}
}

// ParseAlgorithm resolves a user supplied algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "CSCAN":
		return AlgCSCAN, nil
	case "CLOOK":
		return AlgCLOOK, nil
	}
	for _, alg := range Algorithms() {
		if string(alg) == name {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Known reports whether a is one of the supported algorithms.
func (a Algorithm) Known() bool {
	for _, alg := range Algorithms() {
		if alg == a {
			return true
		}
	}
	return false
}

// UsesDirection reports whether the initial sweep direction affects a.
func (a Algorithm) UsesDirection() bool {
	return a == AlgSCAN || a == AlgLOOK
}

// Describe returns the long name of the algorithm
func (a Algorithm) Describe() string {
	switch a {
	case AlgFCFS:
		return "First Come First Serve"
	case AlgSSTF:
		return "Shortest Seek Time First"
	case AlgSCAN:
		return "Elevator"
	case AlgCSCAN:
		return "Circular SCAN"
	case AlgLOOK:
		return "LOOK"
	case AlgCLOOK:
		return "Circular LOOK"
	default:
		return "unknown"
	}
}

// Direction is the initial sweep orientation for SCAN and LOOK
type Direction int

const (
	DirectionLower  Direction = iota // Toward track 0 (default)
	DirectionHigher                  // Toward the last track
)

// ParseDirection resolves a user supplied direction name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left", "lower", "down", "decreasing":
		return DirectionLower, nil
	case "right", "higher", "up", "increasing":
		return DirectionHigher, nil
	default:
		return DirectionLower, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

func (d Direction) String() string {
	if d == DirectionHigher {
		return "right"
	}
	return "left"
}

// StepKind distinguishes serviced requests from synthetic head movements.
type StepKind int

const (
	StepService StepKind = iota // Head moved to a queued request
	StepBounce                  // Head moved to a disk edge before reversing
	StepWrap                    // Head returned to track 0, charged a full sweep
)

func (k StepKind) String() string {
	switch k {
	case StepBounce:
		return "bounce"
	case StepWrap:
		return "wrap"
	default:
		return "service"
	}
}

// MarshalText encodes the kind by name.
func (k StepKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Step is a single head movement.
type Step struct {
	From     int      `json:"from"`
	To       int      `json:"to"`
	Distance int      `json:"distance"`
	Kind     StepKind `json:"kind"`
}

// Metrics is the trajectory and performance summary of one scheduling run.
//
// Path starts with the initial head position and has one more entry than
// Steps. SeekCount equals the number of queued requests; bounce and wrap
// steps add to TotalSeekTime but never to SeekCount.
type Metrics struct {
	Algorithm     Algorithm
	TotalSeekTime int
	SeekCount     int
	Path          []int
	Steps         []Step
}

// AverageSeekTime returns TotalSeekTime/SeekCount. ok is false for an empty queue,
// where the average is undefined.
func (m Metrics) AverageSeekTime() (avg float64, ok bool) {
	if m.SeekCount == 0 {
		return 0, false
	}
	return float64(m.TotalSeekTime) / float64(m.SeekCount), true
}

// Bounces returns the number of synthetic boundary and wrap steps.
func (m Metrics) Bounces() int {
	n := 0
	for _, s := range m.Steps {
		if s.Kind != StepService {
			n++
		}
	}
	return n
}

type metricsJSON struct {
	Algorithm       Algorithm `json:"algorithm"`
	TotalSeekTime   int       `json:"totalSeekTime"`
	SeekCount       int       `json:"seekCount"`
	AverageSeekTime *float64  `json:"averageSeekTime"`
	Path            []int     `json:"path"`
	Steps           []Step    `json:"steps"`
}

// MarshalJSON encodes an undefined average as null.
func (m Metrics) MarshalJSON() ([]byte, error) {
	out := metricsJSON{
		Algorithm:     m.Algorithm,
		TotalSeekTime: m.TotalSeekTime,
		SeekCount:     m.SeekCount,
		Path:          m.Path,
		Steps:         m.Steps,
	}
	if avg, ok := m.AverageSeekTime(); ok {
		out.AverageSeekTime = &avg
	}
	return json.Marshal(out)
}

// Request bundles the inputs of one scheduling run.
type Request struct {
	Algorithm Algorithm
	Requests  []int
	Head      int
	DiskSize  int
	Direction Direction
}
