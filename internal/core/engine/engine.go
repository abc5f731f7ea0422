// Package engine implements the rental property cash-flow simulation.
//
// Every function is pure: the same input always yields the same output, no
// component holds mutable state, and nothing here performs I/O. Invalid input
// never panics or errors; it yields an empty or zero-valued result so callers
// can report "not computable" instead of failing a request.
package engine

// MaxHoldingYears caps the projection horizon.
const MaxHoldingYears = 50

// Engine runs the simulation pipeline under one rounding policy.
// The zero value is not usable; construct with New.
type Engine struct {
	policy RoundingPolicy
}

// New creates an Engine using the given rounding policy.
func New(policy RoundingPolicy) *Engine {
	if policy.MoneyPlaces < 0 {
		policy.MoneyPlaces = 0
	}
	if policy.RatePlaces < 0 {
		policy.RatePlaces = DefaultRoundingPolicy.RatePlaces
	}
	return &Engine{policy: policy}
}

// Policy returns the rounding policy of the engine.
func (e *Engine) Policy() RoundingPolicy {
	return e.policy
}
