package pipeline

import "fmt"

// Stage is one transform step in a processing chain. Implementations
// are pure: they never mutate their input signal and return a fresh
// one. Precondition violations are reported per call; a Stage never
// retries or substitutes defaults.
type Stage interface {
	Name() string
	Process(sig Signal) (Signal, error)
}

// Run applies stages to sig in order, stopping at the first error.
// The failing stage is named in the returned error.
func Run(sig Signal, stages ...Stage) (Signal, error) {
	current := sig
	for _, stage := range stages {
		next, err := stage.Process(current)
		if err != nil {
			return Signal{}, fmt.Errorf("pipeline: stage %s: %w", stage.Name(), err)
		}
		current = next
	}

	return current, nil
}

func requireDomain(sig Signal, stage string, flags Domain) error {
	if !sig.Domain.Has(flags) {
		return fmt.Errorf("%w: %s needs %s signal, got %s", ErrDomain, stage, flags, sig.Domain)
	}
	return nil
}
