package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"srtf-simulator/internal/core"
)

// Validate checks specs against the scheduling preconditions and returns
// every violation it finds, joined.
func Validate(specs []core.ProcessSpec) error {
	if len(specs) == 0 {
		return &ValidationError{Index: -1, Reason: "empty process set"}
	}

	var errs []error
	seen := make(map[string]int, len(specs))
	for i, spec := range specs {
		if strings.TrimSpace(spec.Name) == "" {
			errs = append(errs, &ValidationError{Index: i, Reason: "name must not be empty"})
		} else if first, ok := seen[spec.Name]; ok {
			errs = append(errs, &ValidationError{
				Index:  i,
				Name:   spec.Name,
				Reason: fmt.Sprintf("duplicate name, already used by process #%d", first),
			})
		} else {
			seen[spec.Name] = i
		}
		if spec.ArrivalTime < 0 {
			errs = append(errs, &ValidationError{
				Index:  i,
				Name:   spec.Name,
				Reason: fmt.Sprintf("negative arrival time %d", spec.ArrivalTime),
			})
		}
		if spec.BurstTime < 1 {
			errs = append(errs, &ValidationError{
				Index:  i,
				Name:   spec.Name,
				Reason: fmt.Sprintf("non-positive burst time %d", spec.BurstTime),
			})
		}
	}
	return errors.Join(errs...)
}

func validateMaxTime(specs []core.ProcessSpec, maxTime int) error {
	if maxTime <= 0 {
		return nil
	}
	var errs []error
	for i, spec := range specs {
		if spec.ArrivalTime > maxTime {
			errs = append(errs, &ValidationError{
				Index:  i,
				Name:   spec.Name,
				Reason: fmt.Sprintf("arrival time %d exceeds limit %d", spec.ArrivalTime, maxTime),
			})
		}
		if spec.BurstTime > maxTime {
			errs = append(errs, &ValidationError{
				Index:  i,
				Name:   spec.Name,
				Reason: fmt.Sprintf("burst time %d exceeds limit %d", spec.BurstTime, maxTime),
			})
		}
	}
	return errors.Join(errs...)
}
