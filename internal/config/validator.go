package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid job file")

// Validate checks the job file for:
//   - At least one job
//   - Unique, non-empty job names
//   - Known kind, algorithm and membership values
//   - The inputs each kind needs
func Validate(cfg *JobFile) error {
	if len(cfg.Jobs) == 0 {
		return errors.Wrap(ErrInvalid, "no jobs")
	}
	seen := make(map[string]int) // name → index
	var errs []string

	for i, j := range cfg.Jobs {
		if j.Name == "" {
			errs = append(errs, fmt.Sprintf("jobs[%d]: name is required", i))
			continue
		}
		loc := fmt.Sprintf("job %s", j.Name)
		if prev, ok := seen[j.Name]; ok {
			errs = append(errs, fmt.Sprintf("duplicate name %q (jobs[%d] and jobs[%d])", j.Name, prev, i))
		} else {
			seen[j.Name] = i
		}

		switch j.Algorithm {
		case AlgorithmAStar, AlgorithmIDAStar:
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown algorithm %q", loc, j.Algorithm))
		}
		switch j.Membership {
		case MembershipPathSet, MembershipLinearScan:
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown membership %q", loc, j.Membership))
		}

		if j.Deadline < 0 {
			errs = append(errs, fmt.Sprintf("%s: deadline must not be negative", loc))
		}

		hasInput := j.Input != "" || j.File != ""
		if j.Input != "" && j.File != "" {
			errs = append(errs, fmt.Sprintf("%s: only one of input/file may be set", loc))
		}
		switch j.Kind {
		case KindSlide:
			if j.Size < 2 {
				errs = append(errs, fmt.Sprintf("%s: size must be at least 2", loc))
			}
			if !hasInput {
				errs = append(errs, fmt.Sprintf("%s: input (tiles) is required", loc))
			}
		case KindHill:
			if !hasInput {
				errs = append(errs, fmt.Sprintf("%s: input or file (map) is required", loc))
			}
			if j.MaxClimb != nil && *j.MaxClimb < 0 {
				errs = append(errs, fmt.Sprintf("%s: max_climb must not be negative", loc))
			}
		case KindRiddle:
			if !hasInput {
				errs = append(errs, fmt.Sprintf("%s: input (riddle) is required", loc))
			}
		case "":
			errs = append(errs, fmt.Sprintf("%s: kind is required", loc))
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown kind %q", loc, j.Kind))
		}
	}

	if len(errs) > 0 {
		return errors.Wrapf(ErrInvalid, "validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
