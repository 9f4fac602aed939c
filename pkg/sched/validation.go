package sched

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/ha1tch/seekplot/pkg/disk"
)

// Validate checks a request against the disk extent it names. All problems are
// reported together; errors.Is matches each underlying sentinel.
func (r Request) Validate() error {
	var err error

	if !r.Algorithm.Known() {
		err = multierr.Append(err, &ValidationError{
			Field:   "Algorithm",
			Message: fmt.Sprintf("unsupported algorithm %q", r.Algorithm),
			Err:     ErrUnknownAlgorithm,
		})
	}

	extent, sizeErr := disk.NewExtent(r.DiskSize)
	if sizeErr != nil {
		// Head and requests cannot be range checked without a valid extent.
		return multierr.Append(err, &ValidationError{
			Field:   "DiskSize",
			Message: "disk size must be greater than 0",
			Err:     ErrInvalidDiskSize,
		})
	}

	if !extent.Contains(r.Head) {
		err = multierr.Append(err, &ValidationError{
			Field:   "Head",
			Message: fmt.Sprintf("head position must be between 0 and %d, got %d", extent.Last(), r.Head),
			Err:     ErrInvalidHead,
		})
	}

	if len(r.Requests) == 0 {
		return multierr.Append(err, &ValidationError{
			Field:   "Requests",
			Message: "at least one track request is required",
			Err:     ErrEmptyQueue,
		})
	}

	var invalid []string
	for _, t := range r.Requests {
		if !extent.Contains(t) {
			invalid = append(invalid, strconv.Itoa(t))
		}
	}
	if len(invalid) > 0 {
		err = multierr.Append(err, &ValidationError{
			Field: "Requests",
			Message: fmt.Sprintf("invalid requests: %s. All requests must be between 0 and %d",
				strings.Join(invalid, ", "), extent.Last()),
			Err: ErrInvalidRequest,
		})
	}

	return err
}
