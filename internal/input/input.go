package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/multierr"

	"github.com/ha1tch/seekplot/pkg/sched"
)

// ErrNotInteger is returned for a request queue entry that is not a whole number.
var ErrNotInteger = errors.New("not an integer")

// ParseRequests reads a queue written as comma or whitespace separated track numbers.
func ParseRequests(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	requests := make([]int, 0, len(fields))
	var err error
	for _, f := range fields {
		n, convErr := strconv.Atoi(f)
		if convErr != nil {
			err = multierr.Append(err, fmt.Errorf("request %q: %w", f, ErrNotInteger))
			continue
		}
		requests = append(requests, n)
	}
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Form is the raw input of a single scheduling run, as typed by a user.
type Form struct {
	Algorithm string
	Requests  string
	Head      int
	DiskSize  int
	Direction string
}

// Request parses and validates the form.
func (f Form) Request() (sched.Request, error) {
	var err error

	alg, algErr := sched.ParseAlgorithm(f.Algorithm)
	err = multierr.Append(err, algErr)

	dir, dirErr := sched.ParseDirection(f.Direction)
	err = multierr.Append(err, dirErr)

	requests, reqErr := ParseRequests(f.Requests)
	err = multierr.Append(err, reqErr)

	if err != nil {
		return sched.Request{}, err
	}

	req := sched.Request{
		Algorithm: alg,
		Requests:  requests,
		Head:      f.Head,
		DiskSize:  f.DiskSize,
		Direction: dir,
	}
	if err := req.Validate(); err != nil {
		return sched.Request{}, err
	}
	return req, nil
}
