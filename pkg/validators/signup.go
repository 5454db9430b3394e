package validators

import (
	"errors"
	"time"
)

var (
	ErrFullNameEmpty = errors.New("no full name provided")
	ErrDOBInvalid    = errors.New("date of birth must be in YYYY-MM-DD format")
	ErrDOBInFuture   = errors.New("date of birth can't be in the future")
)

func FullNameValidator(n string) error {
	if n == "" {
		return ErrFullNameEmpty
	}

	return nil
}

// DOBValidator parses a YYYY-MM-DD date of birth and rejects future dates.
func DOBValidator(d string) (time.Time, error) {
	dob, err := time.Parse("2006-01-02", d)
	if err != nil {
		return time.Time{}, ErrDOBInvalid
	}

	if dob.After(time.Now()) {
		return time.Time{}, ErrDOBInFuture
	}

	return dob, nil
}
