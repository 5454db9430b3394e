package validators

import (
	"errors"
	"unicode/utf8"
)

var (
	ErrTitleLength       = errors.New("title must be between 3 and 35 characters")
	ErrDescriptionLength = errors.New("description must be between 10 and 120 characters")
	ErrTagLength         = errors.New("tag must be between 3 and 8 characters")
)

func TitleValidator(t string) error {
	if n := utf8.RuneCountInString(t); n < 3 || n > 35 {
		return ErrTitleLength
	}

	return nil
}

func DescriptionValidator(d string) error {
	if n := utf8.RuneCountInString(d); n < 10 || n > 120 {
		return ErrDescriptionLength
	}

	return nil
}

func TagValidator(t string) error {
	if n := utf8.RuneCountInString(t); n < 3 || n > 8 {
		return ErrTagLength
	}

	return nil
}
