package notebook

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidName    = errors.New("invalid notebook name")
	ErrInvalidClasses = errors.New("invalid class name(s)")

	namePattern       = regexp.MustCompile(`^[\w\s-]+$`)
	commaSpacePattern = regexp.MustCompile(`, +`)
)

// NormalizeName turns spaces into hyphens: "My Notes" -> "My-Notes"
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, " ", "-")
}

// NormalizeClasses collapses ", " separators before hyphenating spaces:
// "Math, Comp Sci" -> "Math,Comp-Sci"
func NormalizeClasses(classes string) string {
	return NormalizeName(commaSpacePattern.ReplaceAllString(classes, ","))
}

// SplitClasses normalizes a comma-separated class list and splits it.
func SplitClasses(classes string) []string {
	return strings.Split(NormalizeClasses(classes), ",")
}

// ValidateName accepts a notebook name made of word characters, spaces and
// hyphens once normalized.
func ValidateName(name string) error {
	if !namePattern.MatchString(NormalizeName(name)) {
		return ErrInvalidName
	}
	return nil
}

// ValidateClasses requires every comma-separated token to be a valid name.
func ValidateClasses(classes string) error {
	valid := true
	for _, class := range SplitClasses(classes) {
		valid = valid && namePattern.MatchString(class)
	}
	if !valid {
		return ErrInvalidClasses
	}
	return nil
}
