package notebook

import (
	"errors"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"My Notes", "My-Notes"},
		{"Notebook", "Notebook"},
		{"a  b", "a--b"},
		{"already-normal", "already-normal"},
	}

	for _, tt := range tests {
		got := NormalizeName(tt.input)
		if got != tt.expected {
			t.Errorf("NormalizeName(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
		if again := NormalizeName(got); again != got {
			t.Errorf("NormalizeName not idempotent for %q: %q -> %q", tt.input, got, again)
		}
	}
}

func TestNormalizeClasses(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Math, CS", "Math,CS"},
		{"class1,class2,class3", "class1,class2,class3"},
		{"Comp Sci,  Art History", "Comp-Sci,Art-History"},
		{"Math ,CS", "Math-,CS"},
	}

	for _, tt := range tests {
		got := NormalizeClasses(tt.input)
		if got != tt.expected {
			t.Errorf("NormalizeClasses(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
		if again := NormalizeClasses(got); again != got {
			t.Errorf("NormalizeClasses not idempotent for %q: %q -> %q", tt.input, got, again)
		}
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"Notebook", "My Notes", "cs_101", "fall-2024"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q): unexpected error %v", name, err)
		}
	}

	invalid := []string{"", "notes!", "a/b", "../up", "math.notes"}
	for _, name := range invalid {
		if err := ValidateName(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("ValidateName(%q): expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestValidateClasses(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"class1,class2,class3", true},
		{"Math, CS", true},
		{"Comp Sci", true},
		{"Math,,CS", false},
		{"Math,", false},
		{"Math,C++", false},
		{"", false},
	}

	for _, tt := range tests {
		err := ValidateClasses(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ValidateClasses(%q): unexpected error %v", tt.input, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidClasses) {
			t.Errorf("ValidateClasses(%q): expected ErrInvalidClasses, got %v", tt.input, err)
		}
	}
}
