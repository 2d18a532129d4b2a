package http

import (
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		LoanID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{LoanID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{LoanID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		found := false
		for _, e := range fe {
			if e.Field == "LoanID" && strings.Contains(e.Message, "32-char lowercase hex") {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, f := range []float64{0, 100, 100.5, 120000.12, 0.01, 99999999.99} {
		if err := cv.Validate(P{Amount: f}); err != nil {
			t.Errorf("expected %v to pass dec2, got err: %v", f, err)
		}
	}

	for _, f := range []float64{0.001, 100.555, 1.0 / 3.0} {
		err := cv.Validate(P{Amount: f})
		if err == nil {
			t.Errorf("expected %v to fail dec2", f)
			continue
		}
		fe := ToFieldErrors(err)
		if len(fe) != 1 || !strings.Contains(fe[0].Message, "2 decimal places") {
			t.Errorf("unexpected field errors for %v: %+v", f, fe)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	type P struct {
		Name     string  `validate:"required"`
		Email    string  `validate:"required,email"`
		Password string  `validate:"required,min=8"`
		Amount   float64 `validate:"gt=0"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Email: "not-an-email", Password: "short", Amount: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fe := ToFieldErrors(err)

	want := map[string]string{
		"Name":     "is required",
		"Email":    "valid email",
		"Password": "at least 8",
		"Amount":   "greater than 0",
	}
	for field, fragment := range want {
		found := false
		for _, e := range fe {
			if e.Field == field && strings.Contains(e.Message, fragment) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing %q message for %s, got: %+v", fragment, field, fe)
		}
	}
}
