package http

import (
	"errors"
	"strings"
	"testing"

	"claims-backoffice/internal/domain/apperr"
)

func containsFieldMsg(list []apperr.FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestHex32Validation(t *testing.T) {
	type P struct {
		PartnerID string `json:"partnerId" validate:"hex32"`
	}
	cv := NewValidator()

	ok := P{PartnerID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		err := cv.Validate(P{PartnerID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "partnerId", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Balance float64 `json:"balance" validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{1.29, 2.00, 0.9, -1250.5} {
		if err := cv.Validate(P{Balance: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Balance: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "balance", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestEnumTags(t *testing.T) {
	type P struct {
		Priority string `json:"priority" validate:"omitempty,casepriority"`
		Status   string `json:"status" validate:"omitempty,claimstatus"`
		Type     string `json:"type" validate:"omitempty,partnertype"`
		Role     string `json:"role" validate:"omitempty,userrole"`
		DocType  string `json:"documentType" validate:"omitempty,doctype"`
	}
	cv := NewValidator()
	if err := cv.Validate(P{Priority: "high", Status: "PENDING_OS_DOCS", Type: "BODYSHOP", Role: "ADMIN", DocType: "V5C"}); err != nil {
		t.Fatalf("valid enums rejected: %v", err)
	}
	if err := cv.Validate(P{}); err != nil {
		t.Fatalf("empty optional enums rejected: %v", err)
	}

	err := cv.Validate(P{Priority: "URGENT", Status: "WAITING", Type: "GARAGE", Role: "ROOT", DocType: "v5c"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)
	for field, msg := range map[string]string{
		"priority":     "LOW, MEDIUM, HIGH",
		"status":       "valid claim status",
		"type":         "valid partner type",
		"role":         "USER, PARTNER, ADMIN",
		"documentType": "^[A-Z]",
	} {
		if !containsFieldMsg(fe, field, msg) {
			t.Fatalf("missing %s message for %s: %+v", msg, field, fe)
		}
	}
}

func TestRequiredAndNestedNames(t *testing.T) {
	type Row struct {
		LastFour string `json:"lastFour" validate:"omitempty,len=4,numeric"`
	}
	type P struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"omitempty,email"`
		Rows  []Row  `json:"rows" validate:"dive"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Email: "nope", Rows: []Row{{LastFour: "1234"}, {LastFour: "12"}}})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "name", "is required") {
		t.Fatalf("missing 'is required' for name: %+v", fe)
	}
	if !containsFieldMsg(fe, "email", "valid email") {
		t.Fatalf("missing email message: %+v", fe)
	}
	if !containsFieldMsg(fe, "rows[1].lastFour", "exactly 4") {
		t.Fatalf("missing nested len message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
