package mysql

import (
	"errors"
	"testing"

	"claims-backoffice/internal/domain/apperr"

	"gorm.io/gorm"
)

func TestNotFound(t *testing.T) {
	if err := notFound(gorm.ErrRecordNotFound, "claim x"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	other := errors.New("db down")
	if err := notFound(other, "claim x"); err != other {
		t.Fatalf("other errors must pass through, got %v", err)
	}
}

func TestDuplicate(t *testing.T) {
	if err := duplicate(gorm.ErrDuplicatedKey, "email a@b.c"); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
	if err := duplicate(nil, "email a@b.c"); err != nil {
		t.Fatalf("nil must stay nil, got %v", err)
	}
}

func TestLikePattern(t *testing.T) {
	cases := map[string]string{
		"Ann":  "%ann%",
		"50%":  "%50!%%",
		"a_b":  "%a!_b%",
		"wow!": "%wow!!%",
		"":     "%%",
	}
	for in, want := range cases {
		if got := likePattern(in); got != want {
			t.Fatalf("likePattern(%q)=%q want %q", in, got, want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	for in, want := range map[int]int{0: 20, -1: 20, 5: 5, 100: 100, 101: 20} {
		if got := clampLimit(in); got != want {
			t.Fatalf("clampLimit(%d)=%d want %d", in, got, want)
		}
	}
}
