package provider

import (
	"context"
	"errors"
	"testing"

	"claims-backoffice/internal/domain/apperr"
	domain "claims-backoffice/internal/domain/provider"
	"claims-backoffice/internal/testutil/providermock"
)

func TestCreate_Validates(t *testing.T) {
	uc := NewUsecase(&providermock.Repo{
		CreateFn: func(context.Context, *domain.ServiceProvider) error { return nil },
	})
	p, err := uc.Create(context.Background(), ProviderInput{Type: "external", Name: " Rapid "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Type != domain.TypeExternal || p.Name != "Rapid" || len(p.ID) != 32 {
		t.Fatalf("unexpected provider %+v", p)
	}
	if _, err := uc.Create(context.Background(), ProviderInput{Type: "VENDOR", Name: "x"}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("want validation, got %v", err)
	}
	if _, err := uc.Create(context.Background(), ProviderInput{Type: "INTERNAL"}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("want validation, got %v", err)
	}
}

func TestSearch_BlankQuerySkipsRepo(t *testing.T) {
	called := false
	uc := NewUsecase(&providermock.Repo{
		SearchFn: func(_ context.Context, q string, limit int) ([]domain.ServiceProvider, error) {
			called = true
			if q != "rap" || limit != 5 {
				t.Fatalf("q=%q limit=%d", q, limit)
			}
			return nil, nil
		},
	})
	out, err := uc.Search(context.Background(), "  ", 5)
	if err != nil || called || len(out) != 0 {
		t.Fatalf("blank search: %v %v %v", out, err, called)
	}
	out, err = uc.Search(context.Background(), " rap ", 5)
	if err != nil || !called || out == nil {
		t.Fatalf("search: %v %v", out, err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	uc := NewUsecase(&providermock.Repo{
		GetByIDFn: func(context.Context, string) (*domain.ServiceProvider, error) { return nil, apperr.ErrNotFound },
	})
	if _, err := uc.Update(context.Background(), "x", ProviderInput{Type: "INTERNAL", Name: "n"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}
