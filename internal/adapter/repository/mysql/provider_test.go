package mysql

import (
	"context"
	"errors"
	"testing"

	"claims-backoffice/internal/domain/apperr"
	providerDomain "claims-backoffice/internal/domain/provider"
	"claims-backoffice/internal/testutil/testdb"
	"claims-backoffice/pkg/id"
)

func TestServiceProviderRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceProviderRepository(testdb.Open(t))

	seed := []providerDomain.ServiceProvider{
		{ID: id.NewID32(), Type: providerDomain.TypeExternal, Name: "Rapid Recovery", Email: "ops@rapid.example"},
		{ID: id.NewID32(), Type: providerDomain.TypeInternal, Name: "Desk Team", Email: "desk@recovery.example"},
		{ID: id.NewID32(), Type: providerDomain.TypeExternal, Name: "Glass 100%", Email: "g@glass.example"},
	}
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.Search(ctx, "recovery", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	// name and email both match
	if len(got) != 2 || got[0].Name != "Desk Team" {
		t.Fatalf("Search=%+v", got)
	}

	got, _ = repo.Search(ctx, "100%", 10)
	if len(got) != 1 || got[0].Name != "Glass 100%" {
		t.Fatalf("percent search=%+v", got)
	}

	if err := repo.Delete(ctx, seed[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, seed[0].ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	list, _ := repo.List(ctx)
	if len(list) != 2 {
		t.Fatalf("List=%d", len(list))
	}
}
