package seeds

import (
	"context"
	"log"

	"modulku_backend/internals/features/catalog/repository"
	catalogSeed "modulku_backend/internals/seeds/catalog"
)

func RunAllSeeds(ctx context.Context, store repository.Store) {
	//* Catalog
	if err := catalogSeed.SeedDefaultCatalog(ctx, store); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}
}
