package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/bytedance/sonic"

	catalogModel "modulku_backend/internals/features/catalog/model"
	"modulku_backend/internals/features/catalog/repository"
)

//go:embed data_catalog.json
var defaultCatalogJSON []byte

type CatalogSeed struct {
	Modules    []catalogModel.ModuleModel    `json:"modules"`
	Submodules []catalogModel.SubmoduleModel `json:"submodules"`
}

// SeedDefaultCatalog loads the built-in starter catalog.
func SeedDefaultCatalog(ctx context.Context, store repository.Store) error {
	return SeedCatalogFromJSON(ctx, store, defaultCatalogJSON)
}

func SeedCatalogFromJSON(ctx context.Context, store repository.Store, raw []byte) error {
	var seed CatalogSeed
	if err := sonic.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("decode catalog seed: %w", err)
	}

	if err := store.Load(ctx, seed.Modules, seed.Submodules); err != nil {
		return fmt.Errorf("load catalog seed: %w", err)
	}
	log.Printf("📥 Seeded %d modules, %d submodules", len(seed.Modules), len(seed.Submodules))
	return nil
}
