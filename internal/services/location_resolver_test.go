package services

import (
	"context"
	"testing"

	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

func TestResolver_DirectNameMatch(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	resolver := NewLocationResolver(DefaultResolverConfig(), newTestCatalogService(db))

	loc, err := resolver.Resolve(context.Background(), "ica")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc == nil || loc.Name != "ICA" {
		t.Errorf("Expected ICA, got %+v", loc)
	}
}

func TestResolver_SheetNameContainsLocation(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	resolver := NewLocationResolver(DefaultResolverConfig(), newTestCatalogService(db))

	// Bidirectional substring rule: the catalog name occurs inside the
	// sheet name.
	loc, err := resolver.Resolve(context.Background(), "INVENTARIO PISCO 2024")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc == nil || loc.Name != "PISCO" {
		t.Errorf("Expected PISCO, got %+v", loc)
	}
}

func TestResolver_AliasFallback(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	resolver := NewLocationResolver(DefaultResolverConfig(), newTestCatalogService(db))

	// OFICINA has no substring overlap with any catalog name and resolves
	// through the alias table.
	loc, err := resolver.Resolve(context.Background(), "Oficina")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc == nil || loc.Name != "LIMA" {
		t.Errorf("Expected LIMA via alias, got %+v", loc)
	}
}

func TestResolver_AliasFragmentMatchesLongerName(t *testing.T) {
	db := setupTestDB(t)
	seed := gormModels.Location{Name: "San Cristobal del Peru Ica"}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("Failed to seed location: %v", err)
	}
	resolver := NewLocationResolver(DefaultResolverConfig(), newTestCatalogService(db))

	// "SCP ICA" shares no substring with the catalog name, so resolution
	// goes through the alias and its ICA fragment matches inside the
	// longer name.
	loc, err := resolver.Resolve(context.Background(), "SCP ICA")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc == nil || loc.Name != "San Cristobal del Peru Ica" {
		t.Errorf("Expected the full catalog name via alias fragment, got %+v", loc)
	}
}

func TestResolver_UnresolvedSheetIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	resolver := NewLocationResolver(DefaultResolverConfig(), newTestCatalogService(db))

	loc, err := resolver.Resolve(context.Background(), "HOJA SIN SEDE")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc != nil {
		t.Errorf("Expected nil for unresolvable sheet, got %+v", loc)
	}
}

func TestResolver_EmptySheetName(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	resolver := NewLocationResolver(DefaultResolverConfig(), newTestCatalogService(db))

	loc, err := resolver.Resolve(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc != nil {
		t.Errorf("Expected nil for blank sheet name, got %+v", loc)
	}
}
