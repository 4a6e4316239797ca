package services

import (
	"context"
	"testing"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
)

func TestClassifier_ExactMatchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	classifier := NewTypeClassifier(DefaultClassifierConfig(), newTestCatalogService(db))

	got, err := classifier.Classify(context.Background(), "laptop")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Name != "Laptop" {
		t.Errorf("Expected Laptop, got %s", got.Name)
	}
}

func TestClassifier_KeywordMatchesWordPrefix(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	classifier := NewTypeClassifier(DefaultClassifierConfig(), newTestCatalogService(db))

	// MONITOR must match the plural at a word boundary.
	got, err := classifier.Classify(context.Background(), "MONITORES LG 24in")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Name != "Monitor" {
		t.Errorf("Expected Monitor, got %s", got.Name)
	}
}

func TestClassifier_LongestKeywordWinsOverShorter(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	classifier := NewTypeClassifier(DefaultClassifierConfig(), newTestCatalogService(db))

	// Both MONITOR and PC match; the longer keyword is tried first, so the
	// label names a monitor, not a PC.
	got, err := classifier.Classify(context.Background(), "MONITORES PARA PC")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Name != "Monitor" {
		t.Errorf("Expected Monitor, got %s", got.Name)
	}
}

func TestClassifier_PriorityBreaksSameLengthTie(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	classifier := NewTypeClassifier(DefaultClassifierConfig(), newTestCatalogService(db))

	// CELULAR and MONITOR are both seven characters; lexical order alone
	// would try CELULAR first, but MONITOR carries a higher priority.
	got, err := classifier.Classify(context.Background(), "CELULAR MONITOR LG")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Name != "Monitor" {
		t.Errorf("Expected Monitor via priority tiebreak, got %s", got.Name)
	}
}

func TestClassifier_KeywordDoesNotMatchInsideWord(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	classifier := NewTypeClassifier(DefaultClassifierConfig(), newTestCatalogService(db))

	// PC occurs inside TOPCO but not at a word boundary, so the label must
	// fall through to the fallback entry.
	got, err := classifier.Classify(context.Background(), "TOPCO")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Name != constants.FallbackTypeName {
		t.Errorf("Expected fallback %s, got %s", constants.FallbackTypeName, got.Name)
	}
}

func TestClassifier_SynonymMapsToCanonicalType(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	classifier := NewTypeClassifier(DefaultClassifierConfig(), newTestCatalogService(db))

	got, err := classifier.Classify(context.Background(), "Computadora de escritorio HP")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Name != "PC" {
		t.Errorf("Expected PC, got %s", got.Name)
	}
}

func TestClassifier_FallbackIsCreatedLazily(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	classifier := NewTypeClassifier(DefaultClassifierConfig(), newTestCatalogService(db))

	got, err := classifier.Classify(context.Background(), "ARTEFACTO DESCONOCIDO")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Name != constants.FallbackTypeName {
		t.Fatalf("Expected fallback, got %s", got.Name)
	}
	if got.Category != constants.CategoryOtros {
		t.Errorf("Expected category otros, got %s", got.Category)
	}

	// The fallback row now exists in the catalog and a second unknown label
	// converges on the same row.
	again, err := classifier.Classify(context.Background(), "OTRA COSA RARA")
	if err != nil {
		t.Fatalf("Second Classify failed: %v", err)
	}
	if again.ID != got.ID {
		t.Errorf("Expected same fallback row, got %s and %s", got.ID, again.ID)
	}
}

func TestClassifier_EmptyLabelYieldsFallback(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	classifier := NewTypeClassifier(DefaultClassifierConfig(), newTestCatalogService(db))

	got, err := classifier.Classify(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Name != constants.FallbackTypeName {
		t.Errorf("Expected fallback for blank label, got %s", got.Name)
	}
}
