package services

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// TypeClassifier maps a free-text asset-type label onto one canonical
// catalog entry. Resolution order: case-insensitive exact match, ranked
// keyword heuristics, then the guaranteed "Otros" fallback. Classification
// itself never fails; only store access can error.
type TypeClassifier struct {
	cfg      ClassifierConfig
	keywords []string // match order: longest first, then priority, then lexical
	catalogs *common.CatalogService
}

func NewTypeClassifier(cfg ClassifierConfig, catalogs *common.CatalogService) *TypeClassifier {
	keywords := make([]string, 0, len(cfg.Keywords))
	for kw := range cfg.Keywords {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		a, b := keywords[i], keywords[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		if cfg.Priorities[a] != cfg.Priorities[b] {
			return cfg.Priorities[a] > cfg.Priorities[b]
		}
		return a < b
	})

	return &TypeClassifier{
		cfg:      cfg,
		keywords: keywords,
		catalogs: catalogs,
	}
}

// Classify resolves a label to a catalog type. Worst case it returns the
// fallback entry, creating it on demand.
func (c *TypeClassifier) Classify(ctx context.Context, label string) (*gormModels.AssetType, error) {
	types, err := c.catalogs.AssetTypes(ctx)
	if err != nil {
		return nil, err
	}

	norm := common.NormalizeHeader(label)
	if norm != "" {
		for i := range types {
			if strings.EqualFold(types[i].Name, strings.TrimSpace(label)) {
				return &types[i], nil
			}
		}

		for _, kw := range c.keywords {
			if !keywordMatches(norm, kw) {
				continue
			}
			canonical := c.cfg.Keywords[kw]
			for i := range types {
				if strings.EqualFold(types[i].Name, canonical) {
					return &types[i], nil
				}
			}
		}
	}

	return c.catalogs.EnsureFallbackType(ctx)
}

// keywordMatches reports whether kw occurs in label starting at a word
// boundary. A boundary-aligned prefix of a longer word counts (MONITOR
// matches MONITORES) but an interior substring does not (PC must not match
// inside TOPCO).
func keywordMatches(label, kw string) bool {
	for from := 0; ; {
		i := strings.Index(label[from:], kw)
		if i < 0 {
			return false
		}
		at := from + i
		if at == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(label[:at])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			return true
		}
		from = at + 1
	}
}
