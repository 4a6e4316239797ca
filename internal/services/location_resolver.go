package services

import (
	"context"
	"sort"
	"strings"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// ResolverConfig is the immutable alias table injected into the location
// resolver: sheet-name fragment to canonical-location-name fragment.
type ResolverConfig struct {
	Aliases map[string]string
}

// DefaultResolverConfig covers the sheet-name shorthand operators actually
// use in the field workbooks.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		Aliases: map[string]string{
			"SCP ICA":   "ICA",
			"SCP LIMA":  "LIMA",
			"SCP PISCO": "PISCO",
			"OFICINA":   "LIMA",
			"ALMACEN":   "ALMACEN CENTRAL",
		},
	}
}

// LocationResolver suggests a canonical location for a sheet name. The
// suggestion is advisory: the operator can override it per sheet before
// commit. An unresolved sheet is a legitimate terminal state, not an error.
type LocationResolver struct {
	cfg      ResolverConfig
	aliases  []string // deterministic scan order
	catalogs *common.CatalogService
}

func NewLocationResolver(cfg ResolverConfig, catalogs *common.CatalogService) *LocationResolver {
	aliases := make([]string, 0, len(cfg.Aliases))
	for k := range cfg.Aliases {
		aliases = append(aliases, k)
	}
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i]) != len(aliases[j]) {
			return len(aliases[i]) > len(aliases[j])
		}
		return aliases[i] < aliases[j]
	})

	return &LocationResolver{
		cfg:      cfg,
		aliases:  aliases,
		catalogs: catalogs,
	}
}

// Resolve returns the matching location, or nil when the sheet name cannot
// be resolved and operator intervention is needed.
func (r *LocationResolver) Resolve(ctx context.Context, sheetName string) (*gormModels.Location, error) {
	norm := common.NormalizeHeader(sheetName)
	if norm == "" {
		return nil, nil
	}

	locations, err := r.catalogs.Locations(ctx)
	if err != nil {
		return nil, err
	}

	if loc := matchFragment(locations, norm); loc != nil {
		return loc, nil
	}

	for _, alias := range r.aliases {
		if !strings.Contains(norm, common.NormalizeHeader(alias)) {
			continue
		}
		target := common.NormalizeHeader(r.cfg.Aliases[alias])
		if loc := matchFragment(locations, target); loc != nil {
			return loc, nil
		}
	}

	return nil, nil
}

// matchFragment applies the bidirectional-substring rule against catalog
// names: exact, fragment-in-name, or name-in-fragment.
func matchFragment(locations []gormModels.Location, fragment string) *gormModels.Location {
	for i := range locations {
		name := common.NormalizeHeader(locations[i].Name)
		if name == fragment || strings.Contains(name, fragment) || strings.Contains(fragment, name) {
			return &locations[i]
		}
	}
	return nil
}
