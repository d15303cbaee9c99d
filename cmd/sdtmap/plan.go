package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/docforge/sdtmap/pkg/sdtmap"
)

// planFile is the on-disk TOML form of a substitution plan:
//
//	[simple]
//	Name = "Jane Doe"
//
//	[[repeating.Hauptbefund]]
//	Gen = "ABC1"
//
//	[[repeating.Hauptbefund]]
//	Gen = "ABC2"
type planFile struct {
	Simple    map[string]string              `toml:"simple"`
	Repeating map[string][]map[string]string `toml:"repeating"`
}

// loadPlan reads a substitution plan from a TOML file.
func loadPlan(path string) (sdtmap.SubstitutionPlan, error) {
	var pf planFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return sdtmap.SubstitutionPlan{}, fmt.Errorf("failed to read plan %s: %w", path, err)
	}
	return sdtmap.SubstitutionPlan{
		Simple:    pf.Simple,
		Repeating: pf.Repeating,
	}, nil
}
