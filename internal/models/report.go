package models

// PackageScan represents all annotated declarations found in one package directory
type PackageScan struct {
	PackageName string          // name of the Go package
	Dir         string          // file system path to the package
	ImportPath  string          // module-qualified import path, resolved by the CLI
	APIs        []DeprecatedAPI // annotated declarations in the package
}

// APIsByFile groups the package's annotated declarations by source file,
// the unit the rewriter works on
func (p *PackageScan) APIsByFile() map[string][]DeprecatedAPI {
	byFile := make(map[string][]DeprecatedAPI)
	for _, api := range p.APIs {
		byFile[api.File] = append(byFile[api.File], api)
	}
	return byFile
}

// Report aggregates package scans for output
type Report struct {
	Module   string        // module path from go.mod, empty when unresolved
	Packages []PackageScan // scanned packages with at least one finding
}

// TotalAPIs returns the number of annotated declarations across all packages
func (r Report) TotalAPIs() int {
	total := 0
	for _, pkg := range r.Packages {
		total += len(pkg.APIs)
	}
	return total
}

// CountMissingParagraphs returns how many annotated declarations lack a
// Deprecated: doc paragraph
func (r Report) CountMissingParagraphs() int {
	missing := 0
	for _, pkg := range r.Packages {
		for _, api := range pkg.APIs {
			if !api.HasParagraph() {
				missing++
			}
		}
	}
	return missing
}
