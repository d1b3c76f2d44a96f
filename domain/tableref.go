package domain

import "fmt"

// TableReference identifies a catalog object by its (project, dataset,
// table) triple. An empty Project marks an unqualified reference that must
// be resolved against a default project before use. Equality, and the
// extractor's deduplication key, is the resolved triple.
type TableReference struct {
	Project string
	Dataset string
	Table   string
}

// Resolve fills an empty project with defaultProject.
func (r TableReference) Resolve(defaultProject string) TableReference {
	if r.Project == "" {
		r.Project = defaultProject
	}

	return r
}

func (r TableReference) String() string {
	return fmt.Sprintf("%s.%s.%s", r.Project, r.Dataset, r.Table)
}

// DatasetKey identifies the reference's parent dataset, used to fetch
// dataset-level totals once per distinct (project, dataset) pair.
func (r TableReference) DatasetKey() string {
	return r.Project + "." + r.Dataset
}
