package service

import (
	"regexp"

	"github.com/doitintl/bq-audit/domain"
)

// Table references are pulled out of raw SQL with three regex strategies
// applied in fixed precedence. Each strategy's matches are cut out of the
// scanned text before the next strategy runs, so a backticked `p.d.t` is
// never re-read as a bare d.t by a later, looser pattern.
var (
	// `p`.`d`.`t` and `p.d.t`, one alternation with two capture-group sets.
	backtickFQNRe = regexp.MustCompile("`([\\w-]+)`\\.`([\\w$]+)`\\.`([\\w$]+)`|`([\\w-]+)\\.([\\w$]+)\\.([\\w$]+)`")

	// Bare p.d.t. Project IDs allow hyphens, dataset/table names allow $.
	plainFQNRe = regexp.MustCompile(`([\w-]+)\.([\w$]+)\.([\w$]+)`)

	// Bare d.t, resolved against the default project.
	datasetTableRe = regexp.MustCompile(`([\w$]+)\.([\w$]+)`)
)

// ExtractTableReferences scans SQL text for table references. It is pure
// and deterministic: results are deduplicated on the resolved triple, kept
// in first-match order, and the first strategy to produce a triple wins.
// Malformed SQL never errors; over-matching inside string literals or
// comments is accepted. Zero matches is a valid result.
func ExtractTableReferences(sql, defaultProject string) []domain.TableReference {
	var refs []domain.TableReference

	seen := make(map[domain.TableReference]struct{})

	add := func(ref domain.TableReference) {
		if _, ok := seen[ref]; ok {
			return
		}

		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	rest := sql

	for _, m := range backtickFQNRe.FindAllStringSubmatch(rest, -1) {
		project, dataset, table := m[1], m[2], m[3]
		if project == "" {
			project, dataset, table = m[4], m[5], m[6]
		}

		add(domain.TableReference{Project: project, Dataset: dataset, Table: table})
	}

	rest = backtickFQNRe.ReplaceAllString(rest, " ")

	for _, m := range plainFQNRe.FindAllStringSubmatch(rest, -1) {
		add(domain.TableReference{Project: m[1], Dataset: m[2], Table: m[3]})
	}

	rest = plainFQNRe.ReplaceAllString(rest, " ")

	for _, m := range datasetTableRe.FindAllStringSubmatch(rest, -1) {
		add(domain.TableReference{Project: defaultProject, Dataset: m[1], Table: m[2]})
	}

	return refs
}
