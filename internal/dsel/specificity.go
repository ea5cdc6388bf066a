package dsel

import (
	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/planerr"
)

// moreSpecific picks whichever of a, b fulfills the other — the
// subtype-compatible union both DIR.Merge (conflicting explicit entries)
// and ComponentModelFor (unioning a child's required models) need. Equal
// names trivially agree; unrelated names fail with failKind (the two
// callers disagree on which error Kind an incomparable pair should
// surface as).
func moreSpecific(cat *catalog.Catalog, a, b string, failKind planerr.Kind) (string, error) {
	if a == b {
		return a, nil
	}
	if _, ok := cat.Fulfills(a, b); ok {
		return a, nil
	}
	if _, ok := cat.Fulfills(b, a); ok {
		return b, nil
	}
	return "", planerr.New(failKind, "%s and %s are not in a fulfills relationship", a, b)
}
