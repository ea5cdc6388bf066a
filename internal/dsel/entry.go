package dsel

import "github.com/oro-core/netplan/internal/model"

// Entry is one selection staged via Add. An explicit entry pins Key to
// Selection outright; a default entry only applies to a model key m when
// nothing else — explicit or a non-ambiguous earlier default — already
// claims m. For a default entry, Key must be a model key: its model name is
// the root whose fulfilled-model set (internal/catalog.EachFulfilledModel)
// the default spreads across.
type Entry struct {
	Key       model.Key
	Selection model.Selection
	Default   bool
}
