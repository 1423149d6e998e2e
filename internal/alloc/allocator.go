package alloc

import (
	"context"
	"fmt"
	"strings"

	"github.com/cyk-dot/rtigen/internal/ctxlog"
	"github.com/cyk-dot/rtigen/internal/scanner"
)

// keySeparator joins the normalized module name and the symbol name into a
// qualified key.
const keySeparator = "_"

// ModuleSymbols pairs a module name with the symbols discovered under its
// scan root. The slice handed to Allocate must be in registry order.
type ModuleSymbols struct {
	Module  string
	Symbols *scanner.SymbolSet
}

// ConflictError reports a symbol registered more than once within a module,
// with every occurrence so the collision can be fixed at the source.
type ConflictError struct {
	Module      string
	Symbol      string
	Occurrences []string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate VLAN name %q in module %q, registered in: %s",
		e.Symbol, e.Module, strings.Join(e.Occurrences, ", "))
}

// QualifiedKey builds the unit of global uniqueness for a (module, symbol)
// pair.
func QualifiedKey(module, symbol string) string {
	return strings.ToUpper(module) + keySeparator + symbol
}

// Allocator owns the next-ID counter and the table under construction.
// Independent allocators are fully isolated, so tests can run them against
// the same input.
type Allocator struct {
	next  int
	table *Table
}

// New creates an allocator whose first assigned ID is start.
func New(start int) *Allocator {
	if start < 0 {
		panic("alloc: start offset must not be negative")
	}
	return &Allocator{next: start, table: newTable()}
}

// Allocate builds the global allocation table from the per-module symbol
// sets, in the order given. Any conflict aborts the whole allocation; no
// partial table is returned.
func (a *Allocator) Allocate(ctx context.Context, modules []ModuleSymbols) (*Table, error) {
	logger := ctxlog.FromContext(ctx)

	// Every module must be conflict-free before a single ID is assigned.
	for _, ms := range modules {
		for _, symbol := range ms.Symbols.Names() {
			if occ := ms.Symbols.Occurrences(symbol); len(occ) > 1 {
				return nil, &ConflictError{
					Module:      ms.Module,
					Symbol:      symbol,
					Occurrences: occ,
				}
			}
		}
	}

	for _, ms := range modules {
		for _, symbol := range ms.Symbols.Names() {
			key := QualifiedKey(ms.Module, symbol)
			entry := Entry{
				Key:    key,
				Module: ms.Module,
				Symbol: symbol,
				ID:     a.next,
			}
			if !a.table.insert(entry) {
				// Reachable only when two module names normalize to the
				// same upper-case form and share a symbol.
				return nil, fmt.Errorf("duplicate qualified key %q detected during allocation", key)
			}
			logger.Debug("Allocated VLAN ID.", "key", key, "id", entry.ID)
			a.next++
		}
	}

	logger.Info("VLAN ID allocation complete.", "ids", a.table.Len(), "modules", len(modules))
	return a.table, nil
}
