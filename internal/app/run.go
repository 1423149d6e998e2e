package app

import (
	"context"
	"fmt"

	"github.com/cyk-dot/rtigen/internal/alloc"
	"github.com/cyk-dot/rtigen/internal/ctxlog"
	"github.com/cyk-dot/rtigen/internal/emit"
	"github.com/cyk-dot/rtigen/internal/registry"
	"github.com/cyk-dot/rtigen/internal/scanner"
)

// Run executes the generation pipeline: resolve the registry, scan every
// enabled module, allocate IDs, emit artifacts. Any fatal condition aborts
// the run; scanning problems below a module root are logged and skipped.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	reg, err := registry.Resolve(ctx, a.model)
	if err != nil {
		return err
	}
	a.logger.Info("Module registry resolved.", "enabled_modules", len(reg.Modules), "vlanid_start", reg.VLANIDStart)

	sc := scanner.New(scanner.DefaultMatcher())
	var collected []alloc.ModuleSymbols
	for _, mod := range reg.Modules {
		a.logger.Info("Scanning module for VLAN registrations.", "module", mod.Name, "root", mod.Root)
		set, err := sc.ScanRoot(ctx, mod.Root)
		if err != nil {
			return fmt.Errorf("failed to scan module %q: %w", mod.Name, err)
		}
		if set.Len() == 0 {
			a.logger.Warn("No VLAN registrations found in module.", "module", mod.Name)
		} else {
			a.logger.Info("Module scan complete.", "module", mod.Name, "symbols", set.Len())
		}
		collected = append(collected, alloc.ModuleSymbols{Module: mod.Name, Symbols: set})
	}

	table, err := alloc.New(reg.VLANIDStart).Allocate(ctx, collected)
	if err != nil {
		return fmt.Errorf("VLAN ID allocation failed: %w", err)
	}

	if a.cfg.DryRun {
		a.printTable(table)
		a.logger.Info("Dry run requested, no artifacts written.", "ids", table.Len())
		return nil
	}

	emitter := emit.New(a.runID.String())
	if err := emitter.EmitAll(ctx, reg.Modules, table); err != nil {
		return err
	}

	a.logger.Info("VLAN ID generation completed successfully.", "ids", table.Len(), "modules", len(reg.Modules))
	return nil
}

// printTable writes the allocation table to the application output, one
// qualified key per line.
func (a *App) printTable(table *alloc.Table) {
	for _, entry := range table.Entries() {
		fmt.Fprintf(a.outW, "%s = %d\n", entry.Key, entry.ID)
	}
}
