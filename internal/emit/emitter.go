// Package emit writes one generated artifact per module from the completed
// allocation table. Emission never mutates the table; a module with no
// allocated IDs is skipped and any previously generated file is left in
// place.
package emit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cyk-dot/rtigen/internal/alloc"
	"github.com/cyk-dot/rtigen/internal/ctxlog"
	"github.com/cyk-dot/rtigen/internal/registry"
	"github.com/cyk-dot/rtigen/internal/render"
)

// Symbol is one (name, ID) pair handed to the template.
type Symbol struct {
	Name string
	ID   int
}

// Payload is the data handed to the template collaborator for one module.
type Payload struct {
	Module  string
	Date    string
	RunID   string
	Guard   string
	Symbols []Symbol
}

// Emitter renders and writes module artifacts.
type Emitter struct {
	runID string
	now   func() time.Time
}

// New creates an emitter tagging artifacts with the given run ID.
func New(runID string) *Emitter {
	return &Emitter{runID: runID, now: time.Now}
}

// EmitAll writes the artifact for every module that has allocated IDs, in
// module order. The first render or write failure aborts the run; artifacts
// already written stay in place.
func (e *Emitter) EmitAll(ctx context.Context, modules []registry.ModuleDescriptor, table *alloc.Table) error {
	logger := ctxlog.FromContext(ctx)

	written := 0
	for _, mod := range modules {
		entries := table.ForModule(mod.Name)
		if len(entries) == 0 {
			logger.Info("No VLAN IDs allocated for module, skipping artifact.", "module", mod.Name)
			continue
		}
		if err := e.emitModule(ctx, mod, entries); err != nil {
			return fmt.Errorf("emitting artifact for module %q: %w", mod.Name, err)
		}
		written++
	}

	logger.Info("Artifact emission complete.", "written", written, "modules", len(modules))
	return nil
}

func (e *Emitter) emitModule(ctx context.Context, mod registry.ModuleDescriptor, entries []alloc.Entry) error {
	logger := ctxlog.FromContext(ctx)

	templateText := render.DefaultTemplate()
	if mod.TemplatePath != "" {
		text, err := render.Load(mod.TemplatePath)
		if err != nil {
			return err
		}
		templateText = text
	}

	payload := Payload{
		Module: mod.Name,
		Date:   e.now().Format("2006-01-02 15:04:05"),
		RunID:  e.runID,
		Guard:  guardFor(mod.Name),
	}
	for _, entry := range entries {
		payload.Symbols = append(payload.Symbols, Symbol{
			Name: strings.ToUpper(entry.Symbol),
			ID:   entry.ID,
		})
	}

	text, err := render.Render(templateText, payload)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(mod.OutputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(mod.OutputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}

	logger.Info("Generated VLAN ID artifact.", "module", mod.Name, "path", mod.OutputPath, "ids", len(entries))
	return nil
}

// guardFor builds the include guard for a module artifact. Characters that
// are not valid in a C identifier are replaced.
func guardFor(module string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(module) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return "RTI_VLANID_" + b.String() + "_H"
}
