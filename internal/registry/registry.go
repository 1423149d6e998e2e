package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cyk-dot/rtigen/internal/config"
	"github.com/cyk-dot/rtigen/internal/ctxlog"
)

// statusEnabled is the module status value that selects a module for
// scanning. Any other value disables the module.
const statusEnabled = "enable"

// ModuleDescriptor is one enabled module with all paths resolved to
// absolute form. Immutable for the run.
type ModuleDescriptor struct {
	Name string

	// Root is the absolute scan root (a directory or a single file).
	Root string

	// OutputPath is the absolute path of the generated artifact. Relative
	// configured outputs resolve against Root's directory, matching where
	// the downstream build expects per-module headers.
	OutputPath string

	// TemplatePath is the absolute path of a custom template, or empty to
	// use the embedded default. Relative configured templates resolve
	// against the project root.
	TemplatePath string
}

// Registry is the resolved, validated view of the configuration: the global
// allocation settings plus every enabled module in declaration order.
type Registry struct {
	ProjectDir  string
	VLANIDStart int
	Modules     []ModuleDescriptor
}

// Resolve validates the configuration model and produces a Registry.
// Disabled modules are dropped before any path validation. All problems are
// aggregated into a single *ValidationError.
func Resolve(ctx context.Context, model *config.Model) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)

	v := &ValidationError{}

	if model.Global == nil {
		v.addf("config is missing the 'global' block")
		return nil, v
	}
	if model.Global.ProjectDir == "" {
		v.addf("global block is missing the 'project_dir' field")
	}
	if model.Global.VLANIDStart == nil {
		v.addf("global block is missing the 'vlan.auto_vlanid_start' field")
	} else if *model.Global.VLANIDStart < 0 {
		v.addf("'vlan.auto_vlanid_start' must not be negative, got %d", *model.Global.VLANIDStart)
	}
	if !v.empty() {
		return nil, v
	}

	projectDir := model.Global.ProjectDir
	if !filepath.IsAbs(projectDir) {
		projectDir = filepath.Join(model.BaseDir, projectDir)
	}
	if _, err := os.Stat(projectDir); err != nil {
		v.addf("project root does not exist: %s", projectDir)
		return nil, v
	}

	reg := &Registry{
		ProjectDir:  projectDir,
		VLANIDStart: *model.Global.VLANIDStart,
	}

	seen := make(map[string]string) // module name -> decl range
	for _, mod := range model.Modules {
		if !strings.EqualFold(mod.Status, statusEnabled) {
			logger.Info("Skipping disabled module.", "module", mod.Name)
			continue
		}
		if prev, dup := seen[mod.Name]; dup {
			v.addf("module %q declared twice (%s and %s)", mod.Name, prev, mod.DeclRange)
			continue
		}
		seen[mod.Name] = mod.DeclRange

		desc, ok := resolveModule(v, projectDir, mod)
		if !ok {
			continue
		}
		reg.Modules = append(reg.Modules, desc)
	}

	if !v.empty() {
		return nil, v
	}

	logger.Debug("Registry resolved.", "enabled_modules", len(reg.Modules))
	return reg, nil
}

// resolveModule validates one enabled module and resolves its paths. Missing
// fields and a missing scan root are recorded on v rather than returned, so
// sibling modules still get validated.
func resolveModule(v *ValidationError, projectDir string, mod *config.Module) (ModuleDescriptor, bool) {
	bad := false
	if mod.Path == "" {
		v.addf("module %q is missing the 'path' field (%s)", mod.Name, mod.DeclRange)
		bad = true
	}
	if mod.Output == "" {
		v.addf("module %q is missing the 'output' field (%s)", mod.Name, mod.DeclRange)
		bad = true
	}
	if bad {
		return ModuleDescriptor{}, false
	}

	root := mod.Path
	if !filepath.IsAbs(root) {
		root = filepath.Join(projectDir, root)
	}
	if _, err := os.Stat(root); err != nil {
		v.addf("module %q scan root does not exist: %s", mod.Name, root)
		return ModuleDescriptor{}, false
	}

	output := mod.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(rootDir(root), output)
	}

	template := mod.Template
	if template != "" && !filepath.IsAbs(template) {
		template = filepath.Join(projectDir, template)
	}

	return ModuleDescriptor{
		Name:         mod.Name,
		Root:         root,
		OutputPath:   output,
		TemplatePath: template,
	}, true
}

// rootDir returns the directory relative outputs resolve against: the root
// itself when it is a directory, its parent when the root is a single file.
func rootDir(root string) string {
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return filepath.Dir(root)
	}
	return root
}

// ValidationError aggregates every configuration problem found while
// resolving the registry.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) addf(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func (e *ValidationError) empty() bool { return len(e.Problems) == 0 }

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid configuration:\n- " + strings.Join(e.Problems, "\n- ")
}
