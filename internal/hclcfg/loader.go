package hclcfg

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/cyk-dot/rtigen/internal/config"
	"github.com/cyk-dot/rtigen/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load parses the configuration document at path and translates it into the
// format-agnostic model. The global block is decoded first so that its
// settings can be exposed to module blocks as evaluation-context variables
// (currently `project_dir`).
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Config loader started.", "path", path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path %s: %w", path, err)
	}

	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.EqualFold(filepath.Ext(abs), ".json") {
		file, diags = l.parser.ParseJSONFile(abs)
	} else {
		file, diags = l.parser.ParseHCLFile(abs)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root rootGlobal
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode global block in %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{}}
	if root.Global != nil && root.Global.ProjectDir != nil {
		evalCtx.Variables["project_dir"] = cty.StringVal(*root.Global.ProjectDir)
	}

	var rest rootModules
	if diags := gohcl.DecodeBody(root.Remain, evalCtx, &rest); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode module blocks in %s: %w", path, diags)
	}

	model := translate(abs, &root, &rest)
	logger.Debug("Config loading complete.", "modules", len(model.Modules))
	return model, nil
}
