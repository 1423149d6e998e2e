package hclcfg

import (
	"path/filepath"

	"github.com/cyk-dot/rtigen/internal/config"
)

// translate converts the decoded HCL schema structs into the agnostic model.
func translate(configPath string, root *rootGlobal, rest *rootModules) *config.Model {
	model := &config.Model{BaseDir: filepath.Dir(configPath)}

	if root.Global != nil {
		g := &config.Global{}
		if root.Global.ProjectDir != nil {
			g.ProjectDir = *root.Global.ProjectDir
		}
		if root.Global.VLAN != nil && root.Global.VLAN.AutoVLANIDStart != nil {
			start := *root.Global.VLAN.AutoVLANIDStart
			g.VLANIDStart = &start
		}
		model.Global = g
	}

	for _, blk := range rest.Modules {
		mod := &config.Module{
			Name:      blk.Name,
			DeclRange: blk.Remain.MissingItemRange().String(),
		}
		if blk.Path != nil {
			mod.Path = *blk.Path
		}
		if blk.Status != nil {
			mod.Status = *blk.Status
		}
		if blk.Output != nil {
			mod.Output = *blk.Output
		}
		if blk.Template != nil {
			mod.Template = *blk.Template
		}
		model.Modules = append(model.Modules, mod)
	}

	return model
}
