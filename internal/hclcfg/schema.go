package hclcfg

import "github.com/hashicorp/hcl/v2"

// vlanBlock is the `vlan` block nested inside `global`.
type vlanBlock struct {
	AutoVLANIDStart *int `hcl:"auto_vlanid_start,optional"`
}

// globalBlock is the top-level `global` block. Attributes are decoded as
// optional pointers; presence of required fields is enforced by the
// registry, not by the decoder, so that every configuration problem can be
// reported in one pass.
type globalBlock struct {
	ProjectDir *string    `hcl:"project_dir,optional"`
	VLAN       *vlanBlock `hcl:"vlan,block"`
}

// moduleBlock is one `module "<name>"` block.
type moduleBlock struct {
	Name     string  `hcl:"name,label"`
	Path     *string `hcl:"path,optional"`
	Status   *string `hcl:"status,optional"`
	Output   *string `hcl:"output,optional"`
	Template *string `hcl:"template,optional"`

	// Remain captures the block body so its source range can be reported
	// in validation errors.
	Remain hcl.Body `hcl:",remain"`
}

// rootGlobal is the first decode pass: it consumes the global block and
// leaves everything else in Remain.
type rootGlobal struct {
	Global *globalBlock `hcl:"global,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// rootModules is the second decode pass, run against rootGlobal.Remain with
// an evaluation context exposing the global settings.
type rootModules struct {
	Modules []*moduleBlock `hcl:"module,block"`
}
