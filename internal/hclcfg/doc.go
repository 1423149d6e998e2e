// Package hclcfg implements config.Loader on top of HCL. It accepts both
// native HCL syntax and the HCL JSON variant, selected by file extension,
// and translates the decoded document into the format-agnostic model in the
// config package.
//
// Module blocks are decoded into an ordered slice, so the declaration order
// in the document is preserved all the way into the allocator.
package hclcfg
