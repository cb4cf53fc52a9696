package sema

import (
	"tiger/internal/source"
	"tiger/internal/types"
)

// equals resolves both operands (turning an incomplete/cyclic chain
// into the proper diagnostic, spec §7) before delegating to the pure
// types.Equals relation.
func (c *checker) equals(a, b *types.Type, at source.Location) bool {
	ra := c.actualTyOrFail(a, at)
	rb := c.actualTyOrFail(b, at)
	return types.Equals(ra, rb)
}

// compatible is the analyzer-facing, diagnostic-raising counterpart to
// types.IsCompatible.
func (c *checker) compatible(src, dst *types.Type, at source.Location) bool {
	rs := c.actualTyOrFail(src, at)
	rd := c.actualTyOrFail(dst, at)
	return types.IsCompatible(rs, rd)
}
