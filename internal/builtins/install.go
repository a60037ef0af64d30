// Package builtins registers the built-in method packs: Object/Kernel,
// Integer, Float, String, Array, Hash, Range, Rational, plus numeric
// coercion and operator semantics. One registration function per built-in,
// all run at startup before user code.
package builtins

import "rubycore/internal/registry"

// Install populates reg with the full built-in class hierarchy and method
// packs. Must run once before any dispatch; re-running would bump every
// touched method's invalidation epoch (registry.Register's documented
// replace behavior), which is harmless but pointless.
func Install(reg *registry.Registry) {
	registry.InstallClassHierarchy(reg)

	installKernel(reg)
	installObject(reg)
	installComparable(reg)
	installNilClass(reg)
	installBoolean(reg)
	installInteger(reg)
	installFloat(reg)
	installRational(reg)
	installString(reg)
	installSymbol(reg)
	installArray(reg)
	installHash(reg)
	installRange(reg)
}
