package builtins

import (
	"fmt"
	"os"

	"rubycore/internal/registry"
	"rubycore/internal/value"
)

// installKernel registers puts/p/print on Kernel (spec GLOSSARY: "a module
// of methods mixed into Object providing puts, p, print, respond_to?,
// etc."). respond_to? itself lives on Object (installObject) since it needs
// the registry reference the same way ancestors/class do.
func installKernel(reg *registry.Registry) {
	reg.Register("Kernel", "puts", func(_ value.Value, args ...value.Value) (value.Value, error) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stdout)
		}
		for _, a := range args {
			fmt.Fprintln(os.Stdout, a.ToS())
		}
		return value.NIL, nil
	})

	reg.Register("Kernel", "print", func(_ value.Value, args ...value.Value) (value.Value, error) {
		for _, a := range args {
			fmt.Fprint(os.Stdout, a.ToS())
		}
		return value.NIL, nil
	})

	reg.Register("Kernel", "p", func(_ value.Value, args ...value.Value) (value.Value, error) {
		for _, a := range args {
			fmt.Fprintln(os.Stdout, a.Inspect())
		}
		if len(args) == 1 {
			return args[0], nil
		}
		if len(args) == 0 {
			return value.NIL, nil
		}
		return value.NewArray(args), nil
	})
}
