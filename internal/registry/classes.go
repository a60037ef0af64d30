package registry

// InstallClassHierarchy registers the built-in class/module ancestry:
// Kernel mixed into Object, Comparable/Enumerable left available for user
// classes to include, BasicObject terminating every chain.
func InstallClassHierarchy(r *Registry) {
	r.DefineClass(ClassInfo{Name: "BasicObject"})
	r.DefineClass(ClassInfo{Name: "Kernel", IsModule: true})
	r.DefineClass(ClassInfo{Name: "Comparable", IsModule: true})
	r.DefineClass(ClassInfo{Name: "Enumerable", IsModule: true})
	r.DefineClass(ClassInfo{Name: "Object", Superclass: "BasicObject", Modules: []string{"Kernel"}})

	for _, name := range []string{
		"Integer", "Float", "String", "Symbol", "Array", "Hash",
		"Range", "Rational", "NilClass", "TrueClass", "FalseClass",
	} {
		r.DefineClass(ClassInfo{Name: name, Superclass: "Object"})
	}

	// Numeric comparisons and between? are mixed in via Comparable for the
	// classes that implement <=>.
	for _, name := range []string{"Integer", "Float", "Rational", "String"} {
		c := r.classes[name]
		c.Modules = append(c.Modules, "Comparable")
	}

	// Exception hierarchy named after the rberror.Kind values, so these class
	// names resolve in ancestor chains; no code maps a Kind onto these
	// classes.
	r.DefineClass(ClassInfo{Name: "Exception", Superclass: "Object"})
	r.DefineClass(ClassInfo{Name: "StandardError", Superclass: "Exception"})
	for name, super := range map[string]string{
		"NoMethodError":     "NameError",
		"NameError":         "StandardError",
		"TypeError":         "StandardError",
		"ZeroDivisionError": "StandardError",
		"ArgumentError":     "StandardError",
		"RangeError":        "StandardError",
		"RuntimeError":      "StandardError",
	} {
		r.DefineClass(ClassInfo{Name: name, Superclass: super})
	}
}
