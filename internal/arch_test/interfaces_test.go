package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"
)

// allowedColocations lists interfaces that may live beside a type in the same
// package that implements them.
var allowedColocations = map[string]map[string]bool{
	// New selects between Builtin and Registry at startup and returns the
	// interface, so the contract sits with its implementations.
	"catalog": {"Catalog": true},
}

// pkgDecls collects the interfaces (with their method names) and the method
// sets of named types declared in a package.
func pkgDecls(t *testing.T, pkgDir string) (ifaces, methods map[string][]string) {
	t.Helper()
	ifaces = make(map[string][]string)
	methods = make(map[string][]string)
	fset := token.NewFileSet()
	for _, f := range goFilesIn(t, pkgDir) {
		node, err := parser.ParseFile(fset, f, nil, parser.SkipObjectResolution)
		if err != nil {
			t.Fatalf("parsing %s: %v", f, err)
		}
		ast.Inspect(node, func(n ast.Node) bool {
			switch d := n.(type) {
			case *ast.TypeSpec:
				if it, ok := d.Type.(*ast.InterfaceType); ok {
					for _, m := range it.Methods.List {
						for _, name := range m.Names {
							ifaces[d.Name.Name] = append(ifaces[d.Name.Name], name.Name)
						}
					}
				}
			case *ast.FuncDecl:
				if d.Recv != nil && len(d.Recv.List) > 0 {
					expr := d.Recv.List[0].Type
					if star, ok := expr.(*ast.StarExpr); ok {
						expr = star.X
					}
					if ident, ok := expr.(*ast.Ident); ok {
						methods[ident.Name] = append(methods[ident.Name], d.Name.Name)
					}
				}
				return false
			}
			return true
		})
	}
	return ifaces, methods
}

// TestInterfacePlacement keeps interfaces with their consumers: a package
// that declares an interface must not also implement it, unless allowlisted.
func TestInterfacePlacement(t *testing.T) {
	t.Parallel()

	for _, pkg := range internalPackages(t) {
		pkg := pkg
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()

			ifaces, methods := pkgDecls(t, filepath.Join(internalDirPath(t), pkg))
			for iface, want := range ifaces {
				if len(want) == 0 || allowedColocations[pkg][iface] {
					continue
				}
				for typ, have := range methods {
					if implementsAll(want, have) {
						t.Errorf("interface %s is declared in %s and implemented there by %s; move it to its consumer",
							iface, pkg, typ)
					}
				}
			}
		})
	}
}

// TestAllowedColocationsAreUsed drops allowlist entries once the interface
// moves or disappears.
func TestAllowedColocationsAreUsed(t *testing.T) {
	t.Parallel()

	for pkg, names := range allowedColocations {
		ifaces, _ := pkgDecls(t, filepath.Join(internalDirPath(t), pkg))
		for name := range names {
			if _, ok := ifaces[name]; !ok {
				t.Errorf("allowedColocations[%q] lists %s but no such interface exists", pkg, name)
			}
		}
	}
}

func implementsAll(want, have []string) bool {
	set := make(map[string]bool, len(have))
	for _, m := range have {
		set[m] = true
	}
	for _, m := range want {
		if !set[m] {
			return false
		}
	}
	return true
}
