package shader

import (
	"fmt"
	"regexp"

	"github.com/richinsley/shadercube/cube"
)

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+(?:(?:highp|mediump|lowp)\s+)?(\w+)\s+(\w+)\s*;`)

var typeComponents = map[string]int{
	"float": 1,
	"vec2":  2,
	"vec3":  3,
	"vec4":  4,
	"mat3":  9,
	"mat4":  16,
}

// Declaration is a uniform declared in shader source.
type Declaration struct {
	Type string
	Name string
}

// Declarations lists the plain uniform declarations of source in order.
func Declarations(source string) []Declaration {
	var decls []Declaration
	for _, m := range uniformDecl.FindAllStringSubmatch(source, -1) {
		decls = append(decls, Declaration{Type: m[1], Name: m[2]})
	}
	return decls
}

// CheckDeclarations verifies that source declares exactly the fields of
// layout, in layout order and with matching sizes.
func CheckDeclarations(source string, layout cube.Layout) error {
	decls := Declarations(source)
	if len(decls) != len(layout.Fields) {
		return fmt.Errorf("%s block: shader declares %d uniforms, layout has %d", layout.Name, len(decls), len(layout.Fields))
	}
	for i, f := range layout.Fields {
		d := decls[i]
		if d.Name != f.Name {
			return fmt.Errorf("%s block: uniform %d is %q, layout expects %q", layout.Name, i, d.Name, f.Name)
		}
		n, ok := typeComponents[d.Type]
		if !ok {
			return fmt.Errorf("%s block: uniform %q has unsupported type %s", layout.Name, d.Name, d.Type)
		}
		if n != f.Components {
			return fmt.Errorf("%s block: uniform %q has %d components, layout expects %d", layout.Name, d.Name, n, f.Components)
		}
	}
	return nil
}
