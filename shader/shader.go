package shader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/richinsley/shadercube/cube"
)

// Stage names understood by the translator.
const (
	StageVertex   = "vertex"
	StageFragment = "fragment"
)

// VertexAttribute is the quad position input of the vertex stage.
const VertexAttribute = "in_vert"

// Default source locations, relative to the working directory.
var (
	DefaultVertexPath   = filepath.Join("shaders", "mandelbrot.vert")
	DefaultFragmentPath = filepath.Join("shaders", "mandelbrot.frag")
)

// Translator converts WebGL2 shader source into desktop GLSL. names maps each
// declared interface variable to the identifier it has in code.
type Translator interface {
	Translate(source, stage string) (code string, names map[string]string, err error)
}

// Stage is one shader stage, before and after translation.
type Stage struct {
	Kind   string
	Path   string
	Source string
	Code   string
	Names  map[string]string
	Layout cube.Layout
}

// MappedName returns the translated identifier for name, or name itself if
// the translator did not rename it.
func (s *Stage) MappedName(name string) string {
	if mapped, ok := s.Names[name]; ok && mapped != "" {
		return mapped
	}
	return name
}

// Sources is a vertex/fragment pair ready to be compiled by the GL driver.
type Sources struct {
	Vertex   Stage
	Fragment Stage
}

// Read loads both source files without translating them.
func Read(vertexPath, fragmentPath string) (*Sources, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vertex shader: %w", err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment shader: %w", err)
	}

	return &Sources{
		Vertex: Stage{
			Kind:   StageVertex,
			Path:   vertexPath,
			Source: string(vs),
			Layout: cube.TransformLayout,
		},
		Fragment: Stage{
			Kind:   StageFragment,
			Path:   fragmentPath,
			Source: string(fs),
			Layout: cube.EffectLayout,
		},
	}, nil
}

// Load reads, checks and translates both stages. Any error means no program
// can be built from these sources.
func Load(vertexPath, fragmentPath string, tr Translator) (*Sources, error) {
	src, err := Read(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	for _, st := range []*Stage{&src.Vertex, &src.Fragment} {
		if err := st.translate(tr); err != nil {
			return nil, err
		}
	}
	return src, nil
}

func (s *Stage) translate(tr Translator) error {
	if err := CheckDeclarations(s.Source, s.Layout); err != nil {
		return fmt.Errorf("%s: %w", s.Path, err)
	}

	code, names, err := tr.Translate(s.Source, s.Kind)
	if err != nil {
		return fmt.Errorf("%s shader translation failed: %w", s.Kind, err)
	}
	for _, f := range s.Layout.Fields {
		if _, ok := names[f.Name]; !ok {
			return fmt.Errorf("%s: translated %s shader does not expose uniform %q", s.Path, s.Kind, f.Name)
		}
	}

	s.Code = code
	s.Names = names
	return nil
}
