package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

// GLSL410 translates WebGL2 sources to desktop GLSL 4.10.
type GLSL410 struct {
	t *gst.ShaderTranslator
}

// New returns a GLSL 4.10 translator backed by the shared instance.
func New() (*GLSL410, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to start shader translator: %w", err)
	}
	return &GLSL410{t: t}, nil
}

// Translate implements shader.Translator.
func (g *GLSL410) Translate(source, stage string) (string, map[string]string, error) {
	out, err := g.t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", nil, err
	}
	names := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		names[name] = v.MappedName
	}
	return out.Code, names, nil
}
