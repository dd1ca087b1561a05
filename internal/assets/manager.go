package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var projectAssets embed.FS

// ShaderSource returns the raw Kage source of an embedded shader.
func ShaderSource(name string) ([]byte, error) {
	src, err := projectAssets.ReadFile("shaders/" + name)
	if err != nil {
		return nil, fmt.Errorf("read shader %q: %w", name, err)
	}
	return src, nil
}

// LoadShader compiles an embedded Kage shader.
func LoadShader(name string) (*ebiten.Shader, error) {
	src, err := ShaderSource(name)
	if err != nil {
		return nil, err
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile shader %q: %w", name, err)
	}
	return shader, nil
}
