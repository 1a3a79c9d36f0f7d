//go:build !nogpu

package gpu

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/sprite.wgsl
var spriteShaderSource string

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

var errBadSPIRV = errors.New("gpu: compiled shader is not a SPIR-V module")

// compileSPIRV compiles WGSL to SPIR-V words with naga.
func compileSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %w", err)
	}
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, errBadSPIRV
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	if words[0] != spirvMagic {
		return nil, errBadSPIRV
	}
	return words, nil
}

// createSpriteShader creates the sprite shader module, from WGSL or, when
// spirv is set, from naga's SPIR-V output.
func createSpriteShader(device hal.Device, spirv bool) (hal.ShaderModule, error) {
	src := hal.ShaderSource{WGSL: spriteShaderSource}
	if spirv {
		words, err := compileSPIRV(spriteShaderSource)
		if err != nil {
			return nil, err
		}
		src = hal.ShaderSource{SPIRV: words}
	}
	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "sprite_shader",
		Source: src,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create sprite shader: %w", err)
	}
	return shader, nil
}
