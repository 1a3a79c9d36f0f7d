package sprite

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/oge"
	"github.com/gogpu/oge/internal/cache"
	"github.com/gogpu/oge/internal/imageio"
	"github.com/gogpu/oge/mesh"
	"github.com/gogpu/oge/render"
)

// Texture errors. Values returned by NewTexture wrap one of these.
var (
	ErrOpen              = errors.New("sprite: texture file cannot be opened")
	ErrDecode            = errors.New("sprite: texture file cannot be decoded")
	ErrLoadFromBytes     = errors.New("sprite: texture bytes cannot be decoded")
	ErrUnsupportedFormat = errors.New("sprite: unsupported texture format")
)

// MaxTextureSide is the largest texture side uploaded. Larger images are
// downscaled on load.
const MaxTextureSide = 8192

// DecodedCacheSize is the number of decoded image files kept in memory.
// Textures loaded from the same path share one decoded copy.
const DecodedCacheSize = 64

var decoded = cache.New[string, *image.NRGBA](DecodedCacheSize)

// PurgeDecodedCache drops every cached decoded image, so that later loads
// read their files again.
func PurgeDecodedCache() { decoded.Purge() }

// decodePath decodes the image file at path, downscaled to MaxTextureSide,
// reusing an earlier decode of the same path.
func decodePath(path string) (*image.NRGBA, error) {
	if img, ok := decoded.Get(path); ok {
		return img, nil
	}
	img, err := imageio.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	img = imageio.FitWithin(img, MaxTextureSide)
	decoded.Add(path, img)
	return img, nil
}

type sourceKind uint8

const (
	sourceNull sourceKind = iota
	sourcePath
	sourceBytes
	sourceColor
)

// TextureSource says where texture pixels come from.
// The zero value is the null texture: one transparent pixel.
type TextureSource struct {
	kind  sourceKind
	path  string
	data  []byte
	color Color
}

// FromPath loads the texture from an image file.
func FromPath(path string) TextureSource {
	return TextureSource{kind: sourcePath, path: path}
}

// FromBytes decodes the texture from an in-memory image file.
func FromBytes(data []byte) TextureSource {
	return TextureSource{kind: sourceBytes, data: data}
}

// FromColor uses a single pixel of color c.
func FromColor(c Color) TextureSource {
	return TextureSource{kind: sourceColor, color: c}
}

// NullTexture returns the transparent single-pixel source.
func NullTexture() TextureSource {
	return TextureSource{}
}

// FilterMode selects texture filtering.
type FilterMode uint8

const (
	// FilterPoint samples the nearest texel.
	FilterPoint FilterMode = iota
	// FilterBilinear interpolates between neighbouring texels.
	FilterBilinear
)

func (f FilterMode) gpu() gputypes.FilterMode {
	switch f {
	case FilterPoint:
		return gputypes.FilterModeNearest
	case FilterBilinear:
		return gputypes.FilterModeLinear
	default:
		panic(fmt.Sprintf("sprite: invalid filter mode %d", uint8(f)))
	}
}

// AddressMode selects how coordinates outside [0, 1] are resolved.
type AddressMode uint8

const (
	// AddressClamp repeats the edge texels.
	AddressClamp AddressMode = iota
	// AddressWrap tiles the texture.
	AddressWrap
	// AddressMirror tiles the texture, flipping every other tile.
	AddressMirror
)

func (a AddressMode) gpu() gputypes.AddressMode {
	switch a {
	case AddressClamp:
		return gputypes.AddressModeClampToEdge
	case AddressWrap:
		return gputypes.AddressModeRepeat
	case AddressMirror:
		return gputypes.AddressModeMirrorRepeat
	default:
		panic(fmt.Sprintf("sprite: invalid address mode %d", uint8(a)))
	}
}

// TextureConfig describes a texture and how it is mapped onto a mesh.
type TextureConfig struct {
	Label      string
	Source     TextureSource
	Filter     FilterMode
	Address    AddressMode
	Projection mesh.ProjectionMethod
}

// Texture holds decoded straight-alpha RGBA8 pixels and, once drawn, their GPU copies.
type Texture struct {
	cfg    TextureConfig
	pixels []byte
	width  uint32
	height uint32

	dev     render.Device
	gpuTex  render.Texture
	sampler render.Sampler
}

// NewTexture loads the pixels described by cfg. Nothing is uploaded until
// the texture is first drawn.
func NewTexture(cfg TextureConfig) (*Texture, error) {
	t := &Texture{cfg: cfg}
	switch src := cfg.Source; src.kind {
	case sourceNull:
		t.setPixels([]byte{0, 0, 0, 0}, 1, 1)
	case sourceColor:
		px := src.color.RGBA8()
		t.setPixels(px[:], 1, 1)
	case sourcePath:
		img, err := decodePath(src.path)
		if err != nil {
			return nil, textureError(cfg.Label, ErrDecode, err)
		}
		t.setImage(img)
	case sourceBytes:
		img, err := imageio.DecodeBytes(src.data)
		if err != nil {
			return nil, textureError(cfg.Label, ErrLoadFromBytes, err)
		}
		t.setImage(img)
	default:
		panic(fmt.Sprintf("sprite: invalid texture source %d", uint8(src.kind)))
	}
	return t, nil
}

// textureError classifies a decode failure. fallback is used unless the
// cause is a missing file or an unknown format.
func textureError(label string, fallback, err error) error {
	kind := fallback
	switch {
	case errors.Is(err, imageio.ErrOpen):
		kind = ErrOpen
	case errors.Is(err, imageio.ErrUnsupportedFormat):
		kind = ErrUnsupportedFormat
	}
	return fmt.Errorf("%w: %q: %w", kind, label, err)
}

func (t *Texture) setImage(img *image.NRGBA) {
	img = imageio.FitWithin(img, MaxTextureSide)
	b := img.Bounds()
	t.setPixels(img.Pix, uint32(b.Dx()), uint32(b.Dy())) //nolint:gosec // bounded by MaxTextureSide
}

func (t *Texture) setPixels(px []byte, w, h uint32) {
	t.pixels, t.width, t.height = px, w, h
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (width, height uint32) { return t.width, t.height }

// Config returns the configuration the texture was created from.
func (t *Texture) Config() TextureConfig { return t.cfg }

// Pixels returns the RGBA8 pixel data. Textures loaded from the same path
// share it; it must not be modified.
func (t *Texture) Pixels() []byte { return t.pixels }

// SamplerConfig returns the GPU sampler settings for the texture.
func (t *Texture) SamplerConfig() render.SamplerConfig {
	return render.SamplerConfig{Filter: t.cfg.Filter.gpu(), Address: t.cfg.Address.gpu()}
}

// Upload returns the GPU texture and sampler on dev, creating them on first
// use. Uploading to a different device releases the previous copies.
func (t *Texture) Upload(dev render.Device) (render.Texture, render.Sampler, error) {
	if t.dev == dev && t.gpuTex != nil {
		return t.gpuTex, t.sampler, nil
	}
	t.Release()

	tex, err := dev.CreateTexture(t.cfg.Label, t.pixels, t.width, t.height)
	if err != nil {
		return nil, nil, fmt.Errorf("sprite: upload texture %q: %w", t.cfg.Label, err)
	}
	s, err := dev.CreateSampler(t.cfg.Label, t.SamplerConfig())
	if err != nil {
		tex.Release()
		return nil, nil, fmt.Errorf("sprite: create sampler %q: %w", t.cfg.Label, err)
	}
	t.dev, t.gpuTex, t.sampler = dev, tex, s
	oge.Logger().Debug("sprite: texture uploaded", "label", t.cfg.Label, "width", t.width, "height", t.height)
	return tex, s, nil
}

// Release frees the GPU copies. The texture can be uploaded again.
func (t *Texture) Release() {
	if t.sampler != nil {
		t.sampler.Release()
	}
	if t.gpuTex != nil {
		t.gpuTex.Release()
	}
	t.dev, t.gpuTex, t.sampler = nil, nil, nil
}
