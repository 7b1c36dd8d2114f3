package graphics

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"
)

const (
	checkerSize  = 64
	checkerCell  = 8
	checkerDark  = 60
	checkerLight = 220
)

// checkerImage builds the two-tone gray checker used as the albedo texture.
func checkerImage(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8(checkerDark)
			if (x/cell+y/cell)%2 == 0 {
				v = uint8(checkerLight)
			}
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// mipChain returns the image followed by successively halved copies down to
// 1x1, filtered on the CPU.
func mipChain(img *image.RGBA) []*image.RGBA {
	chain := []*image.RGBA{img}
	src := img
	for src.Rect.Dx() > 1 || src.Rect.Dy() > 1 {
		next := image.NewRGBA(image.Rect(0, 0, max(1, src.Rect.Dx()/2), max(1, src.Rect.Dy()/2)))
		xdraw.BiLinear.Scale(next, next.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		chain = append(chain, next)
		src = next
	}
	return chain
}

// NewCheckerTexture creates the mipmapped checker albedo texture and returns
// its GL handle. Every mip level is uploaded explicitly, so the texture is
// complete without a GenerateMipmap call.
func NewCheckerTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	for level, img := range mipChain(checkerImage(checkerSize, checkerCell)) {
		gl.TexImage2D(
			gl.TEXTURE_2D,
			int32(level),
			gl.RGBA,
			int32(img.Rect.Dx()),
			int32(img.Rect.Dy()),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix),
		)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// NewCubemapTexture uploads six HDR faces (packed RGB floats, edge length n)
// in +X,-X,+Y,-Y,+Z,-Z order and returns the GL handle.
func NewCubemapTexture(faces [6][]float32, n int) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texture)

	for i := 0; i < 6; i++ {
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGB16F,
			int32(n),
			int32(n),
			0,
			gl.RGB,
			gl.FLOAT,
			gl.Ptr(faces[i]),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return texture
}
