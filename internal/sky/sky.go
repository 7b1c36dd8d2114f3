package sky

import (
	"math"
	"time"

	"overworld/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Face indexes a cubemap face in GPU upload order.
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	FaceCount
)

// DefaultSun is the sun direction the demo sky is generated with. It points
// opposite the lit pass light direction so highlights and sky disc agree.
var DefaultSun = mgl32.Vec3{0.25, 1, 0.35}.Normalize()

// Gradient endpoints and sun colors, HDR so values may exceed 1.
var (
	horizonColor = mgl32.Vec3{1.8, 1.4, 0.9}
	zenithColor  = mgl32.Vec3{0.2, 0.4, 1.2}
	duskColor    = mgl32.Vec3{1.0, 0.8, 0.6}
	groundColor  = mgl32.Vec3{0.15, 0.12, 0.10}
	discColor    = mgl32.Vec3{1.0, 0.933, 0.667}
	glowColor    = mgl32.Vec3{1.0, 0.8, 0.4}
)

// FaceDirection returns the unit view direction through the center of pixel
// (x, y) on a face of edge length n. Pixel centers map to u,v in (-1,1).
func FaceDirection(face Face, x, y, n int) mgl32.Vec3 {
	u := (float32(x)+0.5)/float32(n)*2 - 1
	v := (float32(y)+0.5)/float32(n)*2 - 1

	var d mgl32.Vec3
	switch face {
	case FacePosX:
		d = mgl32.Vec3{1, -v, -u}
	case FaceNegX:
		d = mgl32.Vec3{-1, -v, u}
	case FacePosY:
		d = mgl32.Vec3{u, 1, v}
	case FaceNegY:
		d = mgl32.Vec3{u, -1, -v}
	case FacePosZ:
		d = mgl32.Vec3{u, -v, 1}
	default:
		d = mgl32.Vec3{-u, -v, -1}
	}
	return d.Normalize()
}

// Radiance evaluates the sky model for a unit direction: a two-band vertical
// gradient (bright warm horizon to blue zenith above, warm band to dark
// ground below) plus a sun disc and a wider glow around it.
func Radiance(dir, sun mgl32.Vec3) mgl32.Vec3 {
	var l mgl32.Vec3
	dy := dir.Y()
	if dy > 0 {
		t := float32(math.Sqrt(float64(dy)))
		l = horizonColor.Mul(1 - t).Add(zenithColor.Mul(t))
	} else {
		t := float32(math.Min(1, float64(-2*dy)))
		l = duskColor.Mul(1 - t).Add(groundColor.Mul(t))
	}

	if s := dir.Dot(sun); s > 0 {
		disc := 30 * float32(math.Pow(float64(s), 256))
		glow := 1.5 * float32(math.Pow(float64(s), 8))
		l = l.Add(discColor.Mul(disc)).Add(glowColor.Mul(glow))
	}
	return l
}

// Generate builds the six cubemap faces at edge length n, each a row-major
// packed RGB float slice in upload order. Runs once at init; the result is
// read-only afterwards.
func Generate(n int, sun mgl32.Vec3) [FaceCount][]float32 {
	start := time.Now()

	var faces [FaceCount][]float32
	for f := FacePosX; f < FaceCount; f++ {
		pixels := make([]float32, 0, n*n*3)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				l := Radiance(FaceDirection(f, x, y, n), sun)
				pixels = append(pixels, l.X(), l.Y(), l.Z())
			}
		}
		faces[f] = pixels
	}

	logger.Log.Info("Sky cubemap generated",
		zap.Int("faceSize", n),
		zap.Duration("took", time.Since(start)))
	return faces
}
