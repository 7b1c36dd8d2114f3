// Bakes the procedural sky cubemap on the CPU and writes it out as a
// horizontal-cross PNG, applying the same Reinhard + gamma transform the
// sky shader applies at draw time.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"overworld/internal/logger"
	"overworld/internal/sky"

	"go.uber.org/zap"
)

func main() {
	faceSize := flag.Int("size", 256, "cubemap face size in pixels")
	outPath := flag.String("out", "sky_preview.png", "output PNG path")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	faces := sky.Generate(*faceSize, sky.DefaultSun)
	img := crossImage(faces, *faceSize)

	f, err := os.Create(*outPath)
	if err != nil {
		logger.Fatal("Creating output file failed", zap.Error(err))
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		logger.Fatal("Encoding PNG failed", zap.Error(err))
	}

	logger.Info("Sky preview written",
		zap.String("path", *outPath),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))
}

// crossImage lays the six faces out as a horizontal cross:
//
//	     [+Y]
//	[-X] [+Z] [+X] [-Z]
//	     [-Y]
func crossImage(faces [sky.FaceCount][]float32, n int) *image.RGBA {
	slots := map[sky.Face]image.Point{
		sky.FacePosY: {n, 0},
		sky.FaceNegX: {0, n},
		sky.FacePosZ: {n, n},
		sky.FacePosX: {2 * n, n},
		sky.FaceNegZ: {3 * n, n},
		sky.FaceNegY: {n, 2 * n},
	}

	img := image.NewRGBA(image.Rect(0, 0, 4*n, 3*n))
	for face, origin := range slots {
		data := faces[face]
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				base := (y*n + x) * 3
				px := img.PixOffset(origin.X+x, origin.Y+y)
				img.Pix[px+0] = toneMap(data[base+0])
				img.Pix[px+1] = toneMap(data[base+1])
				img.Pix[px+2] = toneMap(data[base+2])
				img.Pix[px+3] = 255
			}
		}
	}
	return img
}

// toneMap mirrors the skybox fragment shader: Reinhard then gamma 1/2.2.
func toneMap(c float32) uint8 {
	mapped := float64(c) / (float64(c) + 1.0)
	mapped = math.Pow(mapped, 1.0/2.2)
	v := math.Round(mapped * 255.0)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
