package main

import (
	"fmt"
	"os"
	"runtime"

	"overworld/internal/config"
	"overworld/internal/game"
	"overworld/internal/graphics"
	"overworld/internal/graphics/renderables/geometry"
	"overworld/internal/graphics/renderables/skybox"
	"overworld/internal/input"
	"overworld/internal/logger"
	"overworld/internal/sky"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() { runtime.LockOSThread() }

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	closer.Bind(logger.Sync)

	if err := glfw.Init(); err != nil {
		logger.Error("GLFW init failed", zap.Error(err))
		closer.Exit(1)
	}
	closer.Bind(glfw.Terminate)

	window, err := game.SetupWindow(cfg)
	if err != nil {
		logger.Error("Window setup failed", zap.Error(err))
		closer.Exit(1)
	}

	// Bake the sky once; both passes sample the same cubemap.
	faces := sky.Generate(cfg.Sky.FaceSize, sky.DefaultSun)
	cubemap := graphics.NewCubemapTexture(faces, cfg.Sky.FaceSize)
	closer.Bind(func() { gl.DeleteTextures(1, &cubemap) })

	im := input.NewInputManager()

	app, err := game.NewApp(cfg, window, im,
		skybox.NewSkybox(cubemap),
		geometry.NewGeometry(cubemap),
	)
	if err != nil {
		logger.Error("App init failed", zap.Error(err))
		closer.Exit(1)
	}
	closer.Bind(app.Dispose)

	game.SetupInputHandlers(app)

	app.Run()

	logger.Info("Window closed, shutting down")
}
