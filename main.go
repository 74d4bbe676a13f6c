package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/imageio"
	"github.com/df07/go-raycaster/pkg/publish"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to a JSON config file")
	envFile := flag.String("env", ".env", "Path to a dotenv file (skipped if missing)")
	sceneType := flag.String("scene", "", "Scene name ('default', 'spheregrid', 'nested') or path to a .json scene file")
	width := flag.Int("width", 0, "Image width in pixels (0 keeps the scene's width)")
	outputDir := flag.String("output", "", "Output directory")
	format := flag.String("format", "", "Output format: png, ppm, webp, tga, bmp, tiff")
	scale := flag.Int("scale", 0, "Integer upscale factor for the saved image")
	thumbnail := flag.Int("thumbnail", 0, "Also save a thumbnail fitting in NxN pixels")
	publishFlag := flag.Bool("publish", false, "Upload the render to S3")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	cfg, err := loadConfig(*configPath, *envFile, config.Flags{
		Scene:     *sceneType,
		Width:     *width,
		OutputDir: *outputDir,
		Format:    *format,
		Scale:     *scale,
		Thumbnail: *thumbnail,
		Publish:   *publishFlag,
	})
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, core.NewStdLogger(os.Stderr, "")); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Raycaster")
	fmt.Println("Usage: raycaster [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}
	if dir := scene.FindScenesDir(); dir != "" {
		files, err := scene.ListSceneFiles(dir, core.NopLogger{})
		if err == nil {
			for _, info := range files {
				fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
			}
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.<format>")
}

// loadConfig layers defaults, the config file, dotenv/environment and flags
func loadConfig(configPath, envFile string, flags config.Flags) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	if err := cfg.LoadEnv(envFiles...); err != nil {
		return config.Config{}, err
	}

	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// run renders the configured scene and writes (and optionally publishes) the result
func run(ctx context.Context, cfg config.Config, logger core.Logger) error {
	format, err := cfg.ImageFormat()
	if err != nil {
		return err
	}

	var overrides []renderer.CameraConfig
	if cfg.Width > 0 {
		overrides = append(overrides, renderer.CameraConfig{Width: cfg.Width})
	}

	selectedScene, err := createScene(cfg.Scene, overrides...)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d spheres)...\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	outputDir, err := createOutputDir(cfg.OutputDir, selectedScene.Name)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene, logger)
	img, stats := raytracer.RenderPass()
	logger.Printf("Render completed in %v\n", stats.Duration)
	logger.Printf("Pixels: %d, hits: %d, misses: %d (%.1f%% hit)\n",
		stats.TotalPixels, stats.Hits, stats.Misses, stats.HitRatio()*100)

	output := imageio.Scale(img, cfg.Scale)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("render_%s%s", timestamp, format.Extension())
	filename := filepath.Join(outputDir, name)
	if err := imageio.Save(filename, output); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)

	var thumb image.Image
	thumbName := fmt.Sprintf("thumb_%s.png", timestamp)
	if cfg.ThumbnailSize > 0 {
		thumb = imageio.Thumbnail(img, cfg.ThumbnailSize, cfg.ThumbnailSize)
		thumbFile := filepath.Join(outputDir, thumbName)
		if err := imageio.Save(thumbFile, thumb); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbFile)
	}

	if !cfg.Publish.Enabled {
		return nil
	}

	publisher, err := publish.NewS3Publisher(cfg.Publish, logger)
	if err != nil {
		return err
	}
	keyDir := selectedScene.Name
	url, err := publisher.PublishImage(ctx, keyDir+"/"+name, output, format)
	if err != nil {
		return err
	}
	logger.Printf("Published render to %s\n", url)

	if thumb != nil {
		url, err := publisher.PublishImage(ctx, keyDir+"/"+thumbName, thumb, imageio.FormatPNG)
		if err != nil {
			return err
		}
		logger.Printf("Published thumbnail to %s\n", url)
	}
	return nil
}

// createScene creates a built-in scene or loads a scene file by name or path
func createScene(sceneType string, overrides ...renderer.CameraConfig) (*scene.Scene, error) {
	return scene.Create(sceneType, overrides...)
}

// createOutputDir creates the per-scene output directory and returns its path
func createOutputDir(base, sceneName string) (string, error) {
	outputDir := filepath.Join(base, filepath.Base(sceneName))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return outputDir, nil
}
