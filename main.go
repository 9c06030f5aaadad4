package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"
	"time"

	"github.com/disintegration/imaging"
	"github.com/joho/godotenv"
	"github.com/nfnt/resize"

	"github.com/kmander/go-pathtracer/pkg/renderer"
	"github.com/kmander/go-pathtracer/pkg/scene"
)

// getEnv returns an environment variable with a default value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// createScene builds one of the built-in scenes by name
func createScene(sceneType, objPath string) (*scene.Scene, error) {
	switch sceneType {
	case "box":
		return scene.NewSphereBox(), nil
	case "mesh":
		if objPath == "" {
			return nil, fmt.Errorf("mesh scene requires an OBJ file, use -obj <file>")
		}
		return scene.NewMeshScene(objPath)
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// saveImage downscales the render to the output resolution if it was
// supersampled, then encodes it based on the file extension
func saveImage(img *renderer.Image, path string, width, height int) error {
	var out image.Image = img.RGBA()
	if img.Width != width || img.Height != height {
		out = resize.Resize(uint(width), uint(height), out, resize.Bilinear)
	}
	return imaging.Save(out, path)
}

func main() {
	_ = godotenv.Load()

	defaults := renderer.DefaultConfig()
	sceneType := flag.String("scene", getEnv("PT_SCENE", "box"), "Scene to render: 'box' or 'mesh'")
	objPath := flag.String("obj", getEnv("PT_OBJ", ""), "OBJ file for the mesh scene")
	width := flag.Int("width", getEnvInt("PT_WIDTH", defaults.Width), "Output image width in pixels")
	height := flag.Int("height", getEnvInt("PT_HEIGHT", defaults.Height), "Output image height in pixels")
	samples := flag.Int("samples", getEnvInt("PT_SAMPLES", defaults.SamplesPerPixel), "Samples per pixel")
	depth := flag.Int("depth", getEnvInt("PT_DEPTH", defaults.MaxDepth), "Maximum ray bounce depth")
	gamma := flag.Float64("gamma", getEnvFloat("PT_GAMMA", defaults.Gamma), "Gamma correction exponent")
	seed := flag.Int64("seed", int64(getEnvInt("PT_SEED", int(defaults.Seed))), "Base random seed")
	workers := flag.Int("workers", getEnvInt("PT_WORKERS", 0), "Number of parallel workers (0 = CPU count)")
	scale := flag.Int("scale", getEnvInt("PT_SCALE", 1), "Supersampling factor, renders at scale x the output size")
	output := flag.String("out", getEnv("PT_OUT", "image.png"), "Output image path")
	flag.Parse()

	selectedScene, err := createScene(*sceneType, *objPath)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		return
	}

	if *scale < 1 {
		*scale = 1
	}

	config := renderer.Config{
		Width:           *width * *scale,
		Height:          *height * *scale,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		Gamma:           *gamma,
		Seed:            *seed,
		NumWorkers:      *workers,
	}

	logger := renderer.NewDefaultLogger()
	r := renderer.NewRenderer(selectedScene, config, logger)
	img, stats := r.Render()

	if err := saveImage(img, *output, *width, *height); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		return
	}

	logger.Printf("Saved %s (%d pixels, %d samples in %v)\n",
		*output, stats.TotalPixels, stats.TotalSamples, stats.Elapsed.Round(time.Millisecond))
}
