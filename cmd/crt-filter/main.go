package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ethanwork/cs-crt-filter/internal/crt"
	"github.com/ethanwork/cs-crt-filter/internal/imaging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("crt-filter - 5x CRT-style image upscaler")
		fmt.Println()
		fmt.Println("Usage: crt-filter <image> [blend-multiplier]")
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println("  image              Path to a PNG, JPEG, GIF, TIFF, or BMP image")
		fmt.Println("  blend-multiplier   Strength of the neighbor blend (default 1.5)")
		fmt.Println()
		fmt.Println("The result is written next to the input with a _crt suffix,")
		fmt.Println("e.g. shot.png -> shot_crt.png.")
		return
	}

	// Progress goes to stdout; errors go to stderr via log.
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	path := os.Args[1]
	multiplier := 1.5
	if len(os.Args) > 2 {
		var err error
		multiplier, err = strconv.ParseFloat(os.Args[2], 64)
		if err != nil {
			log.Fatalf("invalid blend multiplier %q: %v", os.Args[2], err)
		}
	}

	src, err := imaging.Load(path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("Loaded %s (%dx%d)\n", path, src.Width(), src.Height())

	cfg := crt.DefaultConfig()
	cfg.GlobalMultiplier = multiplier
	out := crt.ScaleAndBlur(src, cfg)
	fmt.Printf("Scaled to %dx%d\n", out.Width(), out.Height())

	outPath := imaging.OutputPath(path)
	if err := imaging.Save(out, outPath); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("Saved %s\n", outPath)
}
