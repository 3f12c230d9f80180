// Command bgsnap renders the background pattern on the CPU and writes it as a PNG.
// The output is the reference the GPU render is compared against.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"shader-background/internal/pattern"
)

func main() {
	out := flag.String("o", "background.png", "output PNG path")
	w := flag.Int("w", 640, "width in pixels")
	h := flag.Int("h", 360, "height in pixels")
	t := flag.Float64("t", 0, "time in seconds")
	mx := flag.Float64("mx", 0.5, "pointer x, 0 at the left edge")
	my := flag.Float64("my", 0.5, "pointer y, 0 at the bottom edge")
	flag.Parse()

	if *w <= 0 || *h <= 0 {
		fmt.Fprintln(os.Stderr, "bgsnap: width and height must be positive")
		os.Exit(2)
	}

	img := pattern.Render(pattern.Uniforms{
		Width:  float32(*w),
		Height: float32(*h),
		Time:   float32(*t),
		MouseX: float32(*mx),
		MouseY: float32(*my),
	})
	if err := imgio.Save(*out, img, imgio.PNGEncoder()); err != nil {
		fmt.Fprintf(os.Stderr, "bgsnap: %v\n", err)
		os.Exit(1)
	}
}
