// fieldshot renders one frame of the vector field at a fixed pointer
// position and writes it to a PNG, for eyeballing rendering changes without
// opening a window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"vecfield/field"
	"vecfield/internal/config"
	"vecfield/paint"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML config file.")
		px         = flag.Float64("px", -1, "Pointer x (default: surface center).")
		py         = flag.Float64("py", -1, "Pointer y (default: surface center).")
		out        = flag.String("o", "field.png", "Output PNG path.")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *px < 0 {
		*px = float64(cfg.Width) / 2
	}
	if *py < 0 {
		*py = float64(cfg.Height) / 2
	}

	t := &paint.RGB565Target{
		Buf:    make([]byte, cfg.Width*cfg.Height*2),
		Stride: cfg.Width * 2,
		W:      cfg.Width,
		H:      cfg.Height,
	}
	p := paint.NewPainter(paint.RGB(cfg.Background.R, cfg.Background.G, cfg.Background.B))

	f := field.ForSurface(cfg.Width, cfg.Height, cfg.CellSize, cfg.XOffset, cfg.YOffset)
	f.GridColor = paint.RGB(cfg.Gridline.R, cfg.Gridline.G, cfg.Gridline.B)

	p.Clear(t)
	f.Update(p, t, *px, *py)

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			c := t.At(x, y)
			j := img.PixOffset(x, y)
			img.Pix[j+0] = c.R
			img.Pix[j+1] = c.G
			img.Pix[j+2] = c.B
			img.Pix[j+3] = 0xFF
		}
	}

	w, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer w.Close()
	if err := png.Encode(w, img); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%dx%d, pointer %.0f,%.0f)\n", *out, cfg.Width, cfg.Height, *px, *py)
}
