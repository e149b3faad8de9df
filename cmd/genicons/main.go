// genicons escribe íconos placeholder de ranks y plataformas en el directorio
// de assets, con los colores del layout. Sirve para levantar el bot sin los
// PNG oficiales; los archivos existentes no se pisan salvo con -force.
//
// Uso:
//
//	go run ./cmd/genicons -assets ./assets
//	go run ./cmd/genicons -assets ./assets -layout my_layout.toml -force
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/AkshatTyagi05/potato-league/internal/render"
)

func main() {
	assetsDir := flag.String("assets", "./assets", "assets directory (icons go to {assets}/icons)")
	layoutFile := flag.String("layout", "", "optional layout TOML override")
	size := flag.Int("size", 128, "icon size in pixels")
	force := flag.Bool("force", false, "overwrite existing icons")
	flag.Parse()

	layout, err := render.LoadLayout(*layoutFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: layout: %v\n", err)
		os.Exit(1)
	}
	otFont, err := opentype.Parse(gobold.TTF)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: parse font: %v\n", err)
		os.Exit(1)
	}

	outDir := filepath.Join(*assetsDir, "icons")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error: create output dir: %v\n", err)
		os.Exit(1)
	}

	icons, err := Plan(layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	written, skipped := 0, 0
	for _, ic := range icons {
		outPath := filepath.Join(outDir, ic.File)
		if _, err := os.Stat(outPath); err == nil && !*force {
			skipped++
			continue
		}
		pngData, err := RenderIcon(ic, *size, otFont)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: render %s: %v\n", ic.File, err)
			os.Exit(1)
		}
		if err := os.WriteFile(outPath, pngData, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error: write %s: %v\n", outPath, err)
			os.Exit(1)
		}
		fmt.Printf("  %s (%s)\n", ic.File, ic.Text)
		written++
	}
	fmt.Printf("Done. Wrote %d icons, skipped %d existing.\n", written, skipped)
}
