package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tdfont "github.com/tdewolff/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Assets son los recursos estáticos de sólo lectura: fuente, fondo e íconos.
// Si algo falta se degrada (fuente embebida, sin ícono) en vez de fallar.
type Assets struct {
	dir  string
	font *opentype.Font
	log  *slog.Logger
}

// LoadAssets parsea la fuente del layout una sola vez. Los íconos se leen
// de disco en cada render.
func LoadAssets(dir string, l Layout, log *slog.Logger) *Assets {
	if log == nil {
		log = slog.Default()
	}
	a := &Assets{dir: dir, log: log}

	if l.Fonts.File != "" {
		f, err := loadFontFile(filepath.Join(dir, l.Fonts.File))
		if err == nil {
			a.font = f
		} else {
			log.Warn("card font unavailable, using embedded Go Bold", "file", l.Fonts.File, "error", err)
		}
	}
	if a.font == nil {
		f, err := opentype.Parse(gobold.TTF)
		if err != nil {
			// gobold viene embebido; esto no debería pasar nunca.
			panic(fmt.Sprintf("parse embedded gobold: %v", err))
		}
		a.font = f
	}
	return a
}

func loadFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isWebFont(path, data) {
		if data, err = tdfont.ToSFNT(data); err != nil {
			return nil, fmt.Errorf("convert web font to sfnt: %w", err)
		}
	}
	return opentype.Parse(data)
}

// isWebFont detecta WOFF/WOFF2 por extensión o magic bytes ("wOFF" / "wOF2").
func isWebFont(path string, data []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".woff" || ext == ".woff2" {
		return true
	}
	return len(data) >= 4 && data[0] == 'w' && data[1] == 'O' && data[2] == 'F' && (data[3] == 'F' || data[3] == '2')
}

// face crea una face nueva; las faces no son seguras entre goroutines.
func (a *Assets) face(size float64) (font.Face, error) {
	return opentype.NewFace(a.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Icon carga icons/<name>. ok=false si no existe o no se puede decodificar.
func (a *Assets) Icon(name string) (image.Image, bool) {
	return a.image(filepath.Join("icons", name))
}

func (a *Assets) image(rel string) (image.Image, bool) {
	if a == nil || rel == "" {
		return nil, false
	}
	path := filepath.Join(a.dir, rel)
	f, err := os.Open(path)
	if err != nil {
		a.log.Debug("render asset missing", "path", path)
		return nil, false
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		a.log.Warn("render asset unreadable", "path", path, "error", err)
		return nil, false
	}
	return img, true
}
