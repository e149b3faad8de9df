package render

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

//go:embed layout.default.toml
var defaultLayoutTOML string

// SlotCount es fijo: la grilla es 2x2.
const SlotCount = 4

type Point struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

type Rect struct {
	X0 int `toml:"x0"`
	Y0 int `toml:"y0"`
	X1 int `toml:"x1"`
	Y1 int `toml:"y1"`
}

// Layout junta todas las constantes visuales de la card.
type Layout struct {
	Canvas struct {
		Width           int    `toml:"width"`
		Height          int    `toml:"height"`
		Background      string `toml:"background"`
		BackgroundImage string `toml:"background_image"`
	} `toml:"canvas"`

	Fonts struct {
		File            string  `toml:"file"`
		Main            float64 `toml:"main"`
		Sub             float64 `toml:"sub"`
		Small           float64 `toml:"small"`
		TierSmall       float64 `toml:"tier_small"`
		TierShrinkAfter int     `toml:"tier_shrink_after"`
	} `toml:"fonts"`

	Header struct {
		Rect    Rect   `toml:"rect"`
		Radius  int    `toml:"radius"`
		Fill    string `toml:"fill"`
		Icon    Point  `toml:"icon"` // y es el centro vertical
		IconBox int    `toml:"icon_box"`
		Name    Point  `toml:"name"`
		Reward  Point  `toml:"reward"`
	} `toml:"header"`

	Tile struct {
		Width     int     `toml:"width"`
		Height    int     `toml:"height"`
		Radius    int     `toml:"radius"`
		Fill      string  `toml:"fill"`
		Positions []Point `toml:"positions"`
		Label     Point   `toml:"label"`
		Tier      Point   `toml:"tier"`
		Division  Point   `toml:"division"`
		Rating    Point   `toml:"rating"`
		Matches   Point   `toml:"matches"`
		Streak    Point   `toml:"streak"`
		Icon      Point   `toml:"icon"`
		IconSize  int     `toml:"icon_size"`
	} `toml:"tile"`

	Colors struct {
		Name           string `toml:"name"`
		Label          string `toml:"label"`
		Division       string `toml:"division"`
		Rating         string `toml:"rating"`
		Matches        string `toml:"matches"`
		Win            string `toml:"win"`
		Loss           string `toml:"loss"`
		Unranked       string `toml:"unranked"`
		RankFallback   string `toml:"rank_fallback"`
		RewardFallback string `toml:"reward_fallback"`
	} `toml:"colors"`

	// Ranks: clave normalizada ("grand_champion") o primera palabra ("gold") -> color.
	Ranks map[string]string `toml:"ranks"`
	// Platforms: código de plataforma -> archivo dentro de icons/.
	Platforms map[string]string `toml:"platforms"`

	Modes struct {
		Standard []string `toml:"standard"`
		Extras   []string `toml:"extras"`
	} `toml:"modes"`
}

// DefaultLayout devuelve el layout embebido.
func DefaultLayout() (Layout, error) {
	var l Layout
	if _, err := toml.Decode(defaultLayoutTOML, &l); err != nil {
		return Layout{}, fmt.Errorf("default layout: %w", err)
	}
	return l, l.Validate()
}

// LoadLayout aplica un archivo TOML encima del default. Sólo pisa las claves
// que el archivo define; path vacío devuelve el default.
func LoadLayout(path string) (Layout, error) {
	l, err := DefaultLayout()
	if err != nil || path == "" {
		return l, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	if _, err := toml.Decode(string(data), &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return l, l.Validate()
}

func (l Layout) Validate() error {
	var errs []error
	if l.Canvas.Width <= 0 || l.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d", l.Canvas.Width, l.Canvas.Height))
	}
	if len(l.Tile.Positions) != SlotCount {
		errs = append(errs, fmt.Errorf("tile.positions: want %d, got %d", SlotCount, len(l.Tile.Positions)))
	}
	if len(l.Modes.Standard) != SlotCount {
		errs = append(errs, fmt.Errorf("modes.standard: want %d slots, got %d", SlotCount, len(l.Modes.Standard)))
	}
	if len(l.Modes.Extras) != SlotCount {
		errs = append(errs, fmt.Errorf("modes.extras: want %d slots, got %d", SlotCount, len(l.Modes.Extras)))
	}
	if l.Fonts.Main <= 0 || l.Fonts.Sub <= 0 || l.Fonts.Small <= 0 {
		errs = append(errs, errors.New("fonts: sizes must be positive"))
	}
	return errors.Join(errs...)
}

// Slots devuelve los nombres de playlist a dibujar para el modo.
func (l Layout) Slots(m domain.Mode) []string {
	if m == domain.ModeExtras {
		return l.Modes.Extras
	}
	return l.Modes.Standard
}
