package domain

import "strings"

// Platform es el código que usa tracker.gg en la ruta del perfil.
type Platform string

const (
	PlatformEpic  Platform = "epic"
	PlatformSteam Platform = "steam"
	PlatformPSN   Platform = "psn"
	PlatformXbox  Platform = "xbl"
)

var platformAliases = map[string]Platform{
	"epic":        PlatformEpic,
	"steam":       PlatformSteam,
	"psn":         PlatformPSN,
	"playstation": PlatformPSN,
	"xbl":         PlatformXbox,
	"xbox":        PlatformXbox,
}

// ParsePlatform acepta el código o el nombre largo ("Xbox", "PlayStation").
func ParsePlatform(s string) (Platform, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if f := strings.Fields(key); len(f) > 0 {
		key = f[0]
	}
	if p, ok := platformAliases[key]; ok {
		return p, nil
	}
	return "", ErrUnknownPlatform
}

// Label es el nombre que mostramos en Discord.
func (p Platform) Label() string {
	switch p {
	case PlatformEpic:
		return "Epic Games"
	case PlatformSteam:
		return "Steam"
	case PlatformPSN:
		return "PlayStation"
	case PlatformXbox:
		return "Xbox"
	}
	return string(p)
}

// Mode selecciona qué cuatro playlists dibuja la card.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeExtras   Mode = "extras"
)

// ParseMode: cualquier cosa que no sea "extras" es standard.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeExtras)) {
		return ModeExtras
	}
	return ModeStandard
}

// Toggle alterna standard <-> extras.
func (m Mode) Toggle() Mode {
	if m == ModeExtras {
		return ModeStandard
	}
	return ModeExtras
}

type SegmentType string

const (
	SegmentOverview SegmentType = "overview"
	SegmentPlaylist SegmentType = "playlist"
	SegmentOther    SegmentType = "other"
)

type StreakType string

const (
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "loss"
)

// Streak: racha actual. La polaridad sale de Type, no del signo de Value.
type Streak struct {
	Value int
	Type  StreakType
}

// Stats es la bolsa de métricas de un segment. Todo es opcional; los zero
// values ya son los defaults que dibuja la card salvo Tier (ver TierName).
type Stats struct {
	Tier          string
	Division      string
	Rating        int
	MatchesPlayed int
	Streak        Streak
}

// TierName devuelve "Unranked" si el tier vino vacío.
func (s Stats) TierName() string {
	if strings.TrimSpace(s.Tier) == "" {
		return "Unranked"
	}
	return s.Tier
}

// Segment es un registro de data.segments.
type Segment struct {
	Type SegmentType
	// Name es metadata.name: el nombre de la playlist ("Ranked Duel 1v1").
	Name  string
	Stats Stats
	// RewardLevel sólo viene en el overview (seasonRewardLevel).
	RewardLevel string
}

// Profile es lo que devuelve el cliente de stats ya mapeado.
type Profile struct {
	DisplayName string
	Segments    []Segment
}

// Identity identifica al jugador dibujado en la card.
type Identity struct {
	Username    string
	DisplayName string
	Platform    Platform
}

// Name prefiere DisplayName y cae a Username.
func (i Identity) Name() string {
	if strings.TrimSpace(i.DisplayName) != "" {
		return i.DisplayName
	}
	return i.Username
}
