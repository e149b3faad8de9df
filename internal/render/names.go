package render

import (
	"fmt"
	"strings"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

var romanSuffix = map[string]string{
	"i":   "1",
	"ii":  "2",
	"iii": "3",
	"iv":  "4",
}

// IconName arma el nombre de archivo (sin .png) del ícono de un tier:
// "Grand Champion III" -> "grand_champion_3", "Bronze" -> "bronze".
// Aplicarlo dos veces da lo mismo.
func IconName(tier string) string {
	words := strings.Fields(strings.ToLower(strings.ReplaceAll(tier, "_", " ")))
	if len(words) == 0 {
		return "unranked"
	}
	if d, ok := romanSuffix[words[len(words)-1]]; ok && len(words) > 1 {
		words[len(words)-1] = d
	}
	return strings.Join(words, "_")
}

// rankKey es IconName sin el sufijo de división.
func rankKey(tier string) string {
	name := IconName(tier)
	if i := strings.LastIndexByte(name, '_'); i > 0 {
		if suf := name[i+1:]; suf >= "1" && suf <= "4" && len(suf) == 1 {
			return name[:i]
		}
	}
	return name
}

// StreakText: 1 es singular, 0 y >1 plural. La polaridad sale del tipo.
func StreakText(s domain.Streak) string {
	n := s.Value
	if n < 0 {
		n = -n
	}
	if s.Type == domain.StreakLoss {
		if n == 1 {
			return "1 Loss"
		}
		return fmt.Sprintf("%d Losses", n)
	}
	if n == 1 {
		return "1 Win"
	}
	return fmt.Sprintf("%d Wins", n)
}

// RewardLevel lee el seasonRewardLevel del primer overview.
func RewardLevel(segments []domain.Segment) string {
	for _, s := range segments {
		if s.Type != domain.SegmentOverview {
			continue
		}
		if strings.TrimSpace(s.RewardLevel) == "" {
			return "Unranked"
		}
		return s.RewardLevel
	}
	return "Unranked"
}

// PlaylistIndex indexa los segments playlist por nombre; si hay repetidos gana el primero.
func PlaylistIndex(segments []domain.Segment) map[string]domain.Segment {
	out := make(map[string]domain.Segment, len(segments))
	for _, s := range segments {
		if s.Type != domain.SegmentPlaylist {
			continue
		}
		if _, dup := out[s.Name]; !dup {
			out[s.Name] = s
		}
	}
	return out
}
