package tracker

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

// --- Profile ---
type profileDTO struct {
	Data *struct {
		PlatformInfo struct {
			PlatformUserHandle string `json:"platformUserHandle"`
		} `json:"platformInfo"`
		Segments []segmentDTO `json:"segments"`
	} `json:"data"`
}

type segmentDTO struct {
	Type     string `json:"type"`
	Metadata struct {
		Name string `json:"name"`
	} `json:"metadata"`
	Stats map[string]statDTO `json:"stats"`
}

// statDTO: cada stat de tracker.gg es {value, displayValue, metadata{...}}.
type statDTO struct {
	Value    *json.Number `json:"value"`
	Metadata struct {
		Name     string `json:"name"`
		RankName string `json:"rankName"`
		Type     string `json:"type"`
	} `json:"metadata"`
}

func (s statDTO) intValue() int {
	if s.Value == nil {
		return 0
	}
	if n, err := s.Value.Int64(); err == nil {
		return int(n)
	}
	f, err := s.Value.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Round(f))
}

func (d profileDTO) toDomain(username string) *domain.Profile {
	p := &domain.Profile{DisplayName: username}
	if d.Data == nil {
		return p
	}
	if h := strings.TrimSpace(d.Data.PlatformInfo.PlatformUserHandle); h != "" {
		p.DisplayName = h
	}
	p.Segments = make([]domain.Segment, 0, len(d.Data.Segments))
	for _, s := range d.Data.Segments {
		p.Segments = append(p.Segments, s.toDomain())
	}
	return p
}

func (s segmentDTO) toDomain() domain.Segment {
	seg := domain.Segment{Name: s.Metadata.Name}
	switch strings.ToLower(s.Type) {
	case "overview":
		seg.Type = domain.SegmentOverview
		seg.RewardLevel = s.Stats["seasonRewardLevel"].Metadata.RankName
	case "playlist":
		seg.Type = domain.SegmentPlaylist
	default:
		seg.Type = domain.SegmentOther
	}

	streak := s.Stats["winStreak"]
	st := domain.StreakWin
	if strings.EqualFold(streak.Metadata.Type, string(domain.StreakLoss)) {
		st = domain.StreakLoss
	}
	seg.Stats = domain.Stats{
		Tier:          s.Stats["tier"].Metadata.Name,
		Division:      s.Stats["division"].Metadata.Name,
		Rating:        s.Stats["rating"].intValue(),
		MatchesPlayed: s.Stats["matchesPlayed"].intValue(),
		Streak:        domain.Streak{Value: streak.intValue(), Type: st},
	}
	return seg
}
