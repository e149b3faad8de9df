package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
	"github.com/AkshatTyagi05/potato-league/internal/render"
)

// ErrEmptyUsername se devuelve antes de tocar la API o el store.
var ErrEmptyUsername = errors.New("empty username")

// Snapshot es el resultado de un fetch: alcanza para volver a dibujar la
// card en otro modo sin pedirle nada a tracker.gg.
type Snapshot struct {
	// Requested es lo que pidió el usuario, antes de aplicar alias. Refresh
	// vuelve a pedir esto.
	Requested domain.Identity
	Identity  domain.Identity
	Segments  []domain.Segment
}

type RankService struct {
	stats   StatsAPI
	cards   CardRenderer
	links   LinkRepo
	aliases map[string]domain.Identity
	log     *slog.Logger
}

func NewRankService(stats StatsAPI, cards CardRenderer, links LinkRepo, aliases map[string]domain.Identity, log *slog.Logger) *RankService {
	if log == nil {
		log = slog.Default()
	}
	if aliases == nil {
		aliases = map[string]domain.Identity{}
	}
	return &RankService{stats: stats, cards: cards, links: links, aliases: aliases, log: log}
}

// Resolve aplica la tabla de alias. Un alias sin plataforma conserva la
// pedida. No encadena: se aplica una sola vez.
func (s *RankService) Resolve(platform domain.Platform, username string) domain.Identity {
	id := domain.Identity{Username: strings.TrimSpace(username), Platform: platform}
	a, ok := s.aliases[strings.ToLower(id.Username)]
	if !ok {
		return id
	}
	s.log.Debug("rank alias applied", "from", id.Username, "to", a.Username)
	id.Username = a.Username
	if a.Platform != "" {
		id.Platform = a.Platform
	}
	return id
}

// Fetch resuelve alias y hace el único GET de la invocación.
func (s *RankService) Fetch(ctx context.Context, platform domain.Platform, username string) (Snapshot, error) {
	if strings.TrimSpace(username) == "" {
		return Snapshot{}, ErrEmptyUsername
	}
	req := domain.Identity{Username: strings.TrimSpace(username), Platform: platform}
	id := s.Resolve(platform, username)
	p, err := s.stats.FetchProfile(ctx, id.Platform, id.Username)
	if err != nil {
		return Snapshot{}, err
	}
	id.DisplayName = p.DisplayName
	return Snapshot{Requested: req, Identity: id, Segments: p.Segments}, nil
}

// Render dibuja un snapshot ya obtenido.
func (s *RankService) Render(snap Snapshot, mode domain.Mode) ([]byte, error) {
	png, err := s.cards.RenderPNG(render.Request{
		Identity: snap.Identity,
		Segments: snap.Segments,
		Mode:     mode,
	})
	if err != nil {
		return nil, fmt.Errorf("render card: %w", err)
	}
	return png, nil
}

// Card = Fetch + Render.
func (s *RankService) Card(ctx context.Context, platform domain.Platform, username string, mode domain.Mode) (Snapshot, []byte, error) {
	snap, err := s.Fetch(ctx, platform, username)
	if err != nil {
		return Snapshot{}, nil, err
	}
	png, err := s.Render(snap, mode)
	if err != nil {
		return Snapshot{}, nil, err
	}
	return snap, png, nil
}

// Link guarda (o pisa) la cuenta del usuario de Discord. No valida contra la
// API: el jugador puede no existir todavía en tracker.gg.
func (s *RankService) Link(ctx context.Context, discordID string, platform domain.Platform, username string) (domain.LinkRecord, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.LinkRecord{}, ErrEmptyUsername
	}
	rec := domain.LinkRecord{DiscordID: discordID, Username: username, Platform: platform}
	if err := s.links.UpsertLink(ctx, rec); err != nil {
		return domain.LinkRecord{}, err
	}
	s.log.Info("rank link saved", "discord_id", discordID, "platform", platform, "username", username)
	return rec, nil
}

// Me busca el link y dibuja la card. Sin link devuelve ErrNotLinked sin
// llamar a la API. Si falla el fetch, Requested igual viene cargado para
// armar el mensaje de error.
func (s *RankService) Me(ctx context.Context, discordID string, mode domain.Mode) (Snapshot, []byte, error) {
	rec, err := s.links.GetLink(ctx, discordID)
	if err != nil {
		return Snapshot{}, nil, err
	}
	snap, png, err := s.Card(ctx, rec.Platform, rec.Username, mode)
	if err != nil {
		return Snapshot{Requested: domain.Identity{Username: rec.Username, Platform: rec.Platform}}, nil, err
	}
	return snap, png, nil
}
