package service

import (
	"context"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
	"github.com/AkshatTyagi05/potato-league/internal/render"
)

// Lo implementa internal/adapters/tracker.Client
type StatsAPI interface {
	FetchProfile(ctx context.Context, platform domain.Platform, username string) (*domain.Profile, error)
}

// Lo implementa internal/render.Renderer
type CardRenderer interface {
	RenderPNG(req render.Request) ([]byte, error)
}

// Lo implementa internal/infra/storage.LinkRepo
type LinkRepo interface {
	GetLink(ctx context.Context, discordID string) (domain.LinkRecord, error)
	UpsertLink(ctx context.Context, rec domain.LinkRecord) error
}
