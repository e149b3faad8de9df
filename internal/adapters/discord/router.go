package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/AkshatTyagi05/potato-league/internal/app/service"
	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

// Lo implementa service.RankService
type RankAPI interface {
	Card(ctx context.Context, platform domain.Platform, username string, mode domain.Mode) (service.Snapshot, []byte, error)
	Fetch(ctx context.Context, platform domain.Platform, username string) (service.Snapshot, error)
	Render(snap service.Snapshot, mode domain.Mode) ([]byte, error)
	Link(ctx context.Context, discordID string, platform domain.Platform, username string) (domain.LinkRecord, error)
	Me(ctx context.Context, discordID string, mode domain.Mode) (service.Snapshot, []byte, error)
}

// responder es la parte de *discordgo.Session que usan los handlers.
type responder interface {
	InteractionRespond(i *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(i *discordgo.Interaction, edit *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(i *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Router struct {
	s       *discordgo.Session
	api     responder
	guildID string // vacío = comandos globales

	rank     RankAPI
	controls *Controls
	log      *slog.Logger
}

func NewRouter(s *discordgo.Session, guildID string, rank RankAPI, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	r := &Router{
		s:        s,
		guildID:  guildID,
		rank:     rank,
		controls: NewControls(),
		log:      log,
	}
	if s != nil {
		r.api = s
	}
	return r
}

// Register crea los comandos en el guild configurado, o globales si no hay.
func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		r.dispatch(ic)
	})
}

func (r *Router) dispatch(ic *discordgo.InteractionCreate) {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		r.handleSlashCommand(ic)
	case discordgo.InteractionMessageComponent:
		r.handleMessageComponent(ic)
	}
}
