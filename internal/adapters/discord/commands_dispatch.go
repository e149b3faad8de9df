// lógica de InteractionApplicationCommand: parsea opciones y despacha al
// RankService; el formateo de errores vive en service.UserMessage
package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/AkshatTyagi05/potato-league/internal/app/service"
	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

const commandTimeout = 12 * time.Second

func (r *Router) handleSlashCommand(ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	uid := requesterID(ic)
	r.log.Info("cmd", "name", cmd.Name, "by", uid, "guild", ic.GuildID)

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("panic in cmd", "name", cmd.Name, "panic", rec)
			r.replyEphemeral(ic, "❌ An unexpected error occurred. Check terminal for logs.")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch cmd.Name {

	//--> card de cualquier jugador
	case "rank":
		_ = r.deferPublic(ic)
		platform, username, err := platformAndUser(ic)
		if err != nil {
			r.editText(ic, service.UserMessage(err, username))
			return
		}
		defer step(r.log, "cmd.rank.total")()
		snap, png, err := r.rank.Card(ctx, platform, username, domain.ModeStandard)
		r.respondCard(ic, snap, png, domain.ModeStandard, err, username)

	//--> guarda discord id -> cuenta
	case "ranklink":
		_ = r.deferEphemeral(ic)
		platform, username, err := platformAndUser(ic)
		if err != nil {
			r.replyEphemeral(ic, service.UserMessage(err, username))
			return
		}
		rec, err := r.rank.Link(ctx, uid, platform, username)
		if err != nil {
			r.logErr("ranklink failed", err, "by", uid)
			r.replyEphemeral(ic, service.UserMessage(err, username))
			return
		}
		r.replyEphemeral(ic, fmt.Sprintf("✅ Linked to **%s** (%s). Use `/rankme` to see your ranks.", rec.Username, rec.Platform.Label()))

	//--> card de la cuenta vinculada
	case "rankme":
		_ = r.deferPublic(ic)
		defer step(r.log, "cmd.rankme.total")()
		snap, png, err := r.rank.Me(ctx, uid, domain.ModeStandard)
		r.respondCard(ic, snap, png, domain.ModeStandard, err, snap.Requested.Username)

	default:
		r.replyEphemeral(ic, "Unknown command.")
	}
}

// respondCard edita la respuesta diferida con la imagen y los botones, o con
// el mensaje de error.
func (r *Router) respondCard(ic *discordgo.InteractionCreate, snap service.Snapshot, png []byte, mode domain.Mode, err error, username string) {
	if err != nil {
		r.logErr("card failed", err, "username", username)
		r.editText(ic, service.UserMessage(err, username))
		return
	}
	id := r.controls.Put(CardState{Snap: snap, Mode: mode})
	r.editCard(ic, png, id, mode)
}

func platformAndUser(ic *discordgo.InteractionCreate) (domain.Platform, string, error) {
	username, _ := optStr(ic, "username")
	raw, _ := optStr(ic, "platform")
	platform, err := domain.ParsePlatform(raw)
	if err != nil {
		return "", username, err
	}
	return platform, username, nil
}

func (r *Router) logErr(msg string, err error, args ...any) {
	args = append(args, "error", err)
	if service.Expected(err) {
		r.log.Warn(msg, args...)
		return
	}
	r.log.Error(msg, args...)
}
