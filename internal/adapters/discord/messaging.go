package discord

import (
	"bytes"
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

const cardFileName = "rank_card.png"

// sendEphemeral responde directo, sin defer previo.
func (r *Router) sendEphemeral(ic *discordgo.InteractionCreate, msg string) error {
	err := r.api.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		r.log.Warn("sendEphemeral error", "error", err)
	}
	return err
}

// defer público: la card la ve todo el canal
func (r *Router) deferPublic(ic *discordgo.InteractionCreate) error {
	err := r.api.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		r.log.Warn("deferPublic error", "error", err)
	}
	return err
}

// Defer efímero (para trabajos >3s)
func (r *Router) deferEphemeral(ic *discordgo.InteractionCreate) error {
	err := r.api.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		r.log.Warn("deferEphemeral error", "error", err)
	}
	return err
}

// deferUpdate para botones: después se edita el mismo mensaje.
func (r *Router) deferUpdate(ic *discordgo.InteractionCreate) error {
	err := r.api.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		r.log.Warn("deferUpdate error", "error", err)
	}
	return err
}

func (r *Router) replyEphemeral(ic *discordgo.InteractionCreate, content string) {
	_, err := r.api.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		// Fallback sólo si todavía no hay respuesta (webhook desconocido)
		var reqErr *discordgo.RESTError
		if errors.As(err, &reqErr) && reqErr.Message != nil && reqErr.Message.Code == 10015 {
			_ = r.sendEphemeral(ic, content)
			return
		}
		r.log.Warn("replyEphemeral error", "error", err)
	}
}

func (r *Router) editText(ic *discordgo.InteractionCreate, content string) {
	_, err := r.api.InteractionResponseEdit(ic.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	if err != nil {
		r.log.Warn("editText error", "error", err)
	}
}

// editCard reemplaza la imagen anterior (Attachments vacío) y los botones.
func (r *Router) editCard(ic *discordgo.InteractionCreate, png []byte, id string, mode domain.Mode) {
	empty := ""
	comps := cardButtons(id, mode)
	_, err := r.api.InteractionResponseEdit(ic.Interaction, &discordgo.WebhookEdit{
		Content:     &empty,
		Components:  &comps,
		Attachments: &[]*discordgo.MessageAttachment{},
		Files: []*discordgo.File{{
			Name:        cardFileName,
			ContentType: "image/png",
			Reader:      bytes.NewReader(png),
		}},
	})
	if err != nil {
		r.log.Warn("editCard error", "error", err)
	}
}
