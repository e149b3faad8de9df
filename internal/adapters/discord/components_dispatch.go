package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/AkshatTyagi05/potato-league/internal/app/service"
)

func (r *Router) handleMessageComponent(ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("panic in component", "custom_id", data.CustomID, "panic", rec)
			r.replyEphemeral(ic, "❌ An unexpected error occurred. Check terminal for logs.")
		}
	}()

	action, id, ok := parseCustomID(data.CustomID)
	if !ok {
		r.log.Warn("unknown component", "custom_id", data.CustomID)
		_ = r.sendEphemeral(ic, "Unknown control.")
		return
	}
	st, ok := r.controls.Get(id)
	if !ok {
		// botón de un mensaje anterior a un reinicio
		_ = r.sendEphemeral(ic, "⌛ This card has expired. Run `/rank` again.")
		return
	}

	_ = r.deferUpdate(ic)
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch action {
	case actionToggle:
		defer step(r.log, "component.toggle.total")()
		st.Mode = st.Mode.Toggle()
		png, err := r.rank.Render(st.Snap, st.Mode)
		if err != nil {
			r.logErr("toggle render failed", err, "username", st.Snap.Identity.Username)
			r.replyEphemeral(ic, service.UserMessage(err, st.Snap.Requested.Username))
			return
		}
		r.controls.Update(id, st)
		r.editCard(ic, png, id, st.Mode)

	case actionRefresh:
		defer step(r.log, "component.refresh.total")()
		snap, err := r.rank.Fetch(ctx, st.Snap.Requested.Platform, st.Snap.Requested.Username)
		if err != nil {
			r.logErr("refresh failed", err, "username", st.Snap.Requested.Username)
			r.replyEphemeral(ic, service.UserMessage(err, st.Snap.Requested.Username))
			return
		}
		png, err := r.rank.Render(snap, st.Mode)
		if err != nil {
			r.logErr("refresh render failed", err, "username", st.Snap.Requested.Username)
			r.replyEphemeral(ic, service.UserMessage(err, st.Snap.Requested.Username))
			return
		}
		st.Snap = snap
		r.controls.Update(id, st)
		r.editCard(ic, png, id, st.Mode)
	}
}
