package discord

import (
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/AkshatTyagi05/potato-league/internal/app/service"
	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

const (
	actionToggle  = "rank_toggle"
	actionRefresh = "rank_refresh"
)

// CardState es lo que recuerda cada mensaje con card para sus botones.
type CardState struct {
	Snap service.Snapshot
	Mode domain.Mode
}

// Controls guarda el estado por mensaje, indexado por el uuid que viaja en
// el custom_id. Vive en memoria: tras un reinicio los botones viejos caducan.
type Controls struct {
	mu     sync.Mutex
	states map[string]CardState
}

func NewControls() *Controls {
	return &Controls{states: map[string]CardState{}}
}

func (c *Controls) Put(st CardState) string {
	id := uuid.NewString()
	c.mu.Lock()
	c.states[id] = st
	c.mu.Unlock()
	return id
}

func (c *Controls) Get(id string) (CardState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.states[id]
	return st, ok
}

func (c *Controls) Update(id string, st CardState) {
	c.mu.Lock()
	c.states[id] = st
	c.mu.Unlock()
}

func (c *Controls) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.states)
}

func customID(action, id string) string { return action + ":" + id }

// parseCustomID acepta solo nuestras dos acciones con un uuid válido.
func parseCustomID(s string) (action, id string, ok bool) {
	action, id, found := strings.Cut(s, ":")
	if !found {
		return "", "", false
	}
	if action != actionToggle && action != actionRefresh {
		return "", "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", "", false
	}
	return action, id, true
}

func toggleLabel(m domain.Mode) string {
	if m == domain.ModeExtras {
		return "Show Ranked"
	}
	return "Show Extras"
}

func cardButtons(id string, mode domain.Mode) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    toggleLabel(mode),
				Style:    discordgo.PrimaryButton,
				CustomID: customID(actionToggle, id),
			},
			discordgo.Button{
				Label:    "🔄 Refresh",
				Style:    discordgo.SecondaryButton,
				CustomID: customID(actionRefresh, id),
			},
		}},
	}
}
