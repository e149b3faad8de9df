package discord

import (
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/AkshatTyagi05/potato-league/internal/app/service"
	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

func TestControls_PutGetUpdate(t *testing.T) {
	c := NewControls()
	id := c.Put(CardState{Snap: service.Snapshot{Identity: domain.Identity{Username: "p"}}, Mode: domain.ModeStandard})

	st, ok := c.Get(id)
	if !ok || st.Mode != domain.ModeStandard {
		t.Fatalf("Get = %+v %v", st, ok)
	}
	st.Mode = st.Mode.Toggle()
	c.Update(id, st)
	if got, _ := c.Get(id); got.Mode != domain.ModeExtras {
		t.Fatalf("mode after update = %s", got.Mode)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("unknown id found")
	}
}

func TestControls_Concurrent(t *testing.T) {
	c := NewControls()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := c.Put(CardState{Mode: domain.ModeStandard})
			st, _ := c.Get(id)
			st.Mode = domain.ModeExtras
			c.Update(id, st)
		}()
	}
	wg.Wait()
	if c.Len() != 50 {
		t.Fatalf("len = %d", c.Len())
	}
}

func TestParseCustomID(t *testing.T) {
	c := NewControls()
	id := c.Put(CardState{})

	action, got, ok := parseCustomID(customID(actionToggle, id))
	if !ok || action != actionToggle || got != id {
		t.Fatalf("toggle parse = %q %q %v", action, got, ok)
	}
	if action, _, ok := parseCustomID(customID(actionRefresh, id)); !ok || action != actionRefresh {
		t.Fatalf("refresh parse = %q %v", action, ok)
	}

	for _, bad := range []string{
		"", "rank_toggle", "rank_toggle:", "rank_toggle:not-a-uuid",
		"queue_join:" + id, "rank_toggle" + id,
	} {
		if _, _, ok := parseCustomID(bad); ok {
			t.Errorf("parseCustomID(%q) accepted", bad)
		}
	}
}

func TestCardButtons(t *testing.T) {
	rows := cardButtons("abc", domain.ModeStandard)
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	row, ok := rows[0].(discordgo.ActionsRow)
	if !ok || len(row.Components) != 2 {
		t.Fatalf("row = %#v", rows[0])
	}
	toggle := row.Components[0].(discordgo.Button)
	refresh := row.Components[1].(discordgo.Button)
	if toggle.Label != "Show Extras" || toggle.CustomID != "rank_toggle:abc" {
		t.Errorf("toggle = %+v", toggle)
	}
	if !strings.Contains(refresh.Label, "Refresh") || refresh.CustomID != "rank_refresh:abc" {
		t.Errorf("refresh = %+v", refresh)
	}

	extras := cardButtons("abc", domain.ModeExtras)[0].(discordgo.ActionsRow)
	if extras.Components[0].(discordgo.Button).Label != "Show Ranked" {
		t.Error("extras mode should offer going back to ranked")
	}
}
