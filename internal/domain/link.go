package domain

import "time"

// LinkRecord guarda con qué cuenta de RL está vinculado un usuario de Discord.
type LinkRecord struct {
	DiscordID string
	Username  string
	Platform  Platform
	UpdatedAt time.Time
}
