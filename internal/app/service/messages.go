package service

import (
	"errors"
	"fmt"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

// UserMessage traduce un error a lo que ve el usuario en Discord. Lo que no
// reconoce sale como error genérico; el detalle queda en el log del caller.
func UserMessage(err error, username string) string {
	var status *domain.UnexpectedStatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrAuthRejected):
		return "❌ 401: API Key rejected. Check TRN-Api-Key in apikey.env"
	case errors.Is(err, domain.ErrBlocked):
		return "❌ 403: Access Forbidden. Tracker.gg is blocking the request."
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Sprintf("❌ 404: Player `%s` not found. Check platform and ID.", username)
	case errors.As(err, &status):
		return fmt.Sprintf("❌ API Error: Status %d", status.Status)
	case errors.Is(err, domain.ErrUnreachable):
		return "❌ Could not reach Tracker.gg. Try again in a moment."
	case errors.Is(err, domain.ErrMalformedResponse):
		return "❌ Tracker.gg sent a response we could not read."
	case errors.Is(err, domain.ErrNotLinked):
		return "❌ You haven't linked an account yet. Use `/ranklink` first."
	case errors.Is(err, domain.ErrStoreSchemaMissing):
		return "⚠️ The link database had to be rebuilt. Please try again."
	case errors.Is(err, domain.ErrUnknownPlatform):
		return "❌ Unknown platform. Use epic, steam, psn or xbl."
	case errors.Is(err, ErrEmptyUsername):
		return "❌ Username can't be empty."
	}
	return "❌ An unexpected error occurred. Check terminal for logs."
}

// Expected indica si el error es parte de la taxonomía conocida (se loguea
// como warn y no como error).
func Expected(err error) bool {
	var status *domain.UnexpectedStatusError
	return errors.Is(err, domain.ErrAuthRejected) ||
		errors.Is(err, domain.ErrBlocked) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.As(err, &status) ||
		errors.Is(err, domain.ErrUnreachable) ||
		errors.Is(err, domain.ErrMalformedResponse) ||
		errors.Is(err, domain.ErrNotLinked) ||
		errors.Is(err, domain.ErrStoreSchemaMissing) ||
		errors.Is(err, domain.ErrUnknownPlatform) ||
		errors.Is(err, ErrEmptyUsername)
}
