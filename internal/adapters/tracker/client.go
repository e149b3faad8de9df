package tracker

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

// FetchProfile trae el perfil ranked de un jugador. Un único GET, sin reintentos.
func (c *Client) FetchProfile(ctx context.Context, platform domain.Platform, username string) (*domain.Profile, error) {
	username = strings.TrimSpace(username)
	path := fmt.Sprintf(profilePath, url.PathEscape(string(platform)), url.PathEscape(username))

	var dto profileDTO
	if err := c.doJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	// data es lo único que exigimos; segments puede faltar.
	if dto.Data == nil {
		return nil, fmt.Errorf("%w: missing data object", domain.ErrMalformedResponse)
	}
	return dto.toDomain(username), nil
}
