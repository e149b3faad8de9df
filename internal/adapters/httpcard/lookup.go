package httpcard

import (
	"context"
	"errors"
	"net/http"

	"github.com/AkshatTyagi05/potato-league/internal/app/service"
	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

// Result es lo que comparten el servidor de preview y la lambda.
type Result struct {
	PNG     []byte
	Status  int
	Message string
	Err     error
}

// Lookup parsea los parámetros crudos y pide la card.
func Lookup(ctx context.Context, cards Cards, rawPlatform, username, rawMode string) Result {
	platform, err := domain.ParsePlatform(rawPlatform)
	if err != nil {
		return failure(err, username)
	}
	_, png, err := cards.Card(ctx, platform, username, domain.ParseMode(rawMode))
	if err != nil {
		return failure(err, username)
	}
	return Result{PNG: png, Status: http.StatusOK}
}

func failure(err error, username string) Result {
	return Result{Status: StatusFor(err), Message: service.UserMessage(err, username), Err: err}
}

// StatusFor mapea la taxonomía de errores a HTTP.
func StatusFor(err error) int {
	var status *domain.UnexpectedStatusError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownPlatform), errors.Is(err, service.ErrEmptyUsername):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnreachable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrAuthRejected),
		errors.Is(err, domain.ErrBlocked),
		errors.Is(err, domain.ErrMalformedResponse),
		errors.As(err, &status):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
