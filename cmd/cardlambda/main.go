package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/AkshatTyagi05/potato-league/internal/adapters/httpcard"
	"github.com/AkshatTyagi05/potato-league/internal/adapters/tracker"
	"github.com/AkshatTyagi05/potato-league/internal/app/service"
	"github.com/AkshatTyagi05/potato-league/internal/infra/config"
	"github.com/AkshatTyagi05/potato-league/internal/infra/logging"
	"github.com/AkshatTyagi05/potato-league/internal/render"
)

// handler devuelve la card como PNG en base64 (API Gateway HTTP API v2).
// Path params: platform, username. Query: mode.
type handler struct {
	cards httpcard.Cards
	log   *slog.Logger
}

func (h handler) serve(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	h.log.Info("card hit",
		"path", req.RawPath,
		"method", req.RequestContext.HTTP.Method,
		"ip", req.RequestContext.HTTP.SourceIP,
	)

	res := httpcard.Lookup(ctx, h.cards,
		req.PathParameters["platform"],
		req.PathParameters["username"],
		req.QueryStringParameters["mode"],
	)
	if res.Err != nil {
		h.log.Warn("card failed", "status", res.Status, "error", res.Err)
		return events.APIGatewayV2HTTPResponse{
			StatusCode: res.Status,
			Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
			Body:       res.Message,
		}, nil
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode:      200,
		Headers:         map[string]string{"Content-Type": "image/png", "Cache-Control": "no-store"},
		Body:            base64.StdEncoding.EncodeToString(res.PNG),
		IsBase64Encoded: true,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, closeLog := logging.New(cfg.LogLevel, "")
	defer closeLog.Close()

	stats := tracker.New(cfg.TrackerKey,
		tracker.WithBaseURL(cfg.TrackerBaseURL),
		tracker.WithTimeout(cfg.TrackerTimeout),
		tracker.WithLogger(log),
	)
	cards, err := render.Load(cfg.AssetsDir, cfg.LayoutFile, log)
	if err != nil {
		log.Error("card layout", "error", err)
		os.Exit(1)
	}
	// sin store: la lambda sólo dibuja cards
	rank := service.NewRankService(stats, cards, nil, cfg.Aliases, log)

	lambda.Start(handler{cards: rank, log: log}.serve)
}
