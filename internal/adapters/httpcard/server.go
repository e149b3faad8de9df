package httpcard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AkshatTyagi05/potato-league/internal/app/service"
	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

// Lo implementa service.RankService
type Cards interface {
	Card(ctx context.Context, platform domain.Platform, username string, mode domain.Mode) (service.Snapshot, []byte, error)
}

// Server sirve la misma card que el bot, para probar layouts sin Discord.
type Server struct {
	router *chi.Mux
	cards  Cards
	log    *slog.Logger
}

func New(cards Cards, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{router: chi.NewRouter(), cards: cards, log: log}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(20 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/card/{platform}/{username}", s.handleCard)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start bloquea hasta que ctx se cancela o el listener falla.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("card preview listening", "addr", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	res := Lookup(r.Context(), s.cards, chi.URLParam(r, "platform"), chi.URLParam(r, "username"), r.URL.Query().Get("mode"))
	if res.Err != nil {
		lvl := slog.LevelWarn
		if res.Status >= 500 && !service.Expected(res.Err) {
			lvl = slog.LevelError
		}
		s.log.Log(r.Context(), lvl, "card preview failed", "status", res.Status, "error", res.Err)
		http.Error(w, res.Message, res.Status)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(res.PNG)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.PNG)
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.Info("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"took", time.Since(start),
				"req_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
