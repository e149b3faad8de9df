package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

type LinkRepo struct {
	db  *DB
	log *slog.Logger
}

func NewLinkRepo(db *DB, log *slog.Logger) *LinkRepo {
	if log == nil {
		log = slog.Default()
	}
	return &LinkRepo{db: db, log: log}
}

// UpsertLink pisa el link anterior del mismo discord id (sin historial).
func (r *LinkRepo) UpsertLink(ctx context.Context, rec domain.LinkRecord) error {
	id, err := discordKey(rec.DiscordID)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, r.db.rebind(`
INSERT INTO rank_links (discord_id, username, platform, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (discord_id) DO UPDATE SET
  username   = excluded.username,
  platform   = excluded.platform,
  updated_at = excluded.updated_at
`), id, rec.Username, string(rec.Platform), time.Now().UTC())
	return r.heal(ctx, "upsert", err)
}

// GetLink devuelve domain.ErrNotLinked si el usuario nunca hizo /ranklink.
func (r *LinkRepo) GetLink(ctx context.Context, discordID string) (domain.LinkRecord, error) {
	id, err := discordKey(discordID)
	if err != nil {
		return domain.LinkRecord{}, err
	}
	var (
		rec      = domain.LinkRecord{DiscordID: discordID}
		platform string
	)
	err = r.db.QueryRowContext(ctx, r.db.rebind(`
SELECT username, platform, updated_at
  FROM rank_links
 WHERE discord_id = ?
`), id).Scan(&rec.Username, &platform, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.LinkRecord{}, domain.ErrNotLinked
	}
	if err != nil {
		return domain.LinkRecord{}, r.heal(ctx, "get", err)
	}
	rec.Platform = domain.Platform(platform)
	return rec, nil
}

// Count es útil para tests y para el log de arranque.
func (r *LinkRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rank_links`).Scan(&n)
	if err != nil {
		return 0, r.heal(ctx, "count", err)
	}
	return n, nil
}

// heal: si la tabla no existe la recrea y devuelve ErrStoreSchemaMissing para
// que el usuario reintente. Si el reset también falla se devuelven ambos.
func (r *LinkRepo) heal(ctx context.Context, op string, err error) error {
	if err == nil || !isMissingTable(err) {
		return err
	}
	r.log.Warn("link store table missing, recreating schema", "op", op, "error", err)
	if rerr := resetSchema(ctx, r.db); rerr != nil {
		r.log.Error("link store schema reset failed", "error", rerr)
		return fmt.Errorf("%w: %w", domain.ErrStoreSchemaMissing, rerr)
	}
	return domain.ErrStoreSchemaMissing
}

// los snowflakes de Discord entran en int64
func discordKey(discordID string) (int64, error) {
	id, err := strconv.ParseInt(discordID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid discord id %q: %w", discordID, err)
	}
	return id, nil
}
