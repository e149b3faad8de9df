package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

type Config struct {
	DiscordToken string
	DiscordGuild string // vacío = comandos globales

	TrackerKey     string // opcional; sin key tracker.gg suele responder 401/403
	TrackerBaseURL string
	TrackerTimeout time.Duration

	DatabaseURL string
	AssetsDir   string
	LayoutFile  string // opcional, TOML que pisa el layout embebido
	HTTPAddr    string // vacío = sin servidor de preview

	LogLevel string
	LogFile  string

	// usuario (lowercase) -> identidad real a consultar
	Aliases map[string]domain.Identity
}

const (
	defaultDatabaseURL = "./data/rank_links.db"
	defaultAssetsDir   = "./assets"
	defaultTimeout     = 10 * time.Second
)

// LoadEnvFiles carga apikey.env y .env si existen. No pisa variables ya
// definidas en el proceso.
func LoadEnvFiles() {
	for _, f := range []string{"apikey.env", ".env"} {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}

// Load lee el entorno. El token de Discord no es obligatorio acá porque la
// lambda y el preview no lo usan; el bot llama RequireDiscord.
func Load() (Config, error) {
	var errs []error
	get := func(k string, req bool) string {
		v := strings.TrimSpace(os.Getenv(k))
		if v == "" && req {
			errs = append(errs, fmt.Errorf("faltante env %s", k))
		}
		return v
	}
	or := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	cfg := Config{
		DiscordToken:   get("DISCORD_TOKEN", false),
		DiscordGuild:   get("DISCORD_GUILD_ID", false),
		TrackerKey:     get("TRACKER_KEY", false),
		TrackerBaseURL: get("TRACKER_BASE_URL", false),
		TrackerTimeout: defaultTimeout,
		DatabaseURL:    or(get("DATABASE_URL", false), defaultDatabaseURL),
		AssetsDir:      or(get("ASSETS_DIR", false), defaultAssetsDir),
		LayoutFile:     get("LAYOUT_FILE", false),
		HTTPAddr:       get("HTTP_ADDR", false),
		LogLevel:       or(get("LOG_LEVEL", false), "info"),
		LogFile:        get("LOG_FILE", false),
	}

	if v := get("TRACKER_TIMEOUT_SECONDS", false); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("TRACKER_TIMEOUT_SECONDS inválido: %q", v))
		} else {
			cfg.TrackerTimeout = time.Duration(n) * time.Second
		}
	}

	aliases, err := ParseAliases(get("RANK_ALIASES", false))
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Aliases = aliases

	return cfg, errors.Join(errs...)
}

// RequireDiscord valida lo que necesita cmd/bot.
func (c Config) RequireDiscord() error {
	if c.DiscordToken == "" {
		return errors.New("faltante env DISCORD_TOKEN")
	}
	return nil
}

// BotAuth agrega el prefijo "Bot " si no vino en el token.
func (c Config) BotAuth() string {
	auth := strings.TrimSpace(c.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	return auth
}

// ParseAliases parsea "from=to@platform,from2=to2" (platform opcional: sin
// ella se mantiene la plataforma pedida).
func ParseAliases(s string) (map[string]domain.Identity, error) {
	out := map[string]domain.Identity{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	var errs []error
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		eq := strings.IndexByte(p, '=')
		if eq <= 0 || eq == len(p)-1 {
			errs = append(errs, fmt.Errorf("RANK_ALIASES: entrada inválida %q", p))
			continue
		}
		from := strings.ToLower(strings.TrimSpace(p[:eq]))
		to := strings.TrimSpace(p[eq+1:])

		id := domain.Identity{}
		if at := strings.LastIndexByte(to, '@'); at >= 0 {
			plat, err := domain.ParsePlatform(to[at+1:])
			if err != nil {
				errs = append(errs, fmt.Errorf("RANK_ALIASES %q: %w", p, err))
				continue
			}
			id.Platform = plat
			to = strings.TrimSpace(to[:at])
		}
		if to == "" {
			errs = append(errs, fmt.Errorf("RANK_ALIASES: entrada inválida %q", p))
			continue
		}
		id.Username = to
		out[from] = id
	}
	return out, errors.Join(errs...)
}
