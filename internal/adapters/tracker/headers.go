package tracker

import "net/http"

// HeaderPreset imita lo que manda un browser/cliente real. tracker.gg bloquea
// (403) a los user agents "de bot", así que rotamos entre unos pocos.
type HeaderPreset struct {
	Name      string
	UserAgent string
	Accept    string
	Language  string
	Referer   string
	Origin    string
}

var presets = []HeaderPreset{
	{
		Name:      "chrome-win",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		Accept:    "application/json, text/plain, */*",
		Language:  "en-US,en;q=0.9",
		Referer:   "https://rocketleague.tracker.network/",
		Origin:    "https://rocketleague.tracker.network",
	},
	{
		Name:      "firefox-mac",
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 14.4; rv:125.0) Gecko/20100101 Firefox/125.0",
		Accept:    "application/json, text/plain, */*",
		Language:  "en-US,en;q=0.5",
		Referer:   "https://rocketleague.tracker.network/",
		Origin:    "https://rocketleague.tracker.network",
	},
	{
		Name:      "thunder-client",
		UserAgent: "Thunder Client (https://www.thunderclient.com)",
		Accept:    "application/json, text/plain, */*",
		Language:  "en-US,en;q=0.9",
		Referer:   "https://rocketleague.tracker.network/",
		Origin:    "https://rocketleague.tracker.network",
	},
}

// Presets devuelve una copia de los presets disponibles.
func Presets() []HeaderPreset {
	out := make([]HeaderPreset, len(presets))
	copy(out, presets)
	return out
}

func choosePreset(pick func(n int) int) HeaderPreset {
	i := pick(len(presets))
	if i < 0 || i >= len(presets) {
		i = 0
	}
	return presets[i]
}

func (p HeaderPreset) apply(h http.Header) {
	h.Set("Accept", p.Accept)
	h.Set("Accept-Language", p.Language)
	h.Set("User-Agent", p.UserAgent)
	h.Set("Referer", p.Referer)
	h.Set("Origin", p.Origin)
}
