// Package search exposes the static catalog of search-engine shortcuts.
// The table is read-only and safe to share between requests.
package search

// Engine describes one search-engine shortcut: a display name and a URL the
// query string is appended to.
type Engine struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var engines = map[string]Engine{
	"google":       {Name: "Google", URL: "https://www.google.com/search?q="},
	"youtube":      {Name: "YouTube", URL: "https://www.youtube.com/results?search_query="},
	"wikipedia":    {Name: "Wikipedia", URL: "https://en.wikipedia.org/wiki/"},
	"bing":         {Name: "Bing", URL: "https://www.bing.com/search?q="},
	"duckduckgo":   {Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q="},
	"translate_bn": {Name: "Google Translate (Bengali)", URL: "https://translate.google.com/?sl=auto&tl=bn&text="},
	"translate_en": {Name: "Google Translate (English)", URL: "https://translate.google.com/?sl=auto&tl=en&text="},
	"bdnews":       {Name: "BDNews24", URL: "https://bangla.bdnews24.com/search/?query="},
}

// Engines returns the catalog keyed by engine id. Callers must not mutate
// the result.
func Engines() map[string]Engine {
	return engines
}
