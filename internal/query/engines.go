// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import "net/url"

// Engine describes one search engine: its display name, base search
// endpoint, and the name of the query parameter it expects.
type Engine struct {
	Name  string
	Base  string
	Param string
}

// Engines lists the supported engines in output column order. Yandex takes
// its query under "text" rather than "q".
var Engines = []Engine{
	{Name: "Google", Base: "https://www.google.com/search", Param: "q"},
	{Name: "Bing", Base: "https://www.bing.com/search", Param: "q"},
	{Name: "Yandex", Base: "https://yandex.com/search/", Param: "text"},
}

// URL renders the search URL for q on this engine. Spaces encode as '+'.
func (e Engine) URL(q string) string {
	return e.Base + "?" + e.Param + "=" + url.QueryEscape(q)
}

// Link pairs an engine with the URL it renders for one query.
type Link struct {
	Engine Engine
	URL    string
}

// Links returns the search URL for q on every engine, in table order, so
// callers walk the engine table instead of guessing names.
func Links(q string) []Link {
	links := make([]Link, len(Engines))
	for i, e := range Engines {
		links[i] = Link{Engine: e, URL: e.URL(q)}
	}
	return links
}
