package app

import (
	"net/http"
	"strings"
)

var nonInteractiveAgents = []string{"bot", "crawler", "spider", "slurp", "preview", "headless"}

// hasViewport reports whether the client will report scroll visibility.
// Crawlers, link previews, reduced-motion clients and ?motion=off get
// regions that are already revealed.
func hasViewport(r *http.Request) bool {
	if strings.EqualFold(r.URL.Query().Get("motion"), "off") {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(r.Header.Get("Sec-CH-Prefers-Reduced-Motion")), "reduce") {
		return false
	}

	agent := strings.ToLower(r.UserAgent())
	if agent == "" {
		return false
	}
	for _, marker := range nonInteractiveAgents {
		if strings.Contains(agent, marker) {
			return false
		}
	}
	return true
}
