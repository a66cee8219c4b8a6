package app

import (
	"net/url"
	"regexp"
	"strings"
)

var anchorHref = regexp.MustCompile(`<a href="([^"]*)"`)

// decorateLinks rewrites anchors in rendered article HTML. Links to other
// articles remember the article they came from; off-site links open in a
// new tab.
func decorateLinks(content, origin string) string {
	return anchorHref.ReplaceAllStringFunc(content, func(match string) string {
		sub := anchorHref.FindStringSubmatch(match)
		if len(sub) != 2 {
			return match
		}
		href := sub[1]

		switch {
		case strings.HasPrefix(href, "/blog/"):
			if origin == "" || strings.Contains(href, "from=") {
				return match
			}
			return `<a href="` + injectOrigin(href, origin) + `"`
		case isExternal(href):
			return match + ` target="_blank" rel="noopener noreferrer"`
		default:
			return match
		}
	})
}

// injectOrigin adds from=origin to an already HTML-escaped href.
func injectOrigin(href, origin string) string {
	fragment := ""
	if idx := strings.Index(href, "#"); idx >= 0 {
		fragment = href[idx:]
		href = href[:idx]
	}

	param := "from=" + url.QueryEscape(origin)
	if strings.Contains(href, "?") {
		href = href + "&amp;" + param
	} else {
		href = href + "?" + param
	}

	return href + fragment
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
