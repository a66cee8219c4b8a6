package app

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.GFM))
}

// renderMarkdown converts article text to HTML. Raw HTML in the source
// is not passed through.
func (s *Server) renderMarkdown(source, origin string) template.HTML {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(source), &buf); err != nil {
		s.logger.Error("render markdown", "origin", origin, "error", err)
		return template.HTML("<p>" + template.HTMLEscapeString(source) + "</p>")
	}
	return template.HTML(decorateLinks(buf.String(), origin))
}
