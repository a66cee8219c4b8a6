package content

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

type articleFile struct {
	Articles []ArticleRecord `yaml:"articles"`
}

// YAMLSource reads articles from a YAML document with a top-level
// "articles" list.
type YAMLSource struct {
	name string
	read func() ([]byte, error)
}

// EmbeddedArticles returns the articles bundled with the binary.
func EmbeddedArticles() *YAMLSource {
	return &YAMLSource{
		name: "embedded articles",
		read: func() ([]byte, error) { return fs.ReadFile(dataFS, "data/articles.yaml") },
	}
}

// FileArticles reads articles from a YAML file on disk.
func FileArticles(path string) *YAMLSource {
	return &YAMLSource{
		name: path,
		read: func() ([]byte, error) { return os.ReadFile(path) },
	}
}

func (s *YAMLSource) Name() string { return s.name }

// Articles decodes the document. Unknown fields are rejected so typos in
// hand-edited content surface at startup.
func (s *YAMLSource) Articles(ctx context.Context) ([]ArticleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return decodeArticles(raw)
}

func decodeArticles(raw []byte) ([]ArticleRecord, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var file articleFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse articles: %w", err)
	}
	return file.Articles, nil
}
