package content

import (
	"log/slog"

	"github.com/zacademygit/Zacademy-sub001/internal/logging"
)

// Resolver turns route identifiers into renderable articles.
type Resolver struct {
	store    Store
	defaults Defaults
	logger   *slog.Logger
}

// NewResolver wires a store with the template used for misses. A nil
// store behaves as an empty one.
func NewResolver(store Store, defaults Defaults, logger *slog.Logger) *Resolver {
	if store == nil {
		store = emptyStore{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Resolver{store: store, defaults: defaults, logger: logger}
}

// Resolve never fails. A stored record with a body comes back exactly as
// stored; anything else gets the default body.
func (r *Resolver) Resolve(id string) ResolvedArticle {
	key := NormalizeID(id)
	record, ok := r.lookup(key)
	if ok && record.FullContent != nil {
		return ResolvedArticle{
			ID:       record.ID,
			Title:    record.Title,
			Author:   record.Author,
			Date:     record.Date,
			ReadTime: record.ReadTime,
			Category: record.Category,
			Excerpt:  record.Excerpt,
			Content:  record.FullContent.Clone(),
		}
	}

	if ok {
		r.logger.Warn("content incomplete, serving default template", "id", key)
	} else {
		r.logger.Debug("article not found, serving default template", "id", key)
	}
	return r.synthesize(key, record, ok)
}

func (r *Resolver) lookup(key string) (ArticleRecord, bool) {
	if key == "" {
		return ArticleRecord{}, false
	}
	return r.store.Lookup(key)
}

// synthesize builds the placeholder article. Metadata of a stored but
// bodiless record is kept where present.
func (r *Resolver) synthesize(key string, record ArticleRecord, found bool) ResolvedArticle {
	d := r.defaults
	article := ResolvedArticle{
		ID:        key,
		Title:     d.Title,
		Author:    d.Author,
		Date:      d.Date,
		ReadTime:  d.ReadTime,
		Category:  d.Category,
		Excerpt:   d.Excerpt,
		Content:   d.Content.Clone(),
		Synthetic: true,
	}
	if !found {
		return article
	}

	article.ID = record.ID
	article.Title = firstNonEmpty(record.Title, d.Title)
	article.Author = firstNonEmpty(record.Author, d.Author)
	article.Date = firstNonEmpty(record.Date, d.Date)
	article.ReadTime = firstNonEmpty(record.ReadTime, d.ReadTime)
	article.Category = firstNonEmpty(record.Category, d.Category)
	article.Excerpt = firstNonEmpty(record.Excerpt, d.Excerpt)
	return article
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
