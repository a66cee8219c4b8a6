package content

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
)

// Querier is the part of *sql.DB the MySQL source needs.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// MySQLSource reads articles from the editorial database. It only ever
// selects; the site never writes content back.
type MySQLSource struct {
	db Querier
}

// NewMySQLSource wraps an open connection.
func NewMySQLSource(db Querier) *MySQLSource {
	return &MySQLSource{db: db}
}

func (s *MySQLSource) Name() string { return "mysql" }

func articlesQuery() sq.SelectBuilder {
	return sq.Select(
		"id", "title", "author", "published_label", "read_time",
		"category", "excerpt", "introduction", "conclusion",
	).From("articles").Where(sq.Eq{"published": true}).OrderBy("sort_order", "id")
}

func sectionsQuery() sq.SelectBuilder {
	return sq.Select("article_id", "position", "heading", "content").
		From("article_sections").
		OrderBy("article_id", "position")
}

// Articles loads every published article with its sections. Articles
// whose introduction is NULL are returned without a body.
func (s *MySQLSource) Articles(ctx context.Context) ([]ArticleRecord, error) {
	records, err := s.loadArticles(ctx)
	if err != nil {
		return nil, err
	}
	sections, err := s.loadSections(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].FullContent == nil {
			continue
		}
		records[i].FullContent.Sections = sortSections(sections[records[i].ID])
	}
	return records, nil
}

func (s *MySQLSource) loadArticles(ctx context.Context) ([]ArticleRecord, error) {
	query, args, err := articlesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build articles query: %w", err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var records []ArticleRecord
	for rows.Next() {
		var (
			r            ArticleRecord
			introduction sql.NullString
			conclusion   sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Title, &r.Author, &r.Date, &r.ReadTime,
			&r.Category, &r.Excerpt, &introduction, &conclusion); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		if introduction.Valid {
			r.FullContent = &FullContent{
				Introduction: introduction.String,
				Conclusion:   conclusion.String,
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return records, nil
}

type positionedSection struct {
	position int
	section  Section
}

func (s *MySQLSource) loadSections(ctx context.Context) (map[string][]positionedSection, error) {
	query, args, err := sectionsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sections query: %w", err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	sections := make(map[string][]positionedSection)
	for rows.Next() {
		var (
			articleID string
			row       positionedSection
		)
		if err := rows.Scan(&articleID, &row.position, &row.section.Heading, &row.section.Content); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections[articleID] = append(sections[articleID], row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}
	return sections, nil
}

func sortSections(rows []positionedSection) []Section {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].position < rows[j].position
	})
	out := make([]Section, len(rows))
	for i, row := range rows {
		out[i] = row.section
	}
	return out
}
