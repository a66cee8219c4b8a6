package content

// Section is one headed block of an article body.
type Section struct {
	Heading string `yaml:"heading" json:"heading"`
	Content string `yaml:"content" json:"content"`
}

// FullContent is the readable body of an article.
type FullContent struct {
	Introduction string    `yaml:"introduction" json:"introduction"`
	Sections     []Section `yaml:"sections" json:"sections"`
	Conclusion   string    `yaml:"conclusion" json:"conclusion"`
}

// ArticleRecord is a stored blog post. FullContent is nil for records
// that only carry listing metadata.
type ArticleRecord struct {
	ID          string       `yaml:"id" json:"id"`
	Title       string       `yaml:"title" json:"title"`
	Author      string       `yaml:"author" json:"author"`
	Date        string       `yaml:"date" json:"date"`
	ReadTime    string       `yaml:"readTime" json:"readTime"`
	Category    string       `yaml:"category" json:"category"`
	Excerpt     string       `yaml:"excerpt" json:"excerpt"`
	FullContent *FullContent `yaml:"fullContent,omitempty" json:"fullContent,omitempty"`
}

// Clone returns a deep copy of the record.
func (r ArticleRecord) Clone() ArticleRecord {
	if r.FullContent != nil {
		body := r.FullContent.Clone()
		r.FullContent = &body
	}
	return r
}

// Clone returns a deep copy of the body.
func (c FullContent) Clone() FullContent {
	if c.Sections != nil {
		sections := make([]Section, len(c.Sections))
		copy(sections, c.Sections)
		c.Sections = sections
	}
	return c
}

// ResolvedArticle is what the reader renders: either a stored article
// or a synthetic one built from the default template.
type ResolvedArticle struct {
	ID        string
	Title     string
	Author    string
	Date      string
	ReadTime  string
	Category  string
	Excerpt   string
	Content   FullContent
	Synthetic bool
}
