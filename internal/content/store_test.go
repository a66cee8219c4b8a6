package content

import (
	"context"
	"errors"
	"testing"
)

type staticSource struct {
	name    string
	records []ArticleRecord
	err     error
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) Articles(context.Context) ([]ArticleRecord, error) {
	return s.records, s.err
}

func TestNewMemoryStoreRejectsDuplicates(t *testing.T) {
	_, err := NewMemoryStore([]ArticleRecord{{ID: "a"}, {ID: " A "}})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("NewMemoryStore duplicate error = %v, want ErrDuplicateID", err)
	}
}

func TestNewMemoryStoreRejectsEmptyID(t *testing.T) {
	if _, err := NewMemoryStore([]ArticleRecord{{ID: "  "}}); err == nil {
		t.Fatalf("NewMemoryStore accepted empty id")
	}
}

func TestMemoryStoreLookupReturnsCopies(t *testing.T) {
	records := []ArticleRecord{{
		ID:          "a",
		FullContent: &FullContent{Sections: []Section{{Heading: "h"}}},
	}}
	store, err := NewMemoryStore(records)
	if err != nil {
		t.Fatalf("NewMemoryStore: %v", err)
	}

	records[0].FullContent.Sections[0].Heading = "mutated input"
	got, ok := store.Lookup("a")
	if !ok {
		t.Fatalf("Lookup(a) missing")
	}
	if got.FullContent.Sections[0].Heading != "h" {
		t.Fatalf("store aliases caller input")
	}

	got.FullContent.Sections[0].Heading = "mutated output"
	again, _ := store.Lookup("a")
	if again.FullContent.Sections[0].Heading != "h" {
		t.Fatalf("store aliases returned records")
	}
}

func TestLoadMergesSourcesInOrder(t *testing.T) {
	store, err := Load(context.Background(),
		staticSource{name: "first", records: []ArticleRecord{{ID: "1"}, {ID: "2"}}},
		staticSource{name: "second", records: []ArticleRecord{{ID: "3"}}},
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	list := store.List()
	if len(list) != 3 || list[0].ID != "1" || list[2].ID != "3" {
		t.Fatalf("List() = %+v", list)
	}
}

func TestLoadRejectsDuplicatesAcrossSources(t *testing.T) {
	_, err := Load(context.Background(),
		staticSource{name: "first", records: []ArticleRecord{{ID: "1"}}},
		staticSource{name: "second", records: []ArticleRecord{{ID: "1"}}},
	)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Load duplicate error = %v", err)
	}
}

func TestLoadPropagatesSourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(context.Background(), staticSource{name: "broken", err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("Load error = %v, want wrapped boom", err)
	}
}

func TestDecodeArticlesRejectsUnknownFields(t *testing.T) {
	_, err := decodeArticles([]byte("articles:\n  - id: \"1\"\n    titel: typo\n"))
	if err == nil {
		t.Fatalf("decodeArticles accepted unknown field")
	}
}

func TestDecodeArticlesEmptyDocument(t *testing.T) {
	records, err := decodeArticles(nil)
	if err != nil || len(records) != 0 {
		t.Fatalf("decodeArticles(nil) = %v, %v", records, err)
	}
}

func TestEmbeddedSite(t *testing.T) {
	site, err := EmbeddedSite()
	if err != nil {
		t.Fatalf("EmbeddedSite: %v", err)
	}
	if len(site.Testimonials) == 0 || len(site.Differentiators) == 0 || len(site.ValueProps) == 0 {
		t.Fatalf("embedded site missing sections: %+v", site)
	}
	if _, ok := site.Role("Mentor"); !ok {
		t.Fatalf("mentor role missing")
	}
	if _, ok := site.Role("admin"); ok {
		t.Fatalf("unexpected admin role")
	}
}
