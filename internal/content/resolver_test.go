package content

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/zacademygit/Zacademy-sub001/internal/logging"
)

func embeddedStore(t *testing.T) *MemoryStore {
	t.Helper()
	store, err := Load(context.Background(), EmbeddedArticles())
	if err != nil {
		t.Fatalf("Load embedded articles: %v", err)
	}
	return store
}

func TestResolveStoredArticleIsUnmodified(t *testing.T) {
	store := embeddedStore(t)
	resolver := NewResolver(store, DefaultTemplate(), nil)

	stored, ok := store.Lookup("3")
	if !ok {
		t.Fatalf("article 3 missing from embedded store")
	}

	got := resolver.Resolve("3")
	if got.Synthetic {
		t.Fatalf("Resolve(3) returned synthetic article")
	}
	if len(got.Content.Sections) != 2 {
		t.Fatalf("Resolve(3) sections = %d, want 2", len(got.Content.Sections))
	}
	if !reflect.DeepEqual(got.Content, *stored.FullContent) {
		t.Fatalf("Resolve(3) content differs from stored content")
	}
	if got.Title != stored.Title || got.Category != stored.Category {
		t.Fatalf("Resolve(3) metadata = %q/%q, want %q/%q", got.Title, got.Category, stored.Title, stored.Category)
	}
}

func TestResolveUnknownIDSynthesizes(t *testing.T) {
	resolver := NewResolver(embeddedStore(t), DefaultTemplate(), nil)
	defaults := DefaultTemplate()

	got := resolver.Resolve("unknown-id")
	if !got.Synthetic {
		t.Fatalf("Resolve(unknown-id) not synthetic")
	}
	if len(got.Content.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(got.Content.Sections))
	}
	if got.Content.Introduction != defaults.Content.Introduction {
		t.Fatalf("introduction = %q, want default", got.Content.Introduction)
	}
	if got.Category != "კატეგორია" || got.Title != "სტატია" || got.ReadTime != "5 წუთი" {
		t.Fatalf("placeholder metadata = %+v", got)
	}
}

func TestResolveIsTotal(t *testing.T) {
	resolver := NewResolver(embeddedStore(t), DefaultTemplate(), nil)
	inputs := []string{"", "   ", "unknown-id", "../../etc/passwd", "3?x=1", "ქართული", "\x00", strings.Repeat("x", 4096)}

	for _, input := range inputs {
		got := resolver.Resolve(input)
		if got.Content.Introduction == "" || got.Content.Conclusion == "" {
			t.Fatalf("Resolve(%q) returned empty body", input)
		}
		if len(got.Content.Sections) != 4 {
			t.Fatalf("Resolve(%q) sections = %d, want 4", input, len(got.Content.Sections))
		}
	}
}

func TestResolveRecordWithoutBodyUsesTemplate(t *testing.T) {
	var buf bytes.Buffer
	resolver := NewResolver(embeddedStore(t), DefaultTemplate(), logging.NewWithWriter(&buf, "warn"))

	got := resolver.Resolve("4")
	if !got.Synthetic {
		t.Fatalf("Resolve(4) not synthetic")
	}
	if len(got.Content.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(got.Content.Sections))
	}
	if got.Title != "მენტორის როლი სტარტაპებში" {
		t.Fatalf("title = %q, want stored title", got.Title)
	}
	if !strings.Contains(buf.String(), "content incomplete") {
		t.Fatalf("incomplete record not logged: %s", buf.String())
	}
}

func TestResolveDoesNotShareStoreMemory(t *testing.T) {
	store := embeddedStore(t)
	resolver := NewResolver(store, DefaultTemplate(), nil)

	first := resolver.Resolve("1")
	first.Content.Sections[0].Heading = "changed"

	second := resolver.Resolve("1")
	if second.Content.Sections[0].Heading == "changed" {
		t.Fatalf("resolved article aliases store memory")
	}

	synthetic := resolver.Resolve("missing")
	synthetic.Content.Sections[0].Heading = "changed"
	if resolver.Resolve("missing").Content.Sections[0].Heading == "changed" {
		t.Fatalf("synthetic article aliases template memory")
	}
}

func TestResolveNormalizesID(t *testing.T) {
	resolver := NewResolver(embeddedStore(t), DefaultTemplate(), nil)
	if got := resolver.Resolve("  2 "); got.Synthetic {
		t.Fatalf("Resolve with padded id synthesized")
	}
}

func TestResolveWithNilStore(t *testing.T) {
	resolver := NewResolver(nil, DefaultTemplate(), nil)
	if got := resolver.Resolve("1"); !got.Synthetic {
		t.Fatalf("nil store resolved a stored article")
	}
}
