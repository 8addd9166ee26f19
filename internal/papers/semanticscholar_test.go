// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/pkg/types"
)

const sampleSemanticJSON = `{
  "total": 2,
  "data": [
    {
      "paperId": "abc123",
      "title": "Aspirin and platelet aggregation",
      "abstract": "We describe &quot;aspirin&quot; effects.",
      "year": 2019,
      "url": "https://www.semanticscholar.org/paper/abc123",
      "authors": [
        {"authorId": "1", "name": "J. Vane"},
        {"authorId": "2", "name": "R. Botting"}
      ],
      "openAccessPdf": {"url": "https://example.org/abc123.pdf"}
    },
    {
      "paperId": "def456",
      "title": "Salicylates revisited",
      "abstract": null,
      "year": 0,
      "url": "https://www.semanticscholar.org/paper/def456",
      "authors": [],
      "openAccessPdf": null
    }
  ]
}`

func TestSemanticScholarSearch(t *testing.T) {
	var gotKey atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey.Store(r.Header.Get("x-api-key"))
		if r.URL.Query().Get("query") == "" {
			http.Error(w, "missing query", http.StatusBadRequest)
			return
		}
		w.Write([]byte(sampleSemanticJSON))
	}))
	defer ts.Close()

	old := semanticAPIBase
	semanticAPIBase = ts.URL
	defer func() { semanticAPIBase = old }()

	src := &SemanticScholarSource{Client: newTestClient(), APIKey: "secret", Logger: zerolog.Nop()}
	got := src.Search(context.Background(), "aspirin", 10)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	if gotKey.Load() != "secret" {
		t.Errorf("x-api-key = %v, want secret", gotKey.Load())
	}

	first := got[0]
	if first.Title != "Aspirin and platelet aggregation" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Authors != "J. Vane, R. Botting" {
		t.Errorf("Authors = %q, want comma-joined list", first.Authors)
	}
	if first.Abstract != `We describe "aspirin" effects.` {
		t.Errorf("Abstract = %q, want entities unescaped", first.Abstract)
	}
	if first.PDFURL != "https://example.org/abc123.pdf" {
		t.Errorf("PDFURL = %q", first.PDFURL)
	}
	if first.Source != "semantic_scholar" {
		t.Errorf("Source = %q", first.Source)
	}

	second := got[1]
	if second.Authors != types.UnknownAuthors {
		t.Errorf("empty author list → %q, want %q", second.Authors, types.UnknownAuthors)
	}
	if second.Abstract != types.NoAbstract {
		t.Errorf("null abstract → %q, want sentinel", second.Abstract)
	}
	if second.Year != 0 {
		t.Errorf("Year = %d, want 0 for unknown", second.Year)
	}
	if second.PDFURL != "" {
		t.Errorf("PDFURL = %q, want empty", second.PDFURL)
	}
}

func TestSemanticScholarFailureAbsorbed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	old := semanticAPIBase
	semanticAPIBase = ts.URL
	defer func() { semanticAPIBase = old }()

	src := &SemanticScholarSource{Client: newTestClient(), Logger: zerolog.Nop()}
	if got := src.Search(context.Background(), "aspirin", 10); got != nil {
		t.Errorf("got %v, want nil on upstream error", got)
	}
}

func TestSemanticScholarBlankQuerySkipsNetwork(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	old := semanticAPIBase
	semanticAPIBase = ts.URL
	defer func() { semanticAPIBase = old }()

	src := &SemanticScholarSource{Client: newTestClient(), Logger: zerolog.Nop()}
	if got := src.Search(context.Background(), "  ", 10); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("network calls = %d, want 0", n)
	}
}
