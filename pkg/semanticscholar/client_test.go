package semanticscholar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleResponse = `{
  "total": 2,
  "data": [
    {
      "paperId": "abc123",
      "title": "Deep Despeckling of SAR Images",
      "abstract": "A despeckling network.",
      "url": "https://www.semanticscholar.org/paper/abc123",
      "year": 2024,
      "publicationDate": "2024-01-15",
      "authors": [{"name": "Ada Lovelace"}, {"name": "Alan Turing"}]
    },
    {
      "paperId": "def456",
      "title": "Remote Sensing Surveys",
      "abstract": null,
      "url": "https://www.semanticscholar.org/paper/def456",
      "year": 2023,
      "publicationDate": "",
      "authors": []
    }
  ]
}`

func TestSearch(t *testing.T) {
	var gotKey, gotQuery, gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotQuery = r.URL.Query().Get("query")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient("secret-key")
	client.SetAPIURL(server.URL)

	papers, err := client.Search(context.Background(), []string{"despeckling", "remote sensing"}, 250)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotKey != "secret-key" {
		t.Errorf("x-api-key = %q, want secret-key", gotKey)
	}
	if want := `despeckling OR "remote sensing"`; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
	if gotLimit != "100" {
		t.Errorf("limit = %q, want capped to 100", gotLimit)
	}

	if len(papers) != 2 {
		t.Fatalf("Search() returned %d papers, want 2", len(papers))
	}
	first := papers[0]
	if first.ID != "abc123" || first.Title != "Deep Despeckling of SAR Images" {
		t.Errorf("first paper = %+v", first)
	}
	if first.Authors != "Ada Lovelace, Alan Turing" {
		t.Errorf("Authors = %q", first.Authors)
	}
	if first.PublishedAt != "2024-01-15" {
		t.Errorf("PublishedAt = %q", first.PublishedAt)
	}

	// missing publication date falls back to the year
	if papers[1].PublishedAt != "2023" {
		t.Errorf("PublishedAt fallback = %q, want 2023", papers[1].PublishedAt)
	}
}

func TestSearchWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, present := r.Header["X-Api-Key"]; present {
			t.Error("x-api-key header sent without a configured key")
		}
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient("")
	client.SetAPIURL(server.URL)

	papers, err := client.Search(context.Background(), []string{"sar"}, 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(papers) != 0 {
		t.Errorf("Search() returned %d papers, want 0", len(papers))
	}
}

func TestSearchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("")
	client.SetAPIURL(server.URL)

	if _, err := client.Search(context.Background(), []string{"sar"}, 10); err == nil {
		t.Fatal("Search() expected error on 429")
	}
}
