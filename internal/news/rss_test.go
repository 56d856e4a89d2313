package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Example Science</title>
  <link>https://example.com</link>
  <item>
    <title>Older discovery</title>
    <link>https://example.com/older</link>
    <description>&lt;p&gt;A &lt;b&gt;bold&lt;/b&gt; claim&lt;/p&gt;</description>
    <pubDate>Mon, 01 Jan 2024 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Newer discovery</title>
    <link>https://example.com/newer</link>
    <description>Fresh results.</description>
    <pubDate>Tue, 02 Jan 2024 10:00:00 GMT</pubDate>
    <enclosure url="https://example.com/img.jpg" type="image/jpeg" length="100"/>
  </item>
  <item>
    <title></title>
    <link>https://example.com/untitled</link>
  </item>
</channel>
</rss>`

func TestRSSProviderHeadlines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeedXML))
	}))
	defer server.Close()

	p := NewRSSProvider(map[string][]string{"science": {server.URL}}, 20, 5*time.Second)
	if !p.Available() {
		t.Fatal("expected Available() with feeds configured")
	}

	got, err := p.Headlines(context.Background(), Science, "us")
	if err != nil {
		t.Fatalf("Headlines: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (untitled item dropped)", len(got))
	}
	if got[0].Title != "Newer discovery" {
		t.Errorf("first = %q, want newest first", got[0].Title)
	}
	if got[0].URLToImage != "https://example.com/img.jpg" {
		t.Errorf("image = %q", got[0].URLToImage)
	}
	if got[1].Description != "A bold claim" {
		t.Errorf("description = %q, want HTML stripped", got[1].Description)
	}
	if got[0].Source.Name != "Example Science" {
		t.Errorf("source = %q", got[0].Source.Name)
	}
	if _, ok := got[0].PublishedTime(); !ok {
		t.Errorf("PublishedAt %q not RFC3339", got[0].PublishedAt)
	}
}

func TestRSSProviderPageSize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeedXML))
	}))
	defer server.Close()

	p := NewRSSProvider(map[string][]string{"science": {server.URL}}, 1, time.Second)
	got, err := p.Headlines(context.Background(), Science, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestRSSProviderPartialFailure(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeedXML))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	p := NewRSSProvider(map[string][]string{"science": {bad.URL, good.URL}}, 20, time.Second)
	got, err := p.Headlines(context.Background(), Science, "")
	if err != nil {
		t.Fatalf("one good feed should be enough, got %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}

	p = NewRSSProvider(map[string][]string{"science": {bad.URL}}, 20, time.Second)
	if _, err := p.Headlines(context.Background(), Science, ""); err == nil {
		t.Error("expected error when every feed fails")
	}
}

func TestRSSProviderNoFeeds(t *testing.T) {
	p := NewRSSProvider(nil, 20, time.Second)
	if p.Available() {
		t.Error("Available() should be false without feeds")
	}
	got, err := p.Headlines(context.Background(), Sports, "")
	if err != nil || len(got) != 0 {
		t.Errorf("Headlines = %v, %v; want empty, nil", got, err)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct{ in, want string }{
		{"<p>Hello <em>world</em></p>", "Hello world"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"  spaced\n\n out  ", "spaced out"},
	}
	for _, tt := range tests {
		if got := stripHTML(tt.in); got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
