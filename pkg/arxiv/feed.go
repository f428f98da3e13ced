package arxiv

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Paper is one search hit, whitespace-normalized.
type Paper struct {
	ID          string // arXiv abs URL, unique per paper
	Title       string
	Abstract    string
	Authors     string // comma-joined
	PublishedAt string // verbatim Atom timestamp
	URL         string
}

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string       `xml:"id"`
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	Authors   []atomAuthor `xml:"author"`
	Links     []atomLink   `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

func parseFeed(r io.Reader) ([]Paper, error) {
	var feed atomFeed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("arxiv: failed to parse feed: %w", err)
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		names := make([]string, 0, len(entry.Authors))
		for _, a := range entry.Authors {
			names = append(names, a.Name)
		}

		link := entry.ID
		for _, l := range entry.Links {
			if l.Rel == "alternate" && l.Href != "" {
				link = l.Href
				break
			}
		}

		papers = append(papers, Paper{
			ID:          entry.ID,
			Title:       squash(entry.Title),
			Abstract:    squash(entry.Summary),
			Authors:     strings.Join(names, ", "),
			PublishedAt: entry.Published,
			URL:         link,
		})
	}
	return papers, nil
}

// squash collapses the feed's hard-wrapped whitespace into single spaces.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
