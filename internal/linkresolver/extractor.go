package linkresolver

import (
	"bytes"
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// PageInfo is the extracted metadata for one fetched page.
type PageInfo struct {
	Title       string
	Description string
	PublishedAt time.Time
}

// ExtractPageInfo pulls the title and publish date out of a page,
// preferring readability's article parse and falling back to meta tags.
func ExtractPageInfo(htmlBytes []byte, rawURL string) *PageInfo {
	u, _ := url.Parse(rawURL)
	meta := extractMetaTags(htmlBytes)

	article, err := readability.FromReader(bytes.NewReader(htmlBytes), u)
	if err != nil {
		return &PageInfo{
			Title:       coalesce(meta.OGTitle, meta.Title),
			Description: meta.Description,
			PublishedAt: parseDate(meta.PublishedTime),
		}
	}

	return &PageInfo{
		Title:       coalesce(article.Title, meta.OGTitle, meta.Title),
		Description: coalesce(meta.OGDescription, meta.Description),
		PublishedAt: parseDate(meta.PublishedTime),
	}
}

type metaTags struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	PublishedTime string
}

func extractMetaTags(htmlBytes []byte) metaTags {
	var meta metaTags

	doc, err := html.Parse(bytes.NewReader(htmlBytes))
	if err != nil {
		return meta
	}

	var walk func(*html.Node)

	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if meta.Title == "" && n.FirstChild != nil {
					meta.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				captureMeta(n, &meta)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return meta
}

func captureMeta(n *html.Node, meta *metaTags) {
	var name, property, content string

	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "name":
			name = strings.ToLower(attr.Val)
		case "property":
			property = strings.ToLower(attr.Val)
		case "content":
			content = attr.Val
		}
	}

	if content == "" {
		return
	}

	switch {
	case property == "og:title":
		meta.OGTitle = content
	case property == "og:description":
		meta.OGDescription = content
	case property == "article:published_time":
		meta.PublishedTime = content
	case name == "description":
		meta.Description = content
	case name == "date" && meta.PublishedTime == "":
		meta.PublishedTime = content
	}
}

func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
