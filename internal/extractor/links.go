package extractor

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

/*
Link discovery is a separate concern from content isolation: it walks the
*unpruned* document root (every anchor the page shipped), not the extracted
content node, since navigation and footer links are exactly the edges a
crawler needs to keep discovering new pages.
*/

// DiscoverLinks resolves every anchor href found under root against base,
// the page's own final URL, and returns the absolute, parseable ones.
// Fragment-only, javascript:, mailto:, and unparseable hrefs are skipped.
func DiscoverLinks(base url.URL, root *html.Node) []url.URL {
	if root == nil {
		return nil
	}

	doc := goquery.NewDocumentFromNode(root)
	var links []url.URL
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		resolved, ok := resolveHref(base, href)
		if !ok {
			return
		}
		key := resolved.String()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		links = append(links, resolved)
	})

	return links
}

func resolveHref(base url.URL, href string) (url.URL, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return url.URL{}, false
	}
	if strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
		return url.URL{}, false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return url.URL{}, false
	}

	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return url.URL{}, false
	}
	resolved.Fragment = ""
	resolved.RawFragment = ""
	return *resolved, true
}

// ExtractText renders node's text content, collapsing runs of whitespace
// the way a reader would see the page, not the raw DOM whitespace.
func ExtractText(node *html.Node) string {
	if node == nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)

	return strings.Join(strings.Fields(b.String()), " ")
}
