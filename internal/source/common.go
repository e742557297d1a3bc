package source

import (
	"html"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func cleanText(value string) string {
	value = html.UnescapeString(value)
	return strings.Join(strings.Fields(value), " ")
}

func absoluteURL(base string, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

// fragmentDoc parses a small HTML fragment, typically one table cell's
// content. Inline markup survives the parse without table context.
func fragmentDoc(fragment string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(fragment))
}

// firstLinkText returns the text of the first anchor in the fragment, or ""
// when the fragment has no anchor.
func firstLinkText(fragment string) string {
	doc, err := fragmentDoc(fragment)
	if err != nil {
		return ""
	}
	link := doc.Find("a").First()
	if link.Length() == 0 {
		return ""
	}
	return cleanText(link.Text())
}

// firstLinkHref returns the href of the first anchor carrying one, or "".
func firstLinkHref(fragment string) string {
	doc, err := fragmentDoc(fragment)
	if err != nil {
		return ""
	}
	href, _ := doc.Find("a[href]").First().Attr("href")
	return strings.TrimSpace(href)
}

// plainText strips all markup from the fragment and folds whitespace.
func plainText(fragment string) string {
	doc, err := fragmentDoc(fragment)
	if err != nil {
		return cleanText(fragment)
	}
	return cleanText(doc.Text())
}
