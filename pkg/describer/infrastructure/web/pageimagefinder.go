package web

import (
	"bytes"
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ErrNoImageOnPage = errors.New("no image found on the page")

// Selectors of the elements which are likely to point to the "main" image of a page, in order of preference.
var pageImageSelectors = []struct {
	selector  string
	attribute string
}{
	{`meta[property="og:image"]`, "content"},
	{`meta[name="twitter:image"]`, "content"},
	{`link[rel="image_src"]`, "href"},
	{`img[src]`, "src"},
}

type PageImageFinder struct{}

func NewPageImageFinder() *PageImageFinder {
	return &PageImageFinder{}
}

// FindImageURL returns the absolute URL of the main image of an HTML page.
func (p *PageImageFinder) FindImageURL(pageURL string, html []byte) (string, error) {
	document, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", err
	}
	for _, candidate := range pageImageSelectors {
		reference := ""
		document.Find(candidate.selector).EachWithBreak(func(_ int, selection *goquery.Selection) bool {
			value, _ := selection.Attr(candidate.attribute)
			value = strings.TrimSpace(value)
			if value == "" || strings.HasPrefix(value, "data:") {
				return true
			}
			reference = value
			return false
		})
		if reference != "" {
			return resolveReference(pageURL, reference)
		}
	}
	return "", ErrNoImageOnPage
}

func resolveReference(baseURL, reference string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(reference)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
