package web

import "github.com/mvdan/xurls"

type URLFinder struct{}

func NewURLFinder() *URLFinder {
	return &URLFinder{}
}

// FindURLs returns all URLs with an explicit scheme (http://, https://) found in the string.
func (u *URLFinder) FindURLs(str string) []string {
	return xurls.Strict.FindAllString(str, -1)
}
