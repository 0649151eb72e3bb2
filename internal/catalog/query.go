package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultSearchTerm = "book"
	defaultMaxResults = 10
	allGenres         = "all"
)

type SearchParams struct {
	Query      string
	Genre      string
	StartIndex int
	MaxResults int
}

// ParseSearchParams reads q, genre, startIndex and maxResults. Unparsable
// numbers fall back to their defaults; a zero maxResults means the default too.
func ParseSearchParams(v url.Values) SearchParams {
	p := SearchParams{
		Query:      v.Get("q"),
		Genre:      v.Get("genre"),
		MaxResults: defaultMaxResults,
	}
	if n, err := strconv.Atoi(v.Get("startIndex")); err == nil {
		p.StartIndex = n
	}
	if n, err := strconv.Atoi(v.Get("maxResults")); err == nil && n != 0 {
		p.MaxResults = n
	}
	return p
}

// SearchTerm is the provider's q value: the free-text query (or "book") with a
// subject filter unless the genre is empty or "all".
func (p SearchParams) SearchTerm() string {
	term := p.Query
	if term == "" {
		term = defaultSearchTerm
	}
	if p.Genre != "" && !strings.EqualFold(p.Genre, allGenres) {
		term += "+subject:" + p.Genre
	}
	return term
}

func (p SearchParams) values() map[string]string {
	return map[string]string{
		"q":          p.SearchTerm(),
		"startIndex": strconv.Itoa(p.StartIndex),
		"maxResults": strconv.Itoa(p.MaxResults),
	}
}
