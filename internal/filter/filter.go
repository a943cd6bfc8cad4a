// Package filter turns the list query string into a predicate over posts.
package filter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sambbaron/posts/internal/models"
)

// Query parameters understood by FromQuery. Anything else is ignored.
const (
	TitleParam = "title_like"
	BodyParam  = "body_like"
)

// Filter holds the optional substring tests. A nil field is not applied.
type Filter struct {
	TitleLike *string
	BodyLike  *string
}

// FromQuery reads title_like and body_like from q. A parameter that is
// present but empty still counts as present and matches every post.
func FromQuery(q url.Values) Filter {
	var f Filter
	if _, ok := q[TitleParam]; ok {
		v := q.Get(TitleParam)
		f.TitleLike = &v
	}
	if _, ok := q[BodyParam]; ok {
		v := q.Get(BodyParam)
		f.BodyLike = &v
	}
	return f
}

// IsEmpty reports whether f matches everything.
func (f Filter) IsEmpty() bool {
	return f.TitleLike == nil && f.BodyLike == nil
}

// Match reports whether p passes every test in f. Matching is a
// case-sensitive substring test.
func (f Filter) Match(p models.Post) bool {
	if f.TitleLike != nil && !strings.Contains(p.Title, *f.TitleLike) {
		return false
	}
	if f.BodyLike != nil && !strings.Contains(p.Body, *f.BodyLike) {
		return false
	}
	return true
}

// Where renders f as a SQL boolean expression with positional
// placeholders starting at $firstArg. It returns "" and no args when f is
// empty. strpos is used instead of LIKE so that % and _ in the search text
// match literally.
func (f Filter) Where(firstArg int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	n := firstArg
	if f.TitleLike != nil {
		conds = append(conds, fmt.Sprintf("strpos(title, $%d) > 0", n))
		args = append(args, *f.TitleLike)
		n++
	}
	if f.BodyLike != nil {
		conds = append(conds, fmt.Sprintf("strpos(body, $%d) > 0", n))
		args = append(args, *f.BodyLike)
	}
	return strings.Join(conds, " AND "), args
}

// Apply returns the posts in src that match f, preserving order.
func (f Filter) Apply(src []models.Post) []models.Post {
	out := make([]models.Post, 0, len(src))
	for _, p := range src {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
