package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambbaron/posts/internal/models"
)

func seed() []models.Post {
	return []models.Post{
		{ID: 1, Title: "Post with bells", Body: "Just a test"},
		{ID: 2, Title: "Post with whistles", Body: "Still a test"},
		{ID: 3, Title: "Post with bells and whistles", Body: "Another test"},
	}
}

func ids(posts []models.Post) []int64 {
	out := make([]int64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFromQuery(t *testing.T) {
	f := FromQuery(url.Values{"title_like": {"a"}, "sort": {"desc"}})
	require.NotNil(t, f.TitleLike)
	assert.Equal(t, "a", *f.TitleLike)
	assert.Nil(t, f.BodyLike)
	assert.False(t, f.IsEmpty())

	assert.True(t, FromQuery(url.Values{"page": {"2"}}).IsEmpty())
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"no params", "", []int64{1, 2, 3}},
		{"title", "title_like=whistles", []int64{2, 3}},
		{"body", "body_like=Still", []int64{2}},
		{"both", "title_like=bells&body_like=Another", []int64{3}},
		{"case sensitive", "title_like=WHISTLES", []int64{}},
		{"empty value matches all", "title_like=", []int64{1, 2, 3}},
		{"unknown param ignored", "author=bob", []int64{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(FromQuery(q).Apply(seed())))
		})
	}
}

func TestApplyIsIntersection(t *testing.T) {
	title := "bells"
	body := "test"
	both := Filter{TitleLike: &title, BodyLike: &body}.Apply(seed())
	onlyTitle := Filter{TitleLike: &title}.Apply(seed())
	onlyBody := Filter{BodyLike: &body}.Apply(seed())

	var want []int64
	for _, a := range onlyTitle {
		for _, b := range onlyBody {
			if a.ID == b.ID {
				want = append(want, a.ID)
			}
		}
	}
	assert.Equal(t, want, ids(both))
}

func TestWhere(t *testing.T) {
	title := "50%"
	body := "x_y"

	where, args := Filter{}.Where(1)
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = Filter{TitleLike: &title, BodyLike: &body}.Where(1)
	assert.Equal(t, "strpos(title, $1) > 0 AND strpos(body, $2) > 0", where)
	assert.Equal(t, []any{"50%", "x_y"}, args)

	where, args = Filter{BodyLike: &body}.Where(3)
	assert.Equal(t, "strpos(body, $3) > 0", where)
	assert.Equal(t, []any{"x_y"}, args)
}
