package omdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosterSentinel(t *testing.T) {
	withPoster := Movie{Poster: "http://img/poster.jpg"}
	without := Movie{Poster: PosterUnavailable}
	empty := Movie{}

	assert.True(t, withPoster.HasPoster())
	assert.False(t, without.HasPoster())
	assert.False(t, empty.HasPoster())

	assert.Equal(t, "http://img/poster.jpg", withPoster.PosterURL("fallback.jpg"))
	assert.Equal(t, "fallback.jpg", without.PosterURL("fallback.jpg"))
	assert.Equal(t, "fallback.jpg", empty.PosterURL("fallback.jpg"))
}

func TestDedupe(t *testing.T) {
	first := Movie{Title: "First", ImdbID: "tt1"}
	dupe := Movie{Title: "First Again", ImdbID: "tt1"}
	second := Movie{Title: "Second", ImdbID: "tt2"}

	tests := []struct {
		name  string
		input []Movie
		want  []Movie
	}{
		{name: "empty", input: nil, want: []Movie{}},
		{name: "no duplicates", input: []Movie{first, second}, want: []Movie{first, second}},
		{name: "keeps first occurrence", input: []Movie{first, second, dupe}, want: []Movie{first, second}},
		{name: "all duplicates", input: []Movie{first, dupe, dupe}, want: []Movie{first}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedupe(tt.input))
		})
	}
}
