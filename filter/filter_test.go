package filter

import (
	"strings"
	"testing"

	"github.com/soup/cineshell/omdb"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `contains(Title, "batman")`,
			wantErr:    false,
		},
		{
			name:        "empty expression",
			expression:  "",
			wantErr:     true,
			errContains: "empty filter expression",
		},
		{
			name:       "invalid syntax",
			expression: `contains("unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `contains(Title, "dark") and Year > "2000" and HasPoster`,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if f == nil {
					t.Errorf("expected filter but got nil")
				}
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	movie := omdb.Movie{
		Title:  "The Dark Knight",
		Year:   "2008",
		ImdbID: "tt0468569",
		Type:   "movie",
		Poster: "http://img/tdk.jpg",
	}

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{name: "title contains", expression: `contains(Title, "dark")`, expected: true},
		{name: "title does not contain", expression: `contains(Title, "batman")`, expected: false},
		{name: "starts with", expression: `startsWith(Title, "the")`, expected: true},
		{name: "ends with", expression: `endsWith(Title, "knight")`, expected: true},
		{name: "type match", expression: `Type == "movie"`, expected: true},
		{name: "year comparison", expression: `Year >= "2005"`, expected: true},
		{name: "has poster", expression: `HasPoster`, expected: true},
		{name: "combined", expression: `contains(Title, "knight") and Type == "movie"`, expected: true},
		{name: "non-boolean result", expression: `Title`, expected: false},
		{name: "nested movie access", expression: `Movie.ImdbID == "tt0468569"`, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile: %v", err)
			}

			if got := f.Evaluate(movie); got != tt.expected {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expression, got, tt.expected)
			}
		})
	}
}

func TestApply(t *testing.T) {
	movies := []omdb.Movie{
		{Title: "Batman Begins", Year: "2005", ImdbID: "tt0372784", Poster: "http://img/bb.jpg"},
		{Title: "The Dark Knight", Year: "2008", ImdbID: "tt0468569", Poster: "http://img/tdk.jpg"},
		{Title: "Batman Returns", Year: "1992", ImdbID: "tt0103776", Poster: omdb.PosterUnavailable},
	}

	f, err := Compile(`contains(Title, "batman")`)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}

	got := f.Apply(movies)
	if len(got) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(got))
	}
	if got[0].ImdbID != "tt0372784" || got[1].ImdbID != "tt0103776" {
		t.Errorf("unexpected result order: %v", got)
	}

	withPoster, err := Compile(`HasPoster`)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}
	if got := withPoster.Apply(movies); len(got) != 2 {
		t.Errorf("expected 2 movies with posters, got %d", len(got))
	}
}
