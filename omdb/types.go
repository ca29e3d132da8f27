package omdb

import "fmt"

// PosterUnavailable is the literal sentinel OMDb returns when a catalog
// item has no poster. Consumers must treat it as an absent poster and
// substitute their own fallback at render time.
const PosterUnavailable = "N/A"

// Movie is the summary record returned by search-style lookups.
// Identity is the ImdbID; records are never mutated once fetched.
type Movie struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// HasPoster reports whether the movie carries a usable poster URL.
func (m Movie) HasPoster() bool {
	return m.Poster != "" && m.Poster != PosterUnavailable
}

// PosterURL returns the poster URL, or fallback when the upstream
// sentinel marks it absent.
func (m Movie) PosterURL(fallback string) string {
	if m.HasPoster() {
		return m.Poster
	}
	return fallback
}

// MovieDetails is the full detail record returned by identifier lookups.
type MovieDetails struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Awards     string `json:"Awards"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Type       string `json:"Type"`
	Response   string `json:"Response"`
}

// HasPoster reports whether the detail record carries a usable poster URL.
func (d MovieDetails) HasPoster() bool {
	return d.Poster != "" && d.Poster != PosterUnavailable
}

// SearchResponse is the list-form upstream payload. Response is the
// upstream status flag, "True" or "False".
type SearchResponse struct {
	Search       []Movie `json:"Search"`
	TotalResults string  `json:"totalResults"`
	Response     string  `json:"Response"`
	Error        string  `json:"Error"`
}

// OK reports whether the upstream accepted the query and returned data.
func (r SearchResponse) OK() bool {
	return r.Response == "True"
}

// APIError represents a non-200 response from the OMDb endpoint
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("omdb API error: status %d: %s", e.StatusCode, e.Message)
}

// Dedupe removes movies sharing an ImdbID, keeping the first occurrence
// and preserving the relative order of first occurrences.
func Dedupe(movies []Movie) []Movie {
	seen := make(map[string]struct{}, len(movies))
	unique := make([]Movie, 0, len(movies))
	for _, movie := range movies {
		if _, ok := seen[movie.ImdbID]; ok {
			continue
		}
		seen[movie.ImdbID] = struct{}{}
		unique = append(unique, movie)
	}
	return unique
}
