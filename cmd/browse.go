package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soup/cineshell/filter"
	"github.com/soup/cineshell/omdb"
)

var filterExpr string

// posterFallback replaces the upstream "N/A" sentinel at render time
const posterFallback = "(no poster)"

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog by title",
	Long: `Search the OMDb catalog with the given query. An upstream "no
results" status yields an empty listing; a transport failure is an
error worth retrying.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

// popularCmd represents the popular command
var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List popular movies aggregated from fixed queries",
	Long: `Aggregate the configured popular queries concurrently, merge the
results in query order, and drop duplicate titles.`,
	RunE: runPopular,
}

// movieCmd represents the movie details command
var movieCmd = &cobra.Command{
	Use:   "movie <imdb-id>",
	Short: "Show full details for one movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovie,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(popularCmd)
	rootCmd.AddCommand(movieCmd)

	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'contains(Title, \"dark\") and HasPoster'")
	popularCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if _, err := requireSession(); err != nil {
		return err
	}
	query := args[0]

	logger.Info().Str("query", query).Msg("Searching catalog")

	ctx := context.Background()
	movies, err := catalog.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed (retry with the same query): %w", err)
	}

	movies, err = applyFilter(movies)
	if err != nil {
		return err
	}

	printMovies(movies)
	return nil
}

func runPopular(cmd *cobra.Command, args []string) error {
	if _, err := requireSession(); err != nil {
		return err
	}

	logger.Info().Strs("queries", cfg.OMDb.PopularQueries).Msg("Aggregating popular movies")

	ctx := context.Background()
	movies, err := catalog.GetPopular(ctx, cfg.OMDb.PopularQueries)
	if err != nil {
		return fmt.Errorf("popular listing failed (retry): %w", err)
	}

	movies, err = applyFilter(movies)
	if err != nil {
		return err
	}

	printMovies(movies)
	return nil
}

func runMovie(cmd *cobra.Command, args []string) error {
	if _, err := requireSession(); err != nil {
		return err
	}
	imdbID := args[0]

	logger.Info().Str("imdb_id", imdbID).Msg("Fetching movie details")

	ctx := context.Background()
	details, err := catalog.GetDetails(ctx, imdbID)
	if err != nil {
		return err
	}
	if details == nil {
		fmt.Printf("No details found for %s.\n", imdbID)
		return nil
	}

	printDetails(details)
	return nil
}

// applyFilter narrows movies with the --filter expression, if given
func applyFilter(movies []omdb.Movie) ([]omdb.Movie, error) {
	if filterExpr == "" {
		return movies, nil
	}

	f, err := filter.Compile(filterExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f.Apply(movies), nil
}

func printMovies(movies []omdb.Movie) {
	if len(movies) == 0 {
		fmt.Println("No movies found.")
		return
	}

	fmt.Printf("\nFound %d movies:\n", len(movies))
	fmt.Println(strings.Repeat("-", 80))

	for _, movie := range movies {
		fmt.Printf("• %s (%s) [%s]\n", movie.Title, movie.Year, movie.Type)
		fmt.Printf("  ID: %s\n", movie.ImdbID)
		fmt.Printf("  Poster: %s\n", movie.PosterURL(posterFallback))
	}
}

func printDetails(d *omdb.MovieDetails) {
	fmt.Printf("\n%s (%s)\n", d.Title, d.Year)
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Rated:    %s\n", d.Rated)
	fmt.Printf("Released: %s\n", d.Released)
	fmt.Printf("Runtime:  %s\n", d.Runtime)
	fmt.Printf("Genre:    %s\n", d.Genre)
	fmt.Printf("Director: %s\n", d.Director)
	fmt.Printf("Writer:   %s\n", d.Writer)
	fmt.Printf("Actors:   %s\n", d.Actors)
	fmt.Printf("Language: %s\n", d.Language)
	fmt.Printf("Country:  %s\n", d.Country)
	fmt.Printf("Awards:   %s\n", d.Awards)
	fmt.Printf("Rating:   %s\n", d.ImdbRating)
	if d.HasPoster() {
		fmt.Printf("Poster:   %s\n", d.Poster)
	} else {
		fmt.Printf("Poster:   %s\n", posterFallback)
	}
	if d.Plot != "" {
		fmt.Printf("\n%s\n", d.Plot)
	}
}
