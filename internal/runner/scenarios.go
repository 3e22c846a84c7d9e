package runner

import (
	"context"
	"fmt"
	"strconv"

	"omdb_smoke_testing/internal/model"
)

const (
	detailsID       = "tt0133093"
	detailsTitle    = "Inception"
	missingTitle    = "ThisMovieDoesNotExist123456"
	malformedID     = "invalid_id"
	seriesType      = "series"
	expectedMovie   = "Movie details"
	expectedMessage = "Error message"
)

func found(env *model.Envelope, err error) bool {
	return err == nil && env.Body.Kind == model.Found
}

func notFound(env *model.Envelope, err error) bool {
	return err == nil && env.Body.Kind == model.NotFound
}

func formatMs(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64) + "ms"
}

func (r *Runner) testBasicFunctionality(ctx context.Context) {
	// 接口可用性
	env, err := r.execute(ctx, model.Params{"s": "test"})
	if err != nil {
		r.check("API availability", false, err.Error(), "Successful response", err.Error())
	} else {
		r.check("API availability", true, "response time: "+formatMs(env.ResponseTimeMs),
			"Successful response", "Successful response")
	}

	// 搜索
	env, err = r.execute(ctx, model.Params{"s": "Matrix"})
	if found(env, err) {
		n := len(env.Body.Search)
		r.check("Movie search", true, fmt.Sprintf("movies found: %d", n),
			"Movies found", fmt.Sprintf("Found %d movies", n))
	} else {
		r.check("Movie search", false, "no movies found", "Movies found", "No movies found")
	}
}

func (r *Runner) testMovieDetails(ctx context.Context) {
	env, err := r.execute(ctx, model.Params{"i": detailsID})
	if found(env, err) {
		r.check("Details by ID", true, fmt.Sprintf("movie: %s (%s)", env.Body.Title, env.Body.Year),
			expectedMovie, "Found "+env.Body.Title)
	} else {
		r.check("Details by ID", false, "movie not found", expectedMovie, "Movie not found")
	}

	env, err = r.execute(ctx, model.Params{"t": detailsTitle})
	if found(env, err) {
		r.check("Details by title", true, "movie: "+env.Body.Title, expectedMovie, "Found "+env.Body.Title)
	} else {
		r.check("Details by title", false, "movie not found", expectedMovie, "Movie not found")
	}
}

func (r *Runner) testErrorHandling(ctx context.Context) {
	env, err := r.execute(ctx, model.Params{"s": missingTitle})
	if notFound(env, err) {
		r.check("Nonexistent movie", true, "error: "+env.Body.Error, expectedMessage, env.Body.Error)
	} else {
		r.check("Nonexistent movie", false, "unexpected response", expectedMessage, "Unexpected response")
	}

	env, err = r.execute(ctx, model.Params{"i": malformedID})
	if notFound(env, err) {
		r.check("Invalid ID", true, "error handled correctly", expectedMessage, "Error handled")
	} else {
		r.check("Invalid ID", false, "unexpected response", expectedMessage, "Unexpected response")
	}
}

func (r *Runner) testFilters(ctx context.Context) {
	const yearExpected = "Filtered results"
	env, err := r.execute(ctx, model.Params{"s": "batman", "y": "2005"})
	switch {
	case err != nil:
		r.check("Year filter", false, err.Error(), yearExpected, err.Error())
	case env.Body.Kind == model.Found:
		n := len(env.Body.Search)
		r.check("Year filter", true, fmt.Sprintf("found: %d", n), yearExpected, fmt.Sprintf("Found %d", n))
	default:
		r.check("Year filter", true, "no results", yearExpected, "No results")
	}

	const typeExpected = "Series only"
	env, err = r.execute(ctx, model.Params{"s": "planet", "type": seriesType})
	switch {
	case err != nil:
		r.check("Type filter", false, err.Error(), typeExpected, err.Error())
	case env.Body.Kind == model.Found:
		items := env.Body.Search
		if allOfType(items, seriesType) {
			r.check("Type filter", true, fmt.Sprintf("all results are series: %d", len(items)),
				typeExpected, fmt.Sprintf("Found %d series", len(items)))
		} else {
			r.check("Type filter", false, "not all results are series", typeExpected, "Not all results are series")
		}
	case env.Body.Kind == model.Malformed:
		r.check("Type filter", false, "malformed response", typeExpected, "Malformed response")
	default:
		r.check("Type filter", true, "no results", typeExpected, "No results")
	}
}

func allOfType(items []model.SearchItem, kind string) bool {
	for _, item := range items {
		if item.Type != kind {
			return false
		}
	}
	return true
}

func (r *Runner) testPagination(ctx context.Context) {
	const expected = "Different pages"
	env1, err1 := r.execute(ctx, model.Params{"s": "test", "page": strconv.Itoa(1)})
	env2, err2 := r.execute(ctx, model.Params{"s": "test", "page": strconv.Itoa(2)})

	if err := firstErr(err1, err2); err != nil {
		r.check("Pagination", false, "request error", expected, "Request error: "+err.Error())
		return
	}

	if env1.Body.Kind != model.Found || env2.Body.Kind != model.Found {
		r.check("Pagination", true, "no results", expected, "No results")
		return
	}

	n1, n2 := len(env1.Body.Search), len(env2.Body.Search)
	if n1 > 0 && n2 > 0 {
		r.check("Pagination", true, fmt.Sprintf("page 1: %d, page 2: %d", n1, n2), expected, "Pagination works")
	} else {
		r.check("Pagination", true, "not enough data to test", expected, "Insufficient data")
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) testPerformance(ctx context.Context) {
	expected := "< " + formatMs(float64(r.slowThreshold.Milliseconds()))
	env, err := r.execute(ctx, model.Params{"s": "test"})
	if err != nil {
		r.check("Response time", false, err.Error(), expected, err.Error())
		return
	}

	rt := env.ResponseTimeMs
	if rt < float64(r.slowThreshold.Milliseconds()) {
		r.check("Response time", true, formatMs(rt), expected, formatMs(rt))
	} else {
		r.check("Response time", false, "slow: "+formatMs(rt), expected, formatMs(rt))
	}
}
