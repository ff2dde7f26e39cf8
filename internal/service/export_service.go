package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mini-blog-api/internal/models"
	"github.com/mini-blog-api/internal/repository"
	"github.com/rs/zerolog"
)

// Export formats
const (
	FormatNDJSON = "ndjson"
	FormatJSON   = "json"
)

// ErrUnsupportedFormat is returned for an export format other than ndjson or json
var ErrUnsupportedFormat = errors.New("unsupported export format")

// flushEvery is how many records are written between flushes
const flushEvery = 100

// exportService is the concrete implementation of ExportService
type exportService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newExportService creates a new ExportService
func newExportService(repos *repository.Repositories, log zerolog.Logger) *exportService {
	return &exportService{
		repos: repos,
		log:   log.With().Str("service", "export").Logger(),
	}
}

// StreamArticles writes every article, oldest first, in the given format
func (s *exportService) StreamArticles(ctx context.Context, w http.ResponseWriter, format string) error {
	return stream[models.Article](ctx, s.log, w, "articles", format, s.repos.Article.StreamAll)
}

// StreamComments writes every comment as a flat row, oldest first, in the given format
func (s *exportService) StreamComments(ctx context.Context, w http.ResponseWriter, format string) error {
	return stream[models.Comment](ctx, s.log, w, "comments", format, s.repos.Comment.StreamAll)
}

// ValidFormat reports whether format names a supported export format
func ValidFormat(format string) bool {
	return format == FormatNDJSON || format == FormatJSON
}

// rowSource is the StreamAll method of a repository
type rowSource[T any] func(ctx context.Context, fn func(*T) error) error

func stream[T any](ctx context.Context, log zerolog.Logger, w http.ResponseWriter, resource, format string, source rowSource[T]) error {
	if !ValidFormat(format) {
		return ErrUnsupportedFormat
	}

	log.Info().Str("resource", resource).Str("format", format).Msg("Starting export")

	var (
		count int
		err   error
	)
	if format == FormatNDJSON {
		count, err = writeNDJSON(ctx, w, resource, source)
	} else {
		count, err = writeJSONArray(ctx, w, resource, source)
	}

	event := log.Info()
	if err != nil {
		event = log.Error().Err(err)
	}
	event.Str("resource", resource).Int("count", count).Msg("Export finished")
	return err
}

func writeNDJSON[T any](ctx context.Context, w http.ResponseWriter, resource string, source rowSource[T]) (int, error) {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Content-Disposition", "attachment; filename="+resource+".ndjson")

	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)
	count := 0

	err := source(ctx, func(row *T) error {
		// Encode terminates each value with a newline
		if err := enc.Encode(row); err != nil {
			return err
		}
		count++

		if count%flushEvery == 0 && flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	return count, err
}

// writeJSONArray opens the array only once the first row is in hand, so a
// cursor that fails before any row leaves the response untouched.
func writeJSONArray[T any](ctx context.Context, w http.ResponseWriter, resource string, source rowSource[T]) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+resource+".json")

	count := 0
	err := source(ctx, func(row *T) error {
		data, err := json.Marshal(row)
		if err != nil {
			return err
		}

		sep := ","
		if count == 0 {
			sep = "["
		}
		if _, err := w.Write([]byte(sep)); err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		count++
		return nil
	})

	if err != nil {
		// Close a started array so clients see valid JSON up to the failed row
		if count > 0 {
			w.Write([]byte("]"))
		}
		return count, err
	}

	closing := "]"
	if count == 0 {
		closing = "[]"
	}
	if _, err := w.Write([]byte(closing)); err != nil {
		return count, err
	}
	return count, nil
}
