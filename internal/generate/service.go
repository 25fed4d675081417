// Package generate renders configuration documents and writes them to
// disk, recording each run in the generation history.
package generate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/edesto/edesto/internal/catalog"
	"github.com/edesto/edesto/internal/compose"
	"github.com/edesto/edesto/internal/history"
	"github.com/edesto/edesto/internal/log"
	"github.com/edesto/edesto/internal/tracing"
)

// Service renders documents for catalog boards and persists them.
type Service struct {
	cat    *catalog.Catalog
	repo   history.Repository
	tracer trace.Tracer
}

// Result describes one completed write.
type Result struct {
	Board     *catalog.Board
	Port      string
	Document  string
	Checksum  string
	Artifacts []string

	// GenerationGUID identifies the history record, empty when history
	// is disabled.
	GenerationGUID string
}

// NewService creates a Service. repo may be nil to disable history;
// tracer may be nil for a no-op tracer.
func NewService(cat *catalog.Catalog, repo history.Repository, tracer trace.Tracer) *Service {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	return &Service{cat: cat, repo: repo, tracer: tracer}
}

// Render produces the configuration document for the given board slug
// and serial port. Unknown slugs return catalog.ErrNotFound.
func (s *Service) Render(ctx context.Context, slug, port string) (string, *catalog.Board, error) {
	_, span := s.tracer.Start(ctx, tracing.SpanRender, trace.WithAttributes(
		attribute.String(tracing.AttrBoardSlug, slug),
		attribute.String(tracing.AttrPort, port),
	))
	defer span.End()

	board, err := s.cat.Lookup(slug)
	if err != nil {
		span.SetAttributes(attribute.String(tracing.AttrErrorMessage, err.Error()))
		return "", nil, err
	}

	doc := compose.Render(board, port)
	span.SetAttributes(attribute.String(tracing.AttrBoardFQBN, board.FQBN()))
	return doc, board, nil
}

// Checksum returns the sha256 hex digest of a rendered document.
func Checksum(document string) string {
	sum := sha256.Sum256([]byte(document))
	return hex.EncodeToString(sum[:])
}

// Write renders the document for slug/port and writes it to every
// artifact name under dir. All artifacts receive identical bytes.
// The run is recorded in history when a repository is configured.
func (s *Service) Write(ctx context.Context, slug, port, dir string, artifacts []string) (*Result, error) {
	document, board, err := s.Render(ctx, slug, port)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, tracing.SpanWrite, trace.WithAttributes(
		attribute.String(tracing.AttrBoardSlug, board.Slug()),
	))
	defer span.End()

	written := make([]string, 0, len(artifacts))
	for _, name := range artifacts {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		log.Info(log.CatCLI, "wrote artifact", "path", path)
		written = append(written, path)
	}
	span.SetAttributes(attribute.StringSlice(tracing.AttrArtifact, written))

	result := &Result{
		Board:     board,
		Port:      port,
		Document:  document,
		Checksum:  Checksum(document),
		Artifacts: written,
	}

	if s.repo != nil {
		if guid, err := s.record(ctx, result); err != nil {
			// History failures must not fail the write itself.
			log.Warn(log.CatDB, "recording generation failed", "error", err)
		} else {
			result.GenerationGUID = guid
		}
	}

	return result, nil
}

func (s *Service) record(ctx context.Context, result *Result) (string, error) {
	_, span := s.tracer.Start(ctx, tracing.SpanHistory, trace.WithAttributes(
		attribute.String(tracing.AttrChecksum, result.Checksum),
	))
	defer span.End()

	gen := history.NewGeneration(
		result.Board.Slug(),
		result.Board.FQBN(),
		result.Port,
		result.Checksum,
		result.Artifacts,
	)
	if err := s.repo.Save(gen); err != nil {
		return "", err
	}
	span.SetAttributes(attribute.String(tracing.AttrGenerationID, gen.GUID()))
	return gen.GUID(), nil
}
