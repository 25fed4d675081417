package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/edesto/edesto/internal/history"
)

// generationColumns is the list of columns to select for generation queries.
const generationColumns = `id, guid, board_slug, fqbn, port, checksum, artifacts, created_at`

// generationRepository implements history.Repository using SQLite.
type generationRepository struct {
	db *sql.DB
}

// NewGenerationRepository creates a repository backed by the given database.
func NewGenerationRepository(db *DB) history.Repository {
	return &generationRepository{db: db.conn}
}

// Ensure generationRepository implements history.Repository.
var _ history.Repository = (*generationRepository)(nil)

// scanGeneration scans a row into a GenerationModel.
func scanGeneration(scanner interface{ Scan(...any) error }) (*GenerationModel, error) {
	var model GenerationModel
	err := scanner.Scan(
		&model.ID, &model.GUID, &model.BoardSlug, &model.FQBN,
		&model.Port, &model.Checksum, &model.Artifacts, &model.CreatedAt,
	)
	return &model, err
}

// Save inserts a new generation and assigns its database ID.
func (r *generationRepository) Save(g *history.Generation) error {
	model := toGenerationModel(g)

	result, err := r.db.Exec(
		`INSERT INTO generations (guid, board_slug, fqbn, port, checksum, artifacts, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		model.GUID, model.BoardSlug, model.FQBN, model.Port,
		model.Checksum, model.Artifacts, model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert generation: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	g.SetID(id)
	return nil
}

// List returns the most recent generations, newest first.
func (r *generationRepository) List(limit int) ([]*history.Generation, error) {
	query := `SELECT ` + generationColumns + ` FROM generations ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var generations []*history.Generation
	for rows.Next() {
		model, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		generations = append(generations, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate generations: %w", err)
	}
	return generations, nil
}

// FindByGUID returns the generation with the given GUID.
// Returns history.NotFoundError if no matching row exists.
func (r *generationRepository) FindByGUID(guid string) (*history.Generation, error) {
	row := r.db.QueryRow(
		`SELECT `+generationColumns+` FROM generations WHERE guid = ?`,
		guid,
	)
	model, err := scanGeneration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &history.NotFoundError{GUID: guid}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find generation by guid: %w", err)
	}
	return model.toDomain(), nil
}
