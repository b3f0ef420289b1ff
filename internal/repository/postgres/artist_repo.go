package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventlineup/internal/domain"

	"github.com/lib/pq"
)

const artistColumns = `id, name, genre, created_at, updated_at`

type artistRepository struct {
	DB *sql.DB
}

// NewArtistRepository returns a domain.ArtistRepository implemented with Postgres.
func NewArtistRepository(db *sql.DB) domain.ArtistRepository {
	return &artistRepository{DB: db}
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) error {
	query := `
		INSERT INTO artists (name, genre, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, a.Name, string(a.Genre), a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if isUniqueViolation(err) {
		return domain.NewValidationError(domain.ErrDuplicateName, "artist with this name already exists", "name")
	}
	return err
}

func (r *artistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`
	a, err := scanArtist(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *artistRepository) GetByNames(ctx context.Context, names []string) ([]*domain.Artist, error) {
	if len(names) == 0 {
		return []*domain.Artist{}, nil
	}
	query := `SELECT ` + artistColumns + ` FROM artists WHERE name = ANY($1) ORDER BY name`
	return r.query(ctx, query, pq.Array(names))
}

func (r *artistRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Artist, int, error) {
	var total int
	if err := conn(ctx, r.DB).QueryRowContext(ctx, `SELECT COUNT(*) FROM artists`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY name LIMIT $1 OFFSET $2`
	artists, err := r.query(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	return artists, total, nil
}

// Delete removes the artist and its performance links; the performances stay.
func (r *artistRepository) Delete(ctx context.Context, id string) error {
	result, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrNotFound
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *artistRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Artist, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func scanArtist(row rowScanner) (*domain.Artist, error) {
	a := &domain.Artist{}
	var genre string
	if err := row.Scan(&a.ID, &a.Name, &genre, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Genre = domain.Genre(genre)
	return a, nil
}
