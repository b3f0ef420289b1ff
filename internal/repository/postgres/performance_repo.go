package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventlineup/internal/domain"

	"github.com/lib/pq"
)

const performanceColumns = `id, event_id, start_at, end_at, created_at, updated_at`

type PerformanceRepository struct {
	DB *sql.DB
}

func NewPerformanceRepository(db *sql.DB) domain.PerformanceRepository {
	return &PerformanceRepository{
		DB: db,
	}
}

func (r *PerformanceRepository) Create(ctx context.Context, p *domain.Performance) error {
	query := `
		INSERT INTO performances (event_id, start_at, end_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, p.EventID, p.Start, p.End, p.CreatedAt, p.UpdatedAt).Scan(&p.ID); err != nil {
		return mapPerformanceWriteErr(err)
	}
	return r.linkArtists(ctx, p.ID, p.Artists)
}

func (r *PerformanceRepository) GetByID(ctx context.Context, id string) (*domain.Performance, error) {
	query := `SELECT ` + performanceColumns + ` FROM performances WHERE id = $1`
	p, err := scanPerformance(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachArtists(ctx, []*domain.Performance{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PerformanceRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Performance, error) {
	query := `
		SELECT ` + performanceColumns + `
		FROM performances
		WHERE event_id = $1
		ORDER BY start_at, id
	`
	return r.query(ctx, query, eventID)
}

func (r *PerformanceRepository) List(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Performance, int, error) {
	where := ""
	args := []any{}
	if eventID != "" {
		where = "WHERE event_id = $1"
		args = append(args, eventID)
	}
	var total int
	if err := conn(ctx, r.DB).QueryRowContext(ctx, `SELECT COUNT(*) FROM performances `+where, args...).Scan(&total); err != nil {
		if isInvalidID(err) {
			return []*domain.Performance{}, 0, nil
		}
		return nil, 0, err
	}
	n := len(args)
	query := fmt.Sprintf(`
		SELECT %s
		FROM performances
		%s
		ORDER BY start_at, id
		LIMIT $%d OFFSET $%d
	`, performanceColumns, where, n+1, n+2)
	args = append(args, params.PageSize, params.Offset())
	perfs, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return perfs, total, nil
}

func (r *PerformanceRepository) Update(ctx context.Context, p *domain.Performance) error {
	query := `
		UPDATE performances
		SET event_id = $1, start_at = $2, end_at = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := conn(ctx, r.DB).ExecContext(ctx, query, p.EventID, p.Start, p.End, p.UpdatedAt, p.ID)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrNotFound
		}
		return mapPerformanceWriteErr(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	if _, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM performance_artists WHERE performance_id = $1`, p.ID); err != nil {
		return err
	}
	return r.linkArtists(ctx, p.ID, p.Artists)
}

// Delete removes the performance and its artist links. Event and artists are untouched.
func (r *PerformanceRepository) Delete(ctx context.Context, id string) error {
	result, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM performances WHERE id = $1`, id)
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

func (r *PerformanceRepository) SiblingsOf(ctx context.Context, eventID, excludeID string) ([]domain.Sibling, error) {
	query := `SELECT id, start_at, end_at FROM performances WHERE event_id = $1 ORDER BY start_at, id`
	args := []any{eventID}
	if excludeID != "" {
		query = `SELECT id, start_at, end_at FROM performances WHERE event_id = $1 AND id <> $2 ORDER BY start_at, id`
		args = append(args, excludeID)
	}
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	siblings := make([]domain.Sibling, 0)
	for rows.Next() {
		var s domain.Sibling
		if err := rows.Scan(&s.ID, &s.Range.Start, &s.Range.End); err != nil {
			return nil, err
		}
		siblings = append(siblings, s)
	}
	return siblings, rows.Err()
}

func (r *PerformanceRepository) ChildrenOf(ctx context.Context, eventID string) ([]domain.TimeRange, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, `SELECT start_at, end_at FROM performances WHERE event_id = $1 ORDER BY start_at`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	children := make([]domain.TimeRange, 0)
	for rows.Next() {
		var tr domain.TimeRange
		if err := rows.Scan(&tr.Start, &tr.End); err != nil {
			return nil, err
		}
		children = append(children, tr)
	}
	return children, rows.Err()
}

// linkArtists links every named artist to the performance. An artist deleted after the
// names were resolved fails the write instead of being dropped from the lineup.
func (r *PerformanceRepository) linkArtists(ctx context.Context, performanceID string, names []string) error {
	if len(names) == 0 {
		return nil
	}
	distinct := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		distinct = append(distinct, n)
	}
	query := `
		INSERT INTO performance_artists (performance_id, artist_id)
		SELECT $1, id FROM artists WHERE name = ANY($2)
		ON CONFLICT DO NOTHING
	`
	result, err := conn(ctx, r.DB).ExecContext(ctx, query, performanceID, pq.Array(distinct))
	if err != nil {
		return err
	}
	linked, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("link artists: %w", err)
	}
	if linked < int64(len(distinct)) {
		return domain.NewValidationError(domain.ErrNotFound,
			fmt.Sprintf("Object with name in [%s] does not exist.", strings.Join(distinct, ", ")), "artists")
	}
	return nil
}

func (r *PerformanceRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Performance, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	perfs := make([]*domain.Performance, 0)
	for rows.Next() {
		p, err := scanPerformance(rows)
		if err != nil {
			return nil, err
		}
		perfs = append(perfs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachArtists(ctx, perfs); err != nil {
		return nil, err
	}
	return perfs, nil
}

// attachArtists loads artist names for perfs in one query.
func (r *PerformanceRepository) attachArtists(ctx context.Context, perfs []*domain.Performance) error {
	if len(perfs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(perfs))
	for _, p := range perfs {
		p.Artists = []string{}
		ids = append(ids, p.ID)
	}
	rows, err := conn(ctx, r.DB).QueryContext(ctx, `
		SELECT pa.performance_id, a.name
		FROM performance_artists pa
		INNER JOIN artists a ON a.id = pa.artist_id
		WHERE pa.performance_id = ANY($1)
		ORDER BY a.name
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	byPerformance := make(map[string][]string)
	for rows.Next() {
		var performanceID, name string
		if err := rows.Scan(&performanceID, &name); err != nil {
			return err
		}
		byPerformance[performanceID] = append(byPerformance[performanceID], name)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for _, p := range perfs {
		if names := byPerformance[p.ID]; names != nil {
			p.Artists = names
		}
	}
	return nil
}

func scanPerformance(row rowScanner) (*domain.Performance, error) {
	p := &domain.Performance{}
	if err := row.Scan(&p.ID, &p.EventID, &p.Start, &p.End, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Start = p.Start.UTC()
	p.End = p.End.UTC()
	return p, nil
}

func mapPerformanceWriteErr(err error) error {
	switch {
	case isExclusionViolation(err):
		return overlapConflict()
	case isForeignKeyViolation(err):
		return domain.NewValidationError(domain.ErrNotFound, "event does not exist", "event")
	case isCheckViolation(err):
		return domain.NewValidationError(domain.ErrInvalidRange, "The end may not be earlier than the start", "end")
	default:
		return err
	}
}
