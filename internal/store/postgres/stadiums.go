package postgres

import (
	"context"
	"errors"
	"fmt"

	"TennisLeaguewebserver/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StadiumsStore struct {
	pool *pgxpool.Pool
}

func NewStadiumsStore(pool *pgxpool.Pool) *StadiumsStore {
	return &StadiumsStore{pool: pool}
}

func (s *StadiumsStore) CreateStadium(ctx context.Context, surface domain.Surface, locationName string) (domain.Stadium, error) {
	const q = `
		INSERT INTO stadiums (surface, location_name)
		VALUES ($1, $2)
		RETURNING id, surface, location_name, created_at
	`

	var (
		st     domain.Stadium
		idUUID pgtype.UUID
	)
	err := s.pool.QueryRow(ctx, q, string(surface), locationName).Scan(
		&idUUID,
		&st.Surface,
		&st.LocationName,
		&st.CreatedAt,
	)
	if err != nil {
		return domain.Stadium{}, fmt.Errorf("create stadium: %w", err)
	}
	st.ID = uuidOrEmpty(idUUID)
	return st, nil
}

func (s *StadiumsStore) GetStadium(ctx context.Context, id string) (domain.Stadium, error) {
	const q = `
		SELECT id, surface, location_name, created_at
		FROM stadiums
		WHERE id = $1
	`

	var (
		st     domain.Stadium
		idUUID pgtype.UUID
	)
	err := s.pool.QueryRow(ctx, q, id).Scan(
		&idUUID,
		&st.Surface,
		&st.LocationName,
		&st.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Stadium{}, domain.ErrNotFound
		}
		return domain.Stadium{}, fmt.Errorf("get stadium: %w", err)
	}
	st.ID = uuidOrEmpty(idUUID)
	return st, nil
}

func (s *StadiumsStore) ListStadiums(ctx context.Context) ([]domain.Stadium, error) {
	const q = `
		SELECT id, surface, location_name, created_at
		FROM stadiums
		ORDER BY location_name ASC
	`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list stadiums: %w", err)
	}
	defer rows.Close()

	var stadiums []domain.Stadium
	for rows.Next() {
		var (
			st     domain.Stadium
			idUUID pgtype.UUID
		)
		if err := rows.Scan(&idUUID, &st.Surface, &st.LocationName, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stadium: %w", err)
		}
		st.ID = uuidOrEmpty(idUUID)
		stadiums = append(stadiums, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stadiums: %w", err)
	}
	return stadiums, nil
}
