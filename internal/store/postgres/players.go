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

type PlayersStore struct {
	pool *pgxpool.Pool
}

func NewPlayersStore(pool *pgxpool.Pool) *PlayersStore {
	return &PlayersStore{pool: pool}
}

const playerColumns = `
	p.id, p.user_id, u.username,
	p.game_wins, p.game_losses, p.match_wins, p.match_losses, p.point
`

func scanPlayer(row pgx.Row) (domain.Player, error) {
	var (
		p        domain.Player
		idUUID   pgtype.UUID
		userUUID pgtype.UUID
	)
	err := row.Scan(
		&idUUID,
		&userUUID,
		&p.Username,
		&p.GameWins,
		&p.GameLosses,
		&p.MatchWins,
		&p.MatchLosses,
		&p.Point,
	)
	if err != nil {
		return domain.Player{}, err
	}
	p.ID = uuidOrEmpty(idUUID)
	p.UserID = uuidOrEmpty(userUUID)
	return p, nil
}

func (s *PlayersStore) GetPlayer(ctx context.Context, id string) (domain.Player, error) {
	q := `
		SELECT ` + playerColumns + `
		FROM players p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`
	p, err := scanPlayer(s.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Player{}, domain.ErrNotFound
		}
		return domain.Player{}, fmt.Errorf("get player: %w", err)
	}
	return p, nil
}

func (s *PlayersStore) GetPlayerByUserID(ctx context.Context, userID string) (domain.Player, error) {
	q := `
		SELECT ` + playerColumns + `
		FROM players p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`
	p, err := scanPlayer(s.pool.QueryRow(ctx, q, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Player{}, domain.ErrNotFound
		}
		return domain.Player{}, fmt.Errorf("get player by user: %w", err)
	}
	return p, nil
}

// ListPlayersByPoint returns all players ordered for the standings table,
// highest point first. Username breaks ties so the order is stable.
func (s *PlayersStore) ListPlayersByPoint(ctx context.Context) ([]domain.Player, error) {
	q := `
		SELECT ` + playerColumns + `
		FROM players p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.point DESC, u.username ASC
	`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}
