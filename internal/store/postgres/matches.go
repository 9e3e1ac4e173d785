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

type MatchesStore struct {
	pool *pgxpool.Pool
}

func NewMatchesStore(pool *pgxpool.Pool) *MatchesStore {
	return &MatchesStore{pool: pool}
}

const matchColumns = `
	m.id, m.type, m.match_date,
	m.stadium_id, s.location_name,
	m.winner1_id, m.winner2_id, m.loser1_id, m.loser2_id,
	uw1.username, uw2.username, ul1.username, ul2.username,
	m.winner_games, m.loser_games, m.created_at
`

const matchJoins = `
	JOIN stadiums s ON s.id = m.stadium_id
	JOIN players w1 ON w1.id = m.winner1_id
	JOIN users uw1 ON uw1.id = w1.user_id
	LEFT JOIN players w2 ON w2.id = m.winner2_id
	LEFT JOIN users uw2 ON uw2.id = w2.user_id
	JOIN players l1 ON l1.id = m.loser1_id
	JOIN users ul1 ON ul1.id = l1.user_id
	LEFT JOIN players l2 ON l2.id = m.loser2_id
	LEFT JOIN users ul2 ON ul2.id = l2.user_id
`

func scanMatch(row pgx.Row) (domain.Match, error) {
	var (
		m                              domain.Match
		idUUID, stadiumUUID            pgtype.UUID
		w1UUID, w2UUID, l1UUID, l2UUID pgtype.UUID
		w2Name, l2Name                 pgtype.Text
		matchDate                      pgtype.Date
	)
	err := row.Scan(
		&idUUID,
		&m.Type,
		&matchDate,
		&stadiumUUID,
		&m.StadiumName,
		&w1UUID,
		&w2UUID,
		&l1UUID,
		&l2UUID,
		&m.Winner1Name,
		&w2Name,
		&m.Loser1Name,
		&l2Name,
		&m.WinnerGames,
		&m.LoserGames,
		&m.CreatedAt,
	)
	if err != nil {
		return domain.Match{}, err
	}

	m.ID = uuidOrEmpty(idUUID)
	m.StadiumID = uuidOrEmpty(stadiumUUID)
	m.Winner1ID = uuidOrEmpty(w1UUID)
	m.Winner2ID = uuidOrEmpty(w2UUID)
	m.Loser1ID = uuidOrEmpty(l1UUID)
	m.Loser2ID = uuidOrEmpty(l2UUID)
	m.Winner2Name = textOrEmpty(w2Name)
	m.Loser2Name = textOrEmpty(l2Name)
	m.MatchDate = matchDate.Time
	return m, nil
}

// applyDeltas adds the given counter deltas to one player row. The point cache
// is recomputed from the updated game counters inside the same statement, so
// concurrent reports never lose an update.
func applyDeltas(ctx context.Context, tx pgx.Tx, playerID string, d domain.Player) error {
	const q = `
		UPDATE players
		SET match_wins   = match_wins + $2,
		    match_losses = match_losses + $3,
		    game_wins    = game_wins + $4,
		    game_losses  = game_losses + $5,
		    point        = (game_wins + $4) - (game_losses + $5)
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, q, playerID, d.MatchWins, d.MatchLosses, d.GameWins, d.GameLosses)
	if err != nil {
		return fmt.Errorf("update player counters: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return domain.ErrNotFound
	}
	return nil
}

// RecordMatch inserts the match and applies the win/loss deltas to every
// participant in a single transaction.
func (s *MatchesStore) RecordMatch(ctx context.Context, m domain.Match) (domain.Match, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Match{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const insert = `
		INSERT INTO matches (type, match_date, stadium_id, winner1_id, winner2_id, loser1_id, loser2_id, winner_games, loser_games)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	var idUUID pgtype.UUID
	err = tx.QueryRow(ctx, insert,
		string(m.Type),
		m.MatchDate,
		m.StadiumID,
		m.Winner1ID,
		nullIfEmpty(m.Winner2ID),
		m.Loser1ID,
		nullIfEmpty(m.Loser2ID),
		m.WinnerGames,
		m.LoserGames,
	).Scan(&idUUID, &m.CreatedAt)
	if err != nil {
		return domain.Match{}, fmt.Errorf("insert match: %w", err)
	}
	m.ID = uuidOrEmpty(idUUID)

	win := domain.WinDeltas(m.WinnerGames, m.LoserGames)
	loss := domain.LossDeltas(m.WinnerGames, m.LoserGames)

	for _, id := range []string{m.Winner1ID, m.Winner2ID} {
		if id == "" {
			continue
		}
		if err := applyDeltas(ctx, tx, id, win); err != nil {
			return domain.Match{}, err
		}
	}
	for _, id := range []string{m.Loser1ID, m.Loser2ID} {
		if id == "" {
			continue
		}
		if err := applyDeltas(ctx, tx, id, loss); err != nil {
			return domain.Match{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Match{}, fmt.Errorf("commit tx: %w", err)
	}
	return m, nil
}

// DeleteMatch removes the match and reverses its effect on every participant's
// counters, all in one transaction. The row is locked first so a concurrent
// delete of the same match cannot reverse the counters twice.
func (s *MatchesStore) DeleteMatch(ctx context.Context, id string) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const sel = `
		SELECT winner1_id, winner2_id, loser1_id, loser2_id, winner_games, loser_games
		FROM matches
		WHERE id = $1
		FOR UPDATE
	`

	var (
		w1UUID, w2UUID, l1UUID, l2UUID pgtype.UUID
		winnerGames, loserGames        int
	)
	err = tx.QueryRow(ctx, sel, id).Scan(&w1UUID, &w2UUID, &l1UUID, &l2UUID, &winnerGames, &loserGames)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("load match: %w", err)
	}

	unwin := negateDeltas(domain.WinDeltas(winnerGames, loserGames))
	unloss := negateDeltas(domain.LossDeltas(winnerGames, loserGames))

	for _, pid := range []string{uuidOrEmpty(w1UUID), uuidOrEmpty(w2UUID)} {
		if pid == "" {
			continue
		}
		if err := applyDeltas(ctx, tx, pid, unwin); err != nil {
			return err
		}
	}
	for _, pid := range []string{uuidOrEmpty(l1UUID), uuidOrEmpty(l2UUID)} {
		if pid == "" {
			continue
		}
		if err := applyDeltas(ctx, tx, pid, unloss); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func negateDeltas(d domain.Player) domain.Player {
	return domain.Player{
		GameWins:    -d.GameWins,
		GameLosses:  -d.GameLosses,
		MatchWins:   -d.MatchWins,
		MatchLosses: -d.MatchLosses,
	}
}

func (s *MatchesStore) GetMatch(ctx context.Context, id string) (domain.Match, error) {
	q := `
		SELECT ` + matchColumns + `
		FROM matches m
		` + matchJoins + `
		WHERE m.id = $1
	`
	m, err := scanMatch(s.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Match{}, domain.ErrNotFound
		}
		return domain.Match{}, fmt.Errorf("get match: %w", err)
	}
	return m, nil
}

// ListMatches returns the full match history, newest first.
func (s *MatchesStore) ListMatches(ctx context.Context) ([]domain.Match, error) {
	q := `
		SELECT ` + matchColumns + `
		FROM matches m
		` + matchJoins + `
		ORDER BY m.match_date DESC, m.created_at DESC
	`
	return s.queryMatches(ctx, q)
}

// ListMatchesForPlayer returns the matches the player took part in, on either
// side, newest first.
func (s *MatchesStore) ListMatchesForPlayer(ctx context.Context, playerID string) ([]domain.Match, error) {
	q := `
		SELECT ` + matchColumns + `
		FROM matches m
		` + matchJoins + `
		WHERE $1 IN (m.winner1_id, m.winner2_id, m.loser1_id, m.loser2_id)
		ORDER BY m.match_date DESC, m.created_at DESC
	`
	return s.queryMatches(ctx, q, playerID)
}

func (s *MatchesStore) queryMatches(ctx context.Context, q string, args ...any) ([]domain.Match, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}
