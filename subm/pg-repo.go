package subm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgSubmRepo struct {
	pool *pgxpool.Pool
}

func NewPgSubmRepo(pool *pgxpool.Pool) SubmRepo {
	return &pgSubmRepo{pool: pool}
}

func (r *pgSubmRepo) ResetForEnqueue(ctx context.Context, teamUuid uuid.UUID) (int64, error) {
	resetQuery := `
		INSERT INTO submits (
			team_uuid, status, submit_time, score, can_have_error, seq
		) VALUES ($1, $2, now(), 0, false, 1)
		ON CONFLICT (team_uuid) DO UPDATE
		SET status = $2, submit_time = now(), score = 0,
			can_have_error = false, seq = submits.seq + 1
		RETURNING seq
	`
	var seq int64
	err := r.pool.QueryRow(ctx, resetQuery, teamUuid, StatusInQueue).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to reset submission: %w", err)
	}
	return seq, nil
}

func (r *pgSubmRepo) SetPending(ctx context.Context, teamUuid uuid.UUID, seq int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE submits SET status = $3
		WHERE team_uuid = $1 AND seq = $2
	`, teamUuid, seq, StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to set submission pending: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *pgSubmRepo) SetFinished(ctx context.Context, teamUuid uuid.UUID, seq int64, score float64, canHaveError bool) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE submits SET status = $3, submit_time = now(),
			score = $4, can_have_error = $5
		WHERE team_uuid = $1 AND seq = $2
	`, teamUuid, seq, StatusFinished, score, canHaveError)
	if err != nil {
		return false, fmt.Errorf("failed to set submission finished: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *pgSubmRepo) SetError(ctx context.Context, teamUuid uuid.UUID, seq int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE submits SET status = $3, submit_time = now(),
			can_have_error = true
		WHERE team_uuid = $1 AND seq = $2
	`, teamUuid, seq, StatusError)
	if err != nil {
		return false, fmt.Errorf("failed to set submission error: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *pgSubmRepo) Get(ctx context.Context, teamUuid uuid.UUID) (*Submission, error) {
	var subm Submission
	err := r.pool.QueryRow(ctx, `
		SELECT team_uuid, status, submit_time, score, can_have_error, seq
		FROM submits WHERE team_uuid = $1
	`, teamUuid).Scan(
		&subm.TeamUUID,
		&subm.Status,
		&subm.SubmitTime,
		&subm.Score,
		&subm.CanHaveError,
		&subm.Seq,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return &subm, nil
}

func (r *pgSubmRepo) List(ctx context.Context) ([]Submission, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT team_uuid, status, submit_time, score, can_have_error, seq
		FROM submits
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subms []Submission
	for rows.Next() {
		var subm Submission
		err := rows.Scan(
			&subm.TeamUUID,
			&subm.Status,
			&subm.SubmitTime,
			&subm.Score,
			&subm.CanHaveError,
			&subm.Seq,
		)
		if err != nil {
			return nil, err
		}
		subms = append(subms, subm)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subms, nil
}
