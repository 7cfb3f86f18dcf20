package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"skyscore-srv/internal/model"
	"skyscore-srv/internal/score/repository"
)

const createUserQuery = `
	INSERT INTO users (id, email, bluesky_handle, sky_score, archetype, card_object_key)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at`

const getUserQuery = `
	SELECT id, email, bluesky_handle, sky_score, archetype, card_object_key, created_at
	FROM users
	WHERE email = $1 AND bluesky_handle = $2`

// Create inserts a new score record. The (email, bluesky_handle) pair is
// unique; callers check GetByEmailAndHandle first, so a conflict here is a
// genuine failure.
func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.ScoreRecord, error) {
	record := model.ScoreRecord{
		ID:            uuid.NewString(),
		Email:         opts.Email,
		Handle:        opts.Handle,
		Score:         opts.Score,
		Archetype:     opts.Archetype,
		CardObjectKey: opts.CardObjectKey,
	}

	err := r.db.QueryRowContext(ctx, createUserQuery,
		record.ID, record.Email, record.Handle, record.Score, record.Archetype, record.CardObjectKey,
	).Scan(&record.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "score.repository.postgre.Create: Failed to insert score record: %v", err)
		return model.ScoreRecord{}, repository.ErrCreateFailed
	}

	return record, nil
}

// GetByEmailAndHandle fetches the stored score for one (email, handle) pair.
func (r *implRepository) GetByEmailAndHandle(ctx context.Context, email, handle string) (model.ScoreRecord, error) {
	var record model.ScoreRecord
	var cardObjectKey sql.NullString

	err := r.db.QueryRowContext(ctx, getUserQuery, email, handle).Scan(
		&record.ID, &record.Email, &record.Handle, &record.Score,
		&record.Archetype, &cardObjectKey, &record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.ScoreRecord{}, repository.ErrRecordNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "score.repository.postgre.GetByEmailAndHandle: Failed to get score record: %v", err)
		return model.ScoreRecord{}, err
	}

	record.CardObjectKey = cardObjectKey.String
	return record, nil
}
