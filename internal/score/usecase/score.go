package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"skyscore-srv/internal/model"
	"skyscore-srv/internal/score"
	"skyscore-srv/internal/score/repository"
	"skyscore-srv/internal/scorecard"
	"skyscore-srv/pkg/minio"
	"skyscore-srv/pkg/util"
)

// Process computes a score for one (email, handle) pair. A pair that was
// scored before short-circuits to the stored record. A fresh computation
// renders and stores the score card, persists the record and publishes the
// score.computed event for the email pipeline.
func (uc *implUseCase) Process(ctx context.Context, input score.ProcessInput) (score.ProcessOutput, error) {
	existing, err := uc.repo.GetByEmailAndHandle(ctx, input.Email, input.Handle)
	if err == nil {
		uc.l.Infof(ctx, "score.usecase.Process: %s already scored %d (%s), serving cached",
			input.Handle, existing.Score, existing.Archetype)
		return score.ProcessOutput{
			Score:     existing.Score,
			Archetype: existing.Archetype,
			Cached:    true,
			CardURL:   uc.presignCardURL(ctx, existing.CardObjectKey),
		}, nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		uc.l.Errorf(ctx, "score.usecase.Process: lookup %s/%s: %v", input.Email, input.Handle, err)
		return score.ProcessOutput{}, err
	}

	value := computeScore(input.Handle, uc.cfg.Now())
	archetype := archetypeFor(value)
	uc.l.Infof(ctx, "score.usecase.Process: %s scored %d (%s)", input.Handle, value, archetype)

	// Badge calculation degrades to an empty selection on failure, so the
	// score itself never depends on the data pipeline being healthy.
	badges := uc.badgeUC.CalculateUserBadges(ctx, input.Handle)

	objectKey, err := uc.storeCard(ctx, input.Handle, value, archetype)
	if err != nil {
		return score.ProcessOutput{}, err
	}

	record, err := uc.repo.Create(ctx, repository.CreateOptions{
		Email:         input.Email,
		Handle:        input.Handle,
		Score:         value,
		Archetype:     archetype,
		CardObjectKey: objectKey,
	})
	if err != nil {
		uc.l.Errorf(ctx, "score.usecase.Process: save %s/%s: %v", input.Email, input.Handle, err)
		return score.ProcessOutput{}, score.ErrScoreSaveFailed
	}

	event := model.ScoreComputedEvent{
		ID:            uuid.NewString(),
		Event:         model.EventScoreComputed,
		Email:         record.Email,
		Handle:        record.Handle,
		Score:         record.Score,
		Archetype:     record.Archetype,
		CardObjectKey: record.CardObjectKey,
		Badges:        badges.SelectedBadges,
		Metrics:       badges.Analytics,
		ComputedAt:    uc.cfg.Now(),
	}
	// The user already has their score at this point; a publish failure only
	// delays the email, so it is logged and swallowed.
	if err := uc.publisher.PublishScoreComputed(ctx, event); err != nil {
		uc.l.Errorf(ctx, "score.usecase.Process: publish score.computed for %s: %v", record.Handle, err)
	}

	return score.ProcessOutput{
		Score:     record.Score,
		Archetype: record.Archetype,
		CardURL:   uc.presignCardURL(ctx, objectKey),
		Badges:    badges,
	}, nil
}

// GetUser returns the stored score for one (email, handle) pair.
func (uc *implUseCase) GetUser(ctx context.Context, email, handle string) (model.ScoreRecord, error) {
	record, err := uc.repo.GetByEmailAndHandle(ctx, email, handle)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return model.ScoreRecord{}, score.ErrUserNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "score.usecase.GetUser: %s/%s: %v", email, handle, err)
		return model.ScoreRecord{}, err
	}
	return record, nil
}

// storeCard renders the score card and uploads it, returning the object key.
func (uc *implUseCase) storeCard(ctx context.Context, handle string, value int, archetype string) (string, error) {
	card, err := uc.renderer.Render(scorecard.CardData{
		Handle:    "@" + handle,
		Score:     value,
		Archetype: archetype,
	})
	if err != nil {
		uc.l.Errorf(ctx, "score.usecase.storeCard: render card for %s: %v", handle, err)
		return "", score.ErrCardRenderFailed
	}

	objectKey := fmt.Sprintf("cards/skyscore-%s.png", uuid.NewString())
	_, err = uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.cfg.Bucket,
		ObjectName:   objectKey,
		OriginalName: fmt.Sprintf("skyscore-%s.png", handle),
		Reader:       bytes.NewReader(card),
		Size:         int64(len(card)),
		ContentType:  "image/png",
		Metadata:     map[string]string{"handle": handle},
	})
	if err != nil {
		uc.l.Errorf(ctx, "score.usecase.storeCard: upload card for %s: %v", handle, err)
		return "", score.ErrCardUploadFailed
	}

	return objectKey, nil
}

// presignCardURL is best-effort: a missing key or presign failure yields an
// empty URL, never an error.
func (uc *implUseCase) presignCardURL(ctx context.Context, objectKey string) string {
	if objectKey == "" {
		return ""
	}
	resp, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.cfg.Bucket,
		ObjectName: objectKey,
		Expiry:     uc.cfg.CardURLExpiry,
	})
	if err != nil {
		uc.l.Warnf(ctx, "score.usecase.presignCardURL: presign %s: %v", objectKey, err)
		return ""
	}
	return resp.URL
}

// computeScore is the placeholder scoring model: base 50 with a variation in
// [-20, 20], clamped to [0, 100]. The variation is seeded per handle and day
// so repeated requests within a day agree.
func computeScore(handle string, now time.Time) int {
	h := fnv.New64a()
	h.Write([]byte(handle))
	h.Write([]byte(now.Format("2006-01-02")))

	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	variation := rng.Intn(scoreVariationSpan) - 20
	return util.ClampInt(baseScore+variation, 0, 100)
}

func archetypeFor(value int) string {
	switch {
	case value >= 80:
		return model.ArchetypeInfluencer
	case value >= 60:
		return model.ArchetypeConnector
	case value >= 40:
		return model.ArchetypeExplorer
	default:
		return model.ArchetypeRookie
	}
}
