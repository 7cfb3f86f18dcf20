package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"skyscore-srv/internal/model"
	"skyscore-srv/internal/score"
	"skyscore-srv/internal/score/repository"
	"skyscore-srv/internal/scorecard"
	"skyscore-srv/pkg/log"
	"skyscore-srv/pkg/minio"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeRepo struct {
	mu      sync.Mutex
	records map[string]model.ScoreRecord
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]model.ScoreRecord)}
}

func (f *fakeRepo) Create(_ context.Context, opts repository.CreateOptions) (model.ScoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record := model.ScoreRecord{
		ID:            "generated",
		Email:         opts.Email,
		Handle:        opts.Handle,
		Score:         opts.Score,
		Archetype:     opts.Archetype,
		CardObjectKey: opts.CardObjectKey,
		CreatedAt:     testNow,
	}
	f.records[opts.Email+"|"+opts.Handle] = record
	return record, nil
}

func (f *fakeRepo) GetByEmailAndHandle(_ context.Context, email, handle string) (model.ScoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[email+"|"+handle]
	if !ok {
		return model.ScoreRecord{}, repository.ErrRecordNotFound
	}
	return record, nil
}

type fakeBadgeUC struct{}

func (f *fakeBadgeUC) Evaluate(_ context.Context, _ model.RawUserData, _ model.AnalyticsSnapshot) []model.EarnedBadge {
	return nil
}

func (f *fakeBadgeUC) Aggregate(_ context.Context, _ []model.EarnedBadge, _ model.AnalyticsSnapshot) model.SelectionResult {
	return model.SelectionResult{}
}

func (f *fakeBadgeUC) CalculateUserBadges(_ context.Context, _ string) model.SelectionResult {
	return model.SelectionResult{
		SelectedBadges: []model.EarnedBadge{{ID: "newbie", Name: "Newbie", Priority: 8}},
		Metadata:       model.SelectionMetadata{TotalEarned: 1, TotalSelected: 1, Personality: "Explorer"},
	}
}

type fakeRenderer struct {
	err   error
	calls int
}

func (f *fakeRenderer) Render(_ scorecard.CardData) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png-bytes"), nil
}

type fakeStorage struct {
	uploads  int
	presigns int
}

func (f *fakeStorage) UploadFile(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	f.uploads++
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (f *fakeStorage) GetPresignedDownloadURL(_ context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	f.presigns++
	return &minio.PresignedURLResponse{URL: "https://storage.test/" + req.ObjectName}, nil
}

type fakePublisher struct {
	err    error
	events []model.ScoreComputedEvent
}

func (f *fakePublisher) PublishScoreComputed(_ context.Context, event model.ScoreComputedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

type fixture struct {
	repo      *fakeRepo
	renderer  *fakeRenderer
	storage   *fakeStorage
	publisher *fakePublisher
	uc        score.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:      newFakeRepo(),
		renderer:  &fakeRenderer{},
		storage:   &fakeStorage{},
		publisher: &fakePublisher{},
	}
	f.uc = New(f.repo, &fakeBadgeUC{}, f.renderer, f.storage, f.publisher, log.NewNopLogger(), Config{
		Bucket: "skyscore-cards",
		Now:    func() time.Time { return testNow },
	})
	return f
}

func TestProcess(t *testing.T) {
	ctx := context.Background()
	input := score.ProcessInput{Email: "alice@example.com", Handle: "alice.bsky.social"}

	t.Run("fresh request computes and publishes", func(t *testing.T) {
		f := newFixture()
		out, err := f.uc.Process(ctx, input)
		if err != nil {
			t.Fatalf("process: %v", err)
		}

		if out.Cached {
			t.Error("fresh request must not be cached")
		}
		if out.Score < 0 || out.Score > 100 {
			t.Errorf("score out of range: %d", out.Score)
		}
		if out.Archetype != archetypeFor(out.Score) {
			t.Errorf("archetype %s does not match score %d", out.Archetype, out.Score)
		}
		if out.CardURL == "" {
			t.Error("expected a card URL")
		}
		if f.storage.uploads != 1 {
			t.Errorf("expected 1 upload, got %d", f.storage.uploads)
		}
		if len(f.publisher.events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(f.publisher.events))
		}
		event := f.publisher.events[0]
		if event.Event != model.EventScoreComputed || event.Score != out.Score {
			t.Errorf("unexpected event: %+v", event)
		}
		if len(event.Badges) != 1 || event.Badges[0].ID != "newbie" {
			t.Errorf("expected badge payload, got %+v", event.Badges)
		}
	})

	t.Run("repeat request serves cached record", func(t *testing.T) {
		f := newFixture()
		first, err := f.uc.Process(ctx, input)
		if err != nil {
			t.Fatalf("first process: %v", err)
		}
		second, err := f.uc.Process(ctx, input)
		if err != nil {
			t.Fatalf("second process: %v", err)
		}

		if !second.Cached {
			t.Error("expected cached result")
		}
		if second.Score != first.Score || second.Archetype != first.Archetype {
			t.Errorf("cached result diverged: %+v vs %+v", second, first)
		}
		if f.renderer.calls != 1 || f.storage.uploads != 1 || len(f.publisher.events) != 1 {
			t.Error("cached path must not render, upload or publish again")
		}
	})

	t.Run("render failure surfaces as card error", func(t *testing.T) {
		f := newFixture()
		f.renderer.err = errors.New("draw failed")
		if _, err := f.uc.Process(ctx, input); !errors.Is(err, score.ErrCardRenderFailed) {
			t.Errorf("got %v, want ErrCardRenderFailed", err)
		}
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		f := newFixture()
		f.publisher.err = errors.New("broker down")
		out, err := f.uc.Process(ctx, input)
		if err != nil {
			t.Fatalf("process: %v", err)
		}
		if out.Score < 0 || out.Score > 100 {
			t.Errorf("score out of range: %d", out.Score)
		}
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("missing user maps to not found", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.GetUser(ctx, "nobody@example.com", "nobody.test"); !errors.Is(err, score.ErrUserNotFound) {
			t.Errorf("got %v, want ErrUserNotFound", err)
		}
	})

	t.Run("stored user round-trips", func(t *testing.T) {
		f := newFixture()
		input := score.ProcessInput{Email: "bob@example.com", Handle: "bob.bsky.social"}
		out, err := f.uc.Process(ctx, input)
		if err != nil {
			t.Fatalf("process: %v", err)
		}

		record, err := f.uc.GetUser(ctx, input.Email, input.Handle)
		if err != nil {
			t.Fatalf("get user: %v", err)
		}
		if record.Score != out.Score || record.Archetype != out.Archetype {
			t.Errorf("stored record diverged: %+v vs %+v", record, out)
		}
	})
}

func TestComputeScore(t *testing.T) {
	t.Run("deterministic per handle and day", func(t *testing.T) {
		a := computeScore("carol.bsky.social", testNow)
		b := computeScore("carol.bsky.social", testNow.Add(3*time.Hour))
		if a != b {
			t.Errorf("same day diverged: %d vs %d", a, b)
		}
		if a < 0 || a > 100 {
			t.Errorf("score out of range: %d", a)
		}
	})

	t.Run("different handles may differ", func(t *testing.T) {
		seen := make(map[int]bool)
		for _, handle := range []string{"a.test", "b.test", "c.test", "d.test", "e.test", "f.test"} {
			seen[computeScore(handle, testNow)] = true
		}
		if len(seen) < 2 {
			t.Error("expected some spread across handles")
		}
	})
}

func TestArchetypeFor(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, model.ArchetypeInfluencer},
		{80, model.ArchetypeInfluencer},
		{79, model.ArchetypeConnector},
		{60, model.ArchetypeConnector},
		{59, model.ArchetypeExplorer},
		{40, model.ArchetypeExplorer},
		{39, model.ArchetypeRookie},
		{0, model.ArchetypeRookie},
	}
	for _, tc := range cases {
		if got := archetypeFor(tc.score); got != tc.want {
			t.Errorf("archetypeFor(%d): got %s, want %s", tc.score, got, tc.want)
		}
	}
}
