package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	emailDomain "skyscore-srv/internal/email"
	"skyscore-srv/internal/model"
	pkgEmail "skyscore-srv/pkg/email"
	"skyscore-srv/pkg/log"
	"skyscore-srv/pkg/minio"
)

type fakeSender struct {
	err  error
	sent []pkgEmail.Email
}

func (f *fakeSender) Send(_ context.Context, mail pkgEmail.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, mail)
	return nil
}

type fakeDownloader struct {
	err error
}

func (f *fakeDownloader) GetPresignedDownloadURL(_ context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &minio.PresignedURLResponse{URL: "https://storage.test/" + req.ObjectName}, nil
}

func testEvent() model.ScoreComputedEvent {
	return model.ScoreComputedEvent{
		ID:            "evt-1",
		Event:         model.EventScoreComputed,
		Email:         "alice@example.com",
		Handle:        "alice.bsky.social",
		Score:         84,
		Archetype:     model.ArchetypeInfluencer,
		CardObjectKey: "cards/skyscore-1.png",
		Badges: []model.EarnedBadge{
			{ID: "sky_addict", Name: "Sky Addict", Emoji: "🔥", Description: "Posts constantly"},
		},
	}
}

func TestSendScoreReport(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and sends the report", func(t *testing.T) {
		sender := &fakeSender{}
		uc := New(sender, &fakeDownloader{}, log.NewNopLogger(), Config{Bucket: "skyscore-cards"})

		if err := uc.SendScoreReport(ctx, testEvent()); err != nil {
			t.Fatalf("send: %v", err)
		}
		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}

		mail := sender.sent[0]
		if mail.Recipient != "alice@example.com" {
			t.Errorf("recipient: got %s", mail.Recipient)
		}
		// Influencer takes "an" in the subject line.
		if !strings.Contains(mail.Subject, "84") || !strings.Contains(mail.Subject, "an Influencer") {
			t.Errorf("subject: got %q", mail.Subject)
		}
		if !strings.Contains(mail.Body, "@alice.bsky.social") || !strings.Contains(mail.Body, "Sky Addict") {
			t.Error("body missing handle or badge")
		}
		if !strings.Contains(mail.Body, "https://storage.test/cards/skyscore-1.png") {
			t.Error("body missing card URL")
		}
	})

	t.Run("presign failure still sends", func(t *testing.T) {
		sender := &fakeSender{}
		uc := New(sender, &fakeDownloader{err: errors.New("storage down")}, log.NewNopLogger(), Config{Bucket: "skyscore-cards"})

		if err := uc.SendScoreReport(ctx, testEvent()); err != nil {
			t.Fatalf("send: %v", err)
		}
		if len(sender.sent) != 1 {
			t.Fatal("expected email despite presign failure")
		}
	})

	t.Run("send failure maps to domain error", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("smtp refused")}
		uc := New(sender, &fakeDownloader{}, log.NewNopLogger(), Config{Bucket: "skyscore-cards"})

		if err := uc.SendScoreReport(ctx, testEvent()); !errors.Is(err, emailDomain.ErrSendFailed) {
			t.Errorf("got %v, want ErrSendFailed", err)
		}
	})
}

func TestArticleFor(t *testing.T) {
	cases := map[string]string{
		model.ArchetypeInfluencer: "an",
		model.ArchetypeExplorer:   "an",
		model.ArchetypeConnector:  "a",
		model.ArchetypeRookie:     "a",
		"":                        "a",
	}
	for archetype, want := range cases {
		if got := articleFor(archetype); got != want {
			t.Errorf("articleFor(%q): got %s, want %s", archetype, got, want)
		}
	}
}
