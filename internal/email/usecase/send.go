package usecase

import (
	"context"
	"fmt"
	"strings"

	emailDomain "skyscore-srv/internal/email"
	"skyscore-srv/internal/model"
	pkgEmail "skyscore-srv/pkg/email"
	"skyscore-srv/pkg/minio"
)

// SendScoreReport renders the score report for one event and delivers it.
func (uc *implUseCase) SendScoreReport(ctx context.Context, event model.ScoreComputedEvent) error {
	report := uc.buildReport(ctx, event)

	mail, err := pkgEmail.NewEmail(pkgEmail.EmailMeta{
		Recipient:    event.Email,
		TemplateType: pkgEmail.ScoreReportTemplate,
	}, report)
	if err != nil {
		uc.l.Errorf(ctx, "email.usecase.SendScoreReport: render report for %s: %v", event.Handle, err)
		return emailDomain.ErrRenderFailed
	}

	if err := uc.sender.Send(ctx, mail); err != nil {
		uc.l.Errorf(ctx, "email.usecase.SendScoreReport: send to %s: %v", event.Email, err)
		return emailDomain.ErrSendFailed
	}

	uc.l.Infof(ctx, "email.usecase.SendScoreReport: sent score %d report to %s", event.Score, event.Email)
	return nil
}

func (uc *implUseCase) buildReport(ctx context.Context, event model.ScoreComputedEvent) pkgEmail.ScoreReport {
	badges := make([]pkgEmail.ScoreReportBadge, 0, len(event.Badges))
	for _, b := range event.Badges {
		badges = append(badges, pkgEmail.ScoreReportBadge{
			Emoji:       b.Emoji,
			Name:        b.Name,
			Description: b.Description,
		})
	}

	return pkgEmail.ScoreReport{
		Handle:    "@" + event.Handle,
		Score:     event.Score,
		Archetype: event.Archetype,
		Article:   articleFor(event.Archetype),
		Badges:    badges,
		Metrics: pkgEmail.ScoreReportMetrics{
			TotalPosts:      event.Metrics.Activity.TotalPosts,
			AvgPostsPerDay:  event.Metrics.Activity.AvgPostsPerDay,
			AvgLikesPerPost: event.Metrics.Engagement.AvgLikesPerPost,
			WeekendActivity: event.Metrics.Patterns.WeekendPercentage,
		},
		CardURL:         uc.presignCardURL(ctx, event.CardObjectKey),
		HasBadges:       len(badges) > 0,
		BadgeCountLabel: badgeCountLabel(len(badges)),
	}
}

// presignCardURL is best-effort: the email still goes out without the card
// image when presigning fails.
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
		uc.l.Warnf(ctx, "email.usecase.presignCardURL: presign %s: %v", objectKey, err)
		return ""
	}
	return resp.URL
}

func articleFor(archetype string) string {
	switch {
	case archetype == "":
		return "a"
	case strings.ContainsRune("AEIOU", rune(archetype[0])):
		return "an"
	default:
		return "a"
	}
}

func badgeCountLabel(count int) string {
	if count == 1 {
		return "1 badge"
	}
	return fmt.Sprintf("%d badges", count)
}
