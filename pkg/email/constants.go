package email

import "embed"

//go:embed templates/*
var emailTemplates embed.FS

const (
	ScoreReportTemplate = "score_report"
)
