package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/finwell-app/finwell/internal/analytics"
	"github.com/finwell-app/finwell/internal/statement"
)

type categoryResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type monthlyResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type summaryResponse struct {
	Categories     []categoryResponse      `json:"categories"`
	Monthly        []monthlyResponse       `json:"monthly"`
	Recurring      []statement.Transaction `json:"recurring"`
	Flagged        []statement.Transaction `json:"flagged"`
	ChargesTotal   decimal.Decimal         `json:"charges_total"`
	LatestClosing  decimal.Decimal         `json:"latest_closing_balance"`
	StatementCount int                     `json:"statement_count"`
}

func toResponse(s analytics.Summary) summaryResponse {
	categories := make([]categoryResponse, len(s.Categories))
	for i, c := range s.Categories {
		categories[i] = categoryResponse{Category: c.Category, Total: c.Total}
	}

	monthly := make([]monthlyResponse, len(s.Monthly))
	for i, m := range s.Monthly {
		monthly[i] = monthlyResponse{Month: m.Month, Total: m.Total}
	}

	recurring := s.Recurring
	if recurring == nil {
		recurring = []statement.Transaction{}
	}

	flagged := s.Flagged
	if flagged == nil {
		flagged = []statement.Transaction{}
	}

	return summaryResponse{
		Categories:     categories,
		Monthly:        monthly,
		Recurring:      recurring,
		Flagged:        flagged,
		ChargesTotal:   s.ChargesTotal,
		LatestClosing:  s.LatestClosing,
		StatementCount: s.StatementCount,
	}
}
