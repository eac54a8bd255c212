package statement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finwell-app/finwell/internal/statement"
)

type periodResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type statementResponse struct {
	ID             uuid.UUID                  `json:"id"`
	AccountHolder  string                     `json:"account_holder"`
	AccountNumber  string                     `json:"account_number"`
	Period         periodResponse             `json:"statement_period"`
	OpeningBalance decimal.Decimal            `json:"opening_balance"`
	ClosingBalance decimal.Decimal            `json:"closing_balance"`
	BankCharges    map[string]decimal.Decimal `json:"bank_charges"`
	Transactions   []statement.Transaction    `json:"transactions"`
	Filename       string                     `json:"filename"`
	UploadedAt     time.Time                  `json:"uploaded_at"`
}

func toResponse(st *statement.Statement) statementResponse {
	return statementResponse{
		ID:             st.ID,
		AccountHolder:  st.AccountHolder,
		AccountNumber:  st.AccountNumber,
		Period:         periodResponse{From: st.Period.From, To: st.Period.To},
		OpeningBalance: st.OpeningBalance,
		ClosingBalance: st.ClosingBalance,
		BankCharges:    st.Charges,
		Transactions:   st.Transactions,
		Filename:       st.Filename,
		UploadedAt:     st.UploadedAt,
	}
}

func toResponseList(sts []*statement.Statement) []statementResponse {
	resp := make([]statementResponse, len(sts))
	for i, st := range sts {
		resp[i] = toResponse(st)
	}

	return resp
}
