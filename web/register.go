package web

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/checkbook-app/checkbook/ledger"
)

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
// If encoding fails, it writes an error response.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RegisterRow is one register line: the transaction plus its running
// balance. Voided rows carry the balance unchanged from the prior row.
type RegisterRow struct {
	*ledger.Transaction
	Balance decimal.Decimal `json:"balance"`
}

// RegisterResponse is the JSON response structure for the register endpoint.
type RegisterResponse struct {
	Transactions []*RegisterRow  `json:"transactions"`
	Starting     decimal.Decimal `json:"startingBalance"`
	Currency     string          `json:"currency,omitempty"`
}

// handleGetRegister handles GET requests to /api/register.
//
// Query parameters:
//   - sort: Column to sort on (date, payee, payment, deposit, ...).
//     If omitted, rows come newest first.
//   - desc: Sort descending when "true".
func (s *Server) handleGetRegister(w http.ResponseWriter, r *http.Request) {
	txs, err := s.st.Transactions()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	starting, err := s.st.StartingBalance()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var sortState *ledger.SortState
	if column := r.URL.Query().Get("sort"); column != "" {
		sortState = &ledger.SortState{
			Column: column,
			Desc:   r.URL.Query().Get("desc") == "true",
		}
	}

	balances := ledger.RunningBalances(txs, starting)
	ordered := ledger.SortForDisplay(txs, sortState)

	rows := make([]*RegisterRow, len(ordered))
	for i, tx := range ordered {
		rows[i] = &RegisterRow{Transaction: tx, Balance: balances[tx.ID]}
	}

	writeJSONResponse(w, &RegisterResponse{
		Transactions: rows,
		Starting:     starting,
		Currency:     s.Currency,
	})
}

// SummaryResponse is the JSON response structure for the summary endpoint.
type SummaryResponse struct {
	Starting      decimal.Decimal `json:"startingBalance"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	TotalDeposits decimal.Decimal `json:"totalDeposits"`
	Net           decimal.Decimal `json:"net"`
	Ending        decimal.Decimal `json:"endingBalance"`
	Currency      string          `json:"currency,omitempty"`
}

// handleGetSummary handles GET requests to /api/summary.
func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	txs, err := s.st.Transactions()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	starting, err := s.st.StartingBalance()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary := ledger.Summarize(txs, starting)

	writeJSONResponse(w, &SummaryResponse{
		Starting:      starting,
		TotalPayments: summary.TotalPayments,
		TotalDeposits: summary.TotalDeposits,
		Net:           summary.Net,
		Ending:        summary.Ending,
		Currency:      s.Currency,
	})
}
