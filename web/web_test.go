package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/checkbook-app/checkbook/ledger"
	"github.com/checkbook-app/checkbook/store"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()

	kv, err := store.OpenFile(t.TempDir())
	assert.NoError(t, err)
	st := store.New(kv)
	t.Cleanup(func() { _ = st.Close() })

	server := New(8080, st, "", nil)
	server.Currency = "USD"
	return server, st
}

func seedTransactions(t *testing.T, st *store.Store) {
	t.Helper()

	err := st.SaveTransactions([]*ledger.Transaction{
		{
			ID:      2,
			Date:    "2024-01-05",
			Payee:   "Grocery Store",
			Payment: decimal.NewFromInt(40),
		},
		{
			ID:      1,
			Date:    "2024-01-02",
			Payee:   "Employer",
			Deposit: decimal.NewFromInt(100),
		},
	})
	assert.NoError(t, err)
	assert.NoError(t, st.SaveStartingBalance(decimal.NewFromInt(500)))
}

func TestAPIRegister(t *testing.T) {
	server, st := newTestServer(t)
	seedTransactions(t, st)
	mux := server.Router()

	t.Run("DefaultOrderNewestFirst", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/register", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var response RegisterResponse
		err := json.NewDecoder(rec.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(response.Transactions))
		assert.Equal(t, "Grocery Store", response.Transactions[0].Payee)
		assert.Equal(t, "Employer", response.Transactions[1].Payee)
		assert.Equal(t, "USD", response.Currency)
	})

	t.Run("RunningBalancesFollowDates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/register", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		var response RegisterResponse
		err := json.NewDecoder(rec.Body).Decode(&response)
		assert.NoError(t, err)

		// 500 + 100 deposit, then - 40 payment.
		assert.True(t, response.Transactions[0].Balance.Equal(decimal.NewFromInt(560)))
		assert.True(t, response.Transactions[1].Balance.Equal(decimal.NewFromInt(600)))
		assert.True(t, response.Starting.Equal(decimal.NewFromInt(500)))
	})

	t.Run("SortByPayee", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/register?sort=payee", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		var response RegisterResponse
		err := json.NewDecoder(rec.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, "Employer", response.Transactions[0].Payee)

		req = httptest.NewRequest(http.MethodGet, "/api/register?sort=payee&desc=true", nil)
		rec = httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		err = json.NewDecoder(rec.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, "Grocery Store", response.Transactions[0].Payee)
	})

	t.Run("EmptyStore", func(t *testing.T) {
		emptyServer, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/register", nil)
		rec := httptest.NewRecorder()

		emptyServer.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response RegisterResponse
		err := json.NewDecoder(rec.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(response.Transactions))
	})
}

func TestAPISummary(t *testing.T) {
	server, st := newTestServer(t)
	seedTransactions(t, st)

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response SummaryResponse
	err := json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(t, err)
	assert.True(t, response.TotalPayments.Equal(decimal.NewFromInt(40)))
	assert.True(t, response.TotalDeposits.Equal(decimal.NewFromInt(100)))
	assert.True(t, response.Net.Equal(decimal.NewFromInt(60)))
	assert.True(t, response.Ending.Equal(decimal.NewFromInt(560)))
}

func TestAPIAccounts(t *testing.T) {
	server, st := newTestServer(t)

	accounts, err := st.Accounts()
	assert.NoError(t, err)
	accounts.Add("Vacation Fund")
	assert.NoError(t, st.SaveAccounts(accounts))

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response AccountsResponse
	err = json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(t, err)
	assert.True(t, len(response.Accounts) > 1)
	assert.Equal(t, "Vacation Fund", response.Accounts[len(response.Accounts)-1])
}

func TestVoidedRowKeepsPriorBalance(t *testing.T) {
	server, st := newTestServer(t)

	err := st.SaveTransactions([]*ledger.Transaction{
		{
			ID:      2,
			Date:    "2024-02-01",
			Payee:   "Voided Vendor",
			Payment: decimal.NewFromInt(25),
			Voided:  true,
		},
		{
			ID:      1,
			Date:    "2024-01-15",
			Payee:   "Employer",
			Deposit: decimal.NewFromInt(100),
		},
	})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/register", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	var response RegisterResponse
	err = json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(t, err)

	// The voided row contributes nothing; its balance equals the prior row's.
	assert.True(t, response.Transactions[0].Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, response.Transactions[1].Balance.Equal(decimal.NewFromInt(100)))
}

func TestViewerPageServed(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Checkbook")
}
