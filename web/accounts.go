package web

import "net/http"

// AccountsResponse is the JSON response structure for the accounts endpoint.
type AccountsResponse struct {
	Accounts []string `json:"accounts"`
}

// handleGetAccounts handles GET requests to /api/accounts.
// Returns the stored account names in their configured order.
func (s *Server) handleGetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.st.Accounts()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, &AccountsResponse{Accounts: accounts.Names()})
}
