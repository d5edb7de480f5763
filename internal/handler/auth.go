package handler

import "net/http"

// verifyPasswordRequest is the body of POST /api/verifyPassword.
type verifyPasswordRequest struct {
	Password string `json:"password"`
}

// verifyPasswordResponse reports the boolean match. No token or session is
// issued — the frontend gates itself on this flag alone.
type verifyPasswordResponse struct {
	Success bool `json:"success"`
}

// VerifyPassword handles POST /api/verifyPassword.
// A wrong password is a 200 with success=false, not an error status.
func (s *Server) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	var req verifyPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, verifyPasswordResponse{Success: s.password.Verify(req.Password)})
}
