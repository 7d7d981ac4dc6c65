package http

import (
	"net/http"

	"github.com/vitaran/vitaran/pkg/httpx"
	"github.com/vitaran/vitaran/pkg/vitaransdk"
)

// User-facing failure messages.
const (
	msgInvalidBody      = "Invalid request body"
	msgAllFields        = "All fields required"
	msgMissingFields    = "Missing fields"
	msgInvalidEmail     = "Invalid email format"
	msgInvalidPhone     = "Phone must be exactly 10 digits"
	msgPasswordTooShort = "Password minimum 6 characters"
	msgPasswordTooLong  = "Password maximum 72 bytes"
	msgUserExists       = "User already exists"
	msgBadCredentials   = "Invalid email or password"
	msgUserNotFound     = "User not found"
	msgLoginRequired    = "Login required"
	msgInvalidPlan      = "Invalid plan"
	msgNoPlan           = "No plan selected"
	msgInvalidAmount    = "Invalid amount"
)

// fail answers a handled failure. Those are 200s; the envelope carries the
// outcome.
func fail(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusOK, vitaransdk.StatusResponse{Success: false, Message: message})
}

func internalError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusInternalServerError, vitaransdk.StatusResponse{Success: false})
}

func ok(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusOK, vitaransdk.StatusResponse{Success: true})
}
