package models

// Identity is the caller identity decoded from the session token. Core
// operations receive it explicitly; it is never read from ambient state.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
