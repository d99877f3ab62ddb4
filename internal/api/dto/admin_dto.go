package dto

// LoginRequest payload for administrator login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminResponse is the sanitized administrator record returned on login.
// It never carries the password hash.
type AdminResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Role     string  `json:"role"`
}

// StatsResponse is the per-status lead breakdown.
type StatsResponse struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Contacted int64 `json:"contacted"`
	Qualified int64 `json:"qualified"`
	Old       int64 `json:"old"`
}
