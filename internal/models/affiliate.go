package models

// Affiliate is the directory entry backing exports and existence checks.
// Account management itself lives outside this engine.
type Affiliate struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}
