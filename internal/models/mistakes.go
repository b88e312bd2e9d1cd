package models

// MistakeBucket is one (category, subject) group of a user's mistake ledger.
type MistakeBucket struct {
	Category string `db:"category"`
	Subject  string `db:"subject"`
	Count    int    `db:"count"`
}
