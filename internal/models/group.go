package models

type GroupSettings struct {
	ChatID          int64  `db:"chat_id"`
	Title           string `db:"title"`
	Active          bool   `db:"active"`
	IntervalSeconds int    `db:"interval_seconds"`
}
