package model

import "time"

const (
	TableName  = "journal"
	EntityName = "journal"

	FieldID        = "id"
	FieldQuestion  = "question"
	FieldAnswer    = "answer"
	FieldAuthor    = "author"
	FieldTimestamp = "timestamp"

	AuthorMaxLength = 10
)

// Entry is one partner's answer to a journal question.
type Entry struct {
	ID        int64     `db:"id"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	Author    string    `db:"author"`
	Timestamp time.Time `db:"timestamp"`
}
