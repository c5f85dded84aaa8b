package dto

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"ourstory/internal/domains/journal/model"
	"ourstory/shared/constant"
	"ourstory/shared/timezone"
)

type AddEntryRequest struct {
	Question string `json:"question" validate:"required,notblank"`
	Answer   string `json:"answer" validate:"required,notblank"`
	Author   string `json:"author" validate:"required,notblank,max=10"`
}

func (a *AddEntryRequest) Normalize() {
	a.Question = strings.TrimSpace(a.Question)
	a.Answer = strings.TrimSpace(a.Answer)
	a.Author = strings.TrimSpace(a.Author)
}

func (a *AddEntryRequest) ToModel(now time.Time) model.Entry {
	return model.Entry{
		Question:  strings.TrimSpace(a.Question),
		Answer:    strings.TrimSpace(a.Answer),
		Author:    strings.TrimSpace(a.Author),
		Timestamp: now,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(constant.DateFormat)
}

type EntryResponse struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
}

func (r *EntryResponse) FromModel(entry model.Entry) {
	r.ID = entry.ID
	r.Question = entry.Question
	r.Answer = entry.Answer
	r.Author = entry.Author
	r.Timestamp = formatTime(entry.Timestamp)
}

func FromModels(entries []model.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		res[i].FromModel(entry)
	}

	return res
}

type HistoryEntry struct {
	ID        int64  `json:"id"`
	Answer    string `json:"answer"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`

	at time.Time
}

// HistoryGroup holds every answer given to one question on one day.
type HistoryGroup struct {
	Date     string         `json:"date"`
	Question string         `json:"question"`
	Entries  []HistoryEntry `json:"entries"`
}

// BuildHistory groups entries by (day in the application timezone, question). Groups are sorted
// by date descending then question ascending, answers inside a group by timestamp ascending.
func BuildHistory(entries []model.Entry) []HistoryGroup {
	type key struct {
		date     string
		question string
	}

	index := map[key]int{}
	groups := []HistoryGroup{}

	for _, entry := range entries {
		k := key{date: timezone.Day(entry.Timestamp), question: entry.Question}

		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, HistoryGroup{Date: k.date, Question: k.question, Entries: []HistoryEntry{}})
		}

		groups[pos].Entries = append(groups[pos].Entries, HistoryEntry{
			ID:        entry.ID,
			Answer:    entry.Answer,
			Author:    entry.Author,
			Timestamp: formatTime(entry.Timestamp),
			at:        entry.Timestamp,
		})
	}

	for i := range groups {
		slices.SortStableFunc(groups[i].Entries, func(a, b HistoryEntry) int {
			return cmp.Or(a.at.Compare(b.at), cmp.Compare(a.ID, b.ID))
		})
	}

	slices.SortFunc(groups, func(a, b HistoryGroup) int {
		return cmp.Or(cmp.Compare(b.Date, a.Date), strings.Compare(a.Question, b.Question))
	})

	return groups
}

// SnapshotEntry is an entry as pushed by a client during a full sync.
type SnapshotEntry struct {
	ID        *int64     `json:"id" validate:"omitempty,gt=0"`
	Question  string     `json:"question" validate:"required,notblank"`
	Answer    string     `json:"answer" validate:"required,notblank"`
	Author    string     `json:"author" validate:"required,notblank,max=10"`
	Timestamp *time.Time `json:"timestamp"`
}

// Normalize trims the author; question and answer are stored as sent.
func (s *SnapshotEntry) Normalize() {
	s.Author = strings.TrimSpace(s.Author)
}

// SplitSnapshot separates entries that keep their client id from entries that need a generated
// one. A missing timestamp becomes now.
func SplitSnapshot(entries []SnapshotEntry, now time.Time) (withID, withoutID []model.Entry) {
	withID = []model.Entry{}
	withoutID = []model.Entry{}

	for _, snap := range entries {
		entry := model.Entry{
			Question:  snap.Question,
			Answer:    snap.Answer,
			Author:    strings.TrimSpace(snap.Author),
			Timestamp: now,
		}

		if snap.Timestamp != nil {
			entry.Timestamp = timezone.ToAppTime(*snap.Timestamp)
		}

		if snap.ID == nil {
			withoutID = append(withoutID, entry)

			continue
		}

		entry.ID = *snap.ID
		withID = append(withID, entry)
	}

	return withID, withoutID
}
