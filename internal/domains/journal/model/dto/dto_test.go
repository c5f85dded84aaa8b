package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"ourstory/internal/domains/journal/model"
	"ourstory/internal/domains/journal/model/dto"
	"ourstory/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHistory(t *testing.T) {
	timezone.Configure("UTC")

	day1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	entries := []model.Entry{
		{ID: 1, Question: "A", Answer: "x1", Author: "X", Timestamp: day1.Add(time.Hour)},
		{ID: 2, Question: "A", Answer: "y1", Author: "Y", Timestamp: day1},
		{ID: 3, Question: "B", Answer: "x2", Author: "X", Timestamp: day1},
		{ID: 4, Question: "A", Answer: "x3", Author: "X", Timestamp: day2},
	}

	groups := dto.BuildHistory(entries)

	require.Len(t, groups, 3)

	assert.Equal(t, "2024-05-02", groups[0].Date)
	assert.Equal(t, "A", groups[0].Question)

	assert.Equal(t, "2024-05-01", groups[1].Date)
	assert.Equal(t, "A", groups[1].Question)
	require.Len(t, groups[1].Entries, 2)
	assert.Equal(t, "Y", groups[1].Entries[0].Author)
	assert.Equal(t, "X", groups[1].Entries[1].Author)

	assert.Equal(t, "2024-05-01", groups[2].Date)
	assert.Equal(t, "B", groups[2].Question)
}

func TestBuildHistory_QuestionOrderIsBytewise(t *testing.T) {
	timezone.Configure("UTC")

	day := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	groups := dto.BuildHistory([]model.Entry{
		{ID: 1, Question: "banana", Timestamp: day},
		{ID: 2, Question: "Zebra", Timestamp: day},
		{ID: 3, Question: "apple", Timestamp: day},
	})

	questions := []string{groups[0].Question, groups[1].Question, groups[2].Question}
	assert.Equal(t, []string{"Zebra", "apple", "banana"}, questions)
}

func TestBuildHistory_UsesApplicationTimezone(t *testing.T) {
	timezone.Configure("Asia/Jakarta")
	t.Cleanup(func() { timezone.Configure("UTC") })

	// 20:00 UTC is already the next day in Jakarta.
	groups := dto.BuildHistory([]model.Entry{
		{ID: 1, Question: "A", Timestamp: time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)},
	})

	require.Len(t, groups, 1)
	assert.Equal(t, "2024-05-02", groups[0].Date)
}

func TestBuildHistory_JSON(t *testing.T) {
	timezone.Configure("UTC")

	body, err := json.Marshal(dto.BuildHistory([]model.Entry{
		{ID: 7, Question: "Best day?", Answer: "Today", Author: "Mia", Timestamp: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
	}))
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"date": "2024-05-01",
		"question": "Best day?",
		"entries": [{"id": 7, "answer": "Today", "author": "Mia", "timestamp": "2024-05-01T09:00:00.000Z"}]
	}]`, string(body))

	empty, err := json.Marshal(dto.BuildHistory(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestAddEntryRequest_ToModel(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	req := dto.AddEntryRequest{Question: " Q ", Answer: "A", Author: " Mia "}

	entry := req.ToModel(now)

	assert.Equal(t, model.Entry{Question: "Q", Answer: "A", Author: "Mia", Timestamp: now}, entry)
}

func TestSplitSnapshot(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	stamp := time.Date(2023, 12, 24, 18, 0, 0, 0, time.UTC)
	id := int64(3)

	withID, withoutID := dto.SplitSnapshot([]dto.SnapshotEntry{
		{ID: &id, Question: "Q", Answer: "A", Author: "Mia", Timestamp: &stamp},
		{Question: "Q", Answer: "B", Author: "Leo"},
	}, now)

	require.Len(t, withID, 1)
	assert.Equal(t, int64(3), withID[0].ID)
	assert.True(t, stamp.Equal(withID[0].Timestamp))

	require.Len(t, withoutID, 1)
	assert.Equal(t, now, withoutID[0].Timestamp)
}
