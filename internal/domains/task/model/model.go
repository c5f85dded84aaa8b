package model

import (
	"time"

	"ourstory/shared/constant"
)

const (
	TableName  = "tasks"
	EntityName = "task"

	FieldID        = "id"
	FieldText      = "text"
	FieldDone      = "done"
	FieldImageURL  = "image_url"
	FieldVideoURL  = "video_url"
	FieldCreatedAt = "created_at"
)

// Task is one row of the shared list. CreatedAt doubles as the list position.
type Task struct {
	ID        int64     `db:"id"`
	Text      string    `db:"text"`
	Done      bool      `db:"done"`
	ImageURL  *string   `db:"image_url"`
	VideoURL  *string   `db:"video_url"`
	CreatedAt time.Time `db:"created_at"`
}

// DefaultTasks seeds an empty list, in display order.
var DefaultTasks = []string{
	"🍳 Cook breakfast together",
	"🌅 Watch the sunrise",
	"🚲 Go for a bike ride",
	"📸 Take a photo booth picture",
	"🎨 Paint each other's portrait",
	"🧺 Have a picnic in the park",
	"🎬 Recreate a scene from our favorite movie",
	"💌 Write each other a love letter",
	"🌮 Try a new restaurant",
	"⛺ Go camping under the stars",
	"🎤 Sing karaoke together",
	"🧁 Bake something from scratch",
	"🏖️ Spend a day at the beach",
	"🎢 Visit an amusement park",
	"🌱 Plant something together",
}

// Slot is the synthetic created_at of position index.
func Slot(base time.Time, index int) time.Time {
	return base.Add(time.Duration(index) * constant.ReorderStep)
}

// Seed builds the default rows with strictly increasing created_at starting at base.
func Seed(base time.Time) []Task {
	tasks := make([]Task, len(DefaultTasks))

	for i, text := range DefaultTasks {
		tasks[i] = Task{
			Text:      text,
			CreatedAt: Slot(base, i),
		}
	}

	return tasks
}

// ReorderPlan maps task ids to their new created_at. current must be in list order. The task at
// order[i] moves to slot i; tasks not named follow in their previous relative order. Unknown ids
// are ignored and a repeated id keeps its first position.
func ReorderPlan(current []Task, order []int64, base time.Time) map[int64]time.Time {
	known := make(map[int64]struct{}, len(current))
	for _, task := range current {
		known[task.ID] = struct{}{}
	}

	plan := make(map[int64]time.Time, len(current))

	for i, id := range order {
		if _, ok := known[id]; !ok {
			continue
		}

		if _, seen := plan[id]; seen {
			continue
		}

		plan[id] = Slot(base, i)
	}

	next := len(order)

	for _, task := range current {
		if _, named := plan[task.ID]; named {
			continue
		}

		plan[task.ID] = Slot(base, next)
		next++
	}

	return plan
}
