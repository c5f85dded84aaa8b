package dto

import (
	"strings"
	"time"

	"ourstory/internal/domains/task/model"
	"ourstory/shared/constant"
	"ourstory/shared/timezone"
)

type CreateTaskRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}

func (c *CreateTaskRequest) Normalize() {
	c.Text = strings.TrimSpace(c.Text)
}

func (c *CreateTaskRequest) ToModel(now time.Time) model.Task {
	return model.Task{
		Text:      strings.TrimSpace(c.Text),
		Done:      false,
		CreatedAt: now,
	}
}

// UpdateTaskRequest overwrites every editable column; a missing URL clears it.
type UpdateTaskRequest struct {
	Text     string  `db:"text" json:"text" validate:"required,notblank"`
	Done     bool    `db:"done" json:"done"`
	ImageURL *string `db:"image_url" json:"imageUrl" validate:"omitempty,media=image"`
	VideoURL *string `db:"video_url" json:"videoUrl" validate:"omitempty,media=video"`
}

func (u *UpdateTaskRequest) Normalize() {
	u.Text = strings.TrimSpace(u.Text)
}

type ReorderTasksRequest struct {
	Order []int64 `json:"order" validate:"required,dive,gt=0"`
}

type TaskResponse struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	Done      bool    `json:"done"`
	ImageURL  *string `json:"imageUrl"`
	VideoURL  *string `json:"videoUrl"`
	CreatedAt string  `json:"createdAt"`
}

func (r *TaskResponse) FromModel(task model.Task) {
	r.ID = task.ID
	r.Text = task.Text
	r.Done = task.Done
	r.ImageURL = task.ImageURL
	r.VideoURL = task.VideoURL
	r.CreatedAt = task.CreatedAt.UTC().Format(constant.DateFormat)
}

func FromModels(tasks []model.Task) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		res[i].FromModel(task)
	}

	return res
}

// SnapshotTask is a task as pushed by a client during a full sync. ID and CreatedAt are optional.
type SnapshotTask struct {
	ID        *int64     `json:"id" validate:"omitempty,gt=0"`
	Text      string     `json:"text" validate:"required,notblank"`
	Done      bool       `json:"done"`
	ImageURL  *string    `json:"imageUrl" validate:"omitempty,media=image"`
	VideoURL  *string    `json:"videoUrl" validate:"omitempty,media=video"`
	CreatedAt *time.Time `json:"createdAt"`
}

func (s *SnapshotTask) Normalize() {
	s.Text = strings.TrimSpace(s.Text)
}

// SplitSnapshot separates rows that keep their client id from rows that need a generated one.
// A row without createdAt takes slot i of base, i being its snapshot position.
func SplitSnapshot(tasks []SnapshotTask, base time.Time) (withID, withoutID []model.Task) {
	withID = []model.Task{}
	withoutID = []model.Task{}

	for i, snap := range tasks {
		task := model.Task{
			Text:      strings.TrimSpace(snap.Text),
			Done:      snap.Done,
			ImageURL:  snap.ImageURL,
			VideoURL:  snap.VideoURL,
			CreatedAt: model.Slot(base, i),
		}

		if snap.CreatedAt != nil {
			task.CreatedAt = timezone.ToAppTime(*snap.CreatedAt)
		}

		if snap.ID == nil {
			withoutID = append(withoutID, task)

			continue
		}

		task.ID = *snap.ID
		withID = append(withID, task)
	}

	return withID, withoutID
}
