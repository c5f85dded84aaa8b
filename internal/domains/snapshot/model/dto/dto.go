package dto

import (
	journalDto "ourstory/internal/domains/journal/model/dto"
	taskDto "ourstory/internal/domains/task/model/dto"
)

// Data is everything a client renders.
type Data struct {
	Tasks   []taskDto.TaskResponse     `json:"tasks"`
	Journal []journalDto.EntryResponse `json:"journal"`
}

// ReplaceRequest is a full client snapshot. Both lists must be present; an empty list clears the table.
type ReplaceRequest struct {
	Tasks   []taskDto.SnapshotTask     `json:"tasks" validate:"required,dive"`
	Journal []journalDto.SnapshotEntry `json:"journal" validate:"required,dive"`
}

func (r *ReplaceRequest) Normalize() {
	for i := range r.Tasks {
		r.Tasks[i].Normalize()
	}

	for i := range r.Journal {
		r.Journal[i].Normalize()
	}
}

// HasDuplicateIDs reports whether a client id appears twice within the tasks or within the journal.
func (r *ReplaceRequest) HasDuplicateIDs() bool {
	tasks := make(map[int64]struct{}, len(r.Tasks))
	for _, task := range r.Tasks {
		if task.ID == nil {
			continue
		}

		if _, seen := tasks[*task.ID]; seen {
			return true
		}

		tasks[*task.ID] = struct{}{}
	}

	journal := make(map[int64]struct{}, len(r.Journal))
	for _, entry := range r.Journal {
		if entry.ID == nil {
			continue
		}

		if _, seen := journal[*entry.ID]; seen {
			return true
		}

		journal[*entry.ID] = struct{}{}
	}

	return false
}
