package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"ourstory/infras/otel/mocks"
	pgMocks "ourstory/infras/postgres/mocks"
	journalMocks "ourstory/internal/domains/journal/mocks"
	journalDto "ourstory/internal/domains/journal/model/dto"
	"ourstory/internal/domains/snapshot/model/dto"
	"ourstory/internal/domains/snapshot/service"
	taskMocks "ourstory/internal/domains/task/mocks"
	taskDto "ourstory/internal/domains/task/model/dto"
	"ourstory/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc        service.Snapshot
	tasks      *taskMocks.MockTaskService
	journal    *journalMocks.MockJournalService
	transactor *pgMocks.Transactor
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		tasks:      taskMocks.NewMockTaskService(ctrl),
		journal:    journalMocks.NewMockJournalService(ctrl),
		transactor: pgMocks.NewTransactor(),
	}
	f.svc = service.New(f.tasks, f.journal, f.transactor, mocks.NewOtel())

	return f
}

func TestSnapshotService_Get(t *testing.T) {
	f := newFixture(t)

	f.tasks.EXPECT().List(gomock.Any()).Return([]taskDto.TaskResponse{{ID: 1, Text: "a"}}, nil)
	f.journal.EXPECT().List(gomock.Any()).Return([]journalDto.EntryResponse{}, nil)

	data, err := f.svc.Get(context.Background())

	assert.NoError(t, err)
	assert.Len(t, data.Tasks, 1)
	assert.NotNil(t, data.Journal)
}

func TestSnapshotService_GetFailure(t *testing.T) {
	f := newFixture(t)

	f.tasks.EXPECT().List(gomock.Any()).Return(nil, failure.Storage("Failed to fetch tasks", errors.New("down")))

	_, err := f.svc.Get(context.Background())

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestSnapshotService_Replace(t *testing.T) {
	req := dto.ReplaceRequest{
		Tasks:   []taskDto.SnapshotTask{{Text: "a"}},
		Journal: []journalDto.SnapshotEntry{{Question: "Q", Answer: "A", Author: "Mia"}},
	}

	t.Run("replaces both tables in one transaction", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.journal.EXPECT().ReplaceAllTx(gomock.Any(), gomock.Any(), req.Journal).Return(nil),
			f.tasks.EXPECT().ReplaceAllTx(gomock.Any(), gomock.Any(), req.Tasks).Return(nil),
		)

		assert.NoError(t, f.svc.Replace(context.Background(), req))
		assert.Equal(t, 1, f.transactor.Calls)
	})

	t.Run("duplicate ids are a bad request", func(t *testing.T) {
		f := newFixture(t)
		id := int64(4)

		err := f.svc.Replace(context.Background(), dto.ReplaceRequest{
			Tasks:   []taskDto.SnapshotTask{{ID: &id, Text: "a"}, {ID: &id, Text: "b"}},
			Journal: []journalDto.SnapshotEntry{},
		})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "snapshot contains duplicate ids")
		assert.Zero(t, f.transactor.Calls)
	})

	t.Run("unique violation without duplicates is a storage failure", func(t *testing.T) {
		f := newFixture(t)

		f.journal.EXPECT().ReplaceAllTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.tasks.EXPECT().
			ReplaceAllTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert tasks: %w", &pq.Error{Code: "23505", Constraint: "tasks_pkey"}))

		err := f.svc.Replace(context.Background(), req)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("journal failure stops before tasks", func(t *testing.T) {
		f := newFixture(t)

		f.journal.EXPECT().ReplaceAllTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		err := f.svc.Replace(context.Background(), req)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.ErrorContains(t, err, "disk full")
	})

	t.Run("no database", func(t *testing.T) {
		f := newFixture(t)
		f.transactor.Err = failure.ErrDatabaseUnavailable

		err := f.svc.Replace(context.Background(), req)

		assert.True(t, failure.IsUnavailable(err))
	})
}
