// Package notificationsvc serves the due-date screen: one of two views over
// the rentals, picked by the current task.
package notificationsvc

import (
	"context"
	"errors"
	"sync"

	"github.com/zirachw/CarGoOwner/model"
	"github.com/zirachw/CarGoOwner/util/listing"
)

const PerPage = 10

var ErrUnknownTask = errors.New("unknown notification task")

type Repo interface {
	List(ctx context.Context, f model.RentalFilter, req listing.Request) (listing.Page[model.Rental], error)
}

type Service interface {
	Task() model.Task
	SetTask(t model.Task) error
	// List shows task's view; pending keeps only unreturned or unpaid rows.
	List(ctx context.Context, t model.Task, pending bool, req listing.Request) (listing.Page[model.Rental], error)
}

type service struct {
	r Repo

	mu   sync.RWMutex
	task model.Task
}

func New(r Repo) Service {
	return &service{r: r, task: model.TaskReturnSchedule}
}

func (s *service) Task() model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.task
}

func (s *service) SetTask(t model.Task) error {
	task, ok := model.ParseTask(string(t))
	if !ok {
		return ErrUnknownTask
	}
	s.mu.Lock()
	s.task = task
	s.mu.Unlock()
	return nil
}

func (s *service) List(ctx context.Context, t model.Task, pending bool, req listing.Request) (listing.Page[model.Rental], error) {
	if t == "" {
		t = s.Task()
	} else if task, ok := model.ParseTask(string(t)); ok {
		t = task
	}
	var f model.RentalFilter
	switch t {
	case model.TaskReturnSchedule:
		if pending {
			no := false
			f.Returned = &no
		}
	case model.TaskRentalPayment:
		if pending {
			no := false
			f.Paid = &no
		}
	default:
		return listing.Page[model.Rental]{}, ErrUnknownTask
	}
	return s.r.List(ctx, f, req)
}
