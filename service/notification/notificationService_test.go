package notificationsvc_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zirachw/CarGoOwner/model"
	notificationsvc "github.com/zirachw/CarGoOwner/service/notification"
	"github.com/zirachw/CarGoOwner/util/listing"
)

type repoMock struct {
	listFn func(ctx context.Context, f model.RentalFilter, req listing.Request) (listing.Page[model.Rental], error)
}

func (m *repoMock) List(ctx context.Context, f model.RentalFilter, req listing.Request) (listing.Page[model.Rental], error) {
	return m.listFn(ctx, f, req)
}

func TestTask_DefaultAndSet(t *testing.T) {
	s := notificationsvc.New(&repoMock{})
	require.Equal(t, model.TaskReturnSchedule, s.Task())

	require.NoError(t, s.SetTask(model.TaskRentalPayment))
	require.Equal(t, model.TaskRentalPayment, s.Task())

	require.ErrorIs(t, s.SetTask("Laporan"), notificationsvc.ErrUnknownTask)
	require.Equal(t, model.TaskRentalPayment, s.Task())
}

func TestTask_AliasStoresLabel(t *testing.T) {
	var got model.RentalFilter
	s := notificationsvc.New(&repoMock{listFn: func(ctx context.Context, f model.RentalFilter, req listing.Request) (listing.Page[model.Rental], error) {
		got = f
		return listing.Page[model.Rental]{}, nil
	}})

	require.NoError(t, s.SetTask("payment"))
	require.Equal(t, model.TaskRentalPayment, s.Task())

	require.NoError(t, s.SetTask("return"))
	require.Equal(t, model.TaskReturnSchedule, s.Task())

	_, err := s.List(context.Background(), "", true, listing.Request{Page: 1, PerPage: notificationsvc.PerPage})
	require.NoError(t, err)
	require.NotNil(t, got.Returned)

	_, err = s.List(context.Background(), "payment", true, listing.Request{Page: 1, PerPage: notificationsvc.PerPage})
	require.NoError(t, err)
	require.NotNil(t, got.Paid)
}

func TestTask_ConcurrentAccess(t *testing.T) {
	s := notificationsvc.New(&repoMock{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.SetTask(model.Tasks[i%2])
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Task()
		}()
	}
	wg.Wait()
	_, ok := model.ParseTask(string(s.Task()))
	require.True(t, ok)
}

func TestList_PendingFilterPerTask(t *testing.T) {
	var got model.RentalFilter
	s := notificationsvc.New(&repoMock{listFn: func(ctx context.Context, f model.RentalFilter, req listing.Request) (listing.Page[model.Rental], error) {
		got = f
		return listing.Page[model.Rental]{}, nil
	}})
	req := listing.Request{Page: 1, PerPage: notificationsvc.PerPage}

	_, err := s.List(context.Background(), "", true, req)
	require.NoError(t, err)
	require.NotNil(t, got.Returned)
	require.False(t, *got.Returned)
	require.Nil(t, got.Paid)

	_, err = s.List(context.Background(), model.TaskRentalPayment, true, req)
	require.NoError(t, err)
	require.NotNil(t, got.Paid)
	require.Nil(t, got.Returned)

	_, err = s.List(context.Background(), model.TaskRentalPayment, false, req)
	require.NoError(t, err)
	require.Nil(t, got.Paid)

	_, err = s.List(context.Background(), "other", false, req)
	require.ErrorIs(t, err, notificationsvc.ErrUnknownTask)
}
