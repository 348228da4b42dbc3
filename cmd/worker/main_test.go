//go:build unit

package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carwash-booking/internal/pkg/mail"
	"carwash-booking/internal/usecase/commands"
	"carwash-booking/internal/usecase/queries"
)

type stubUserStore struct {
	users map[uuid.UUID]*queries.AuthorizedUserView
}

func (s *stubUserStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, queries.ErrUserNotFound
}

func (s *stubUserStore) FindByEmail(context.Context, string) (*queries.AuthorizedUserView, string, error) {
	return nil, "", queries.ErrUserNotFound
}

type stubCarWashStore struct {
	washes map[uuid.UUID]*queries.CarWashView
}

func (s *stubCarWashStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CarWashView, error) {
	if w, ok := s.washes[id]; ok {
		return w, nil
	}
	return nil, errNotFound
}

func (s *stubCarWashStore) FindActive(context.Context, queries.CarWashFilters, int32) ([]*queries.CarWashView, error) {
	return nil, nil
}

func (s *stubCarWashStore) FindInBoundingBox(context.Context, float64, float64, float64, float64) ([]*queries.CarWashView, error) {
	return nil, nil
}

type stubServiceStore struct {
	services map[uuid.UUID]*queries.ServiceView
}

func (s *stubServiceStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	if svc, ok := s.services[id]; ok {
		return svc, nil
	}
	return nil, errNotFound
}

func (s *stubServiceStore) FindByCarWash(context.Context, uuid.UUID, bool) ([]*queries.ServiceView, error) {
	return nil, nil
}

var errNotFound = errors.New("not found")

type recordingSender struct {
	recipients []string
	messages   []mail.Message
}

func (s *recordingSender) Send(_ context.Context, recipient string, msg mail.Message) error {
	s.recipients = append(s.recipients, recipient)
	s.messages = append(s.messages, msg)
	return nil
}

func TestNotifierHandle(t *testing.T) {
	ctx := context.Background()

	userID := uuid.New()
	carWashID := uuid.New()
	serviceID := uuid.New()

	newNotifier := func() (*notifier, *recordingSender) {
		sender := &recordingSender{}
		n := &notifier{
			users: &stubUserStore{users: map[uuid.UUID]*queries.AuthorizedUserView{
				userID: {ID: userID, Email: "viewer@example.com", Name: "Viewer"},
			}},
			carWashes: &stubCarWashStore{washes: map[uuid.UUID]*queries.CarWashView{
				carWashID: {ID: carWashID, Name: "Sparkle Wash"},
			}},
			services: &stubServiceStore{services: map[uuid.UUID]*queries.ServiceView{
				serviceID: {ID: serviceID, Name: "Exterior Wash"},
			}},
			sender: sender,
		}
		return n, sender
	}

	evt := commands.BookingEvent{
		Type:      commands.EventBookingConfirmed,
		BookingID: uuid.New(),
		UserID:    userID,
		CarWashID: carWashID,
		ServiceID: serviceID,
		Date:      "2026-09-01",
		StartTime: "10:00",
	}

	t.Run("delivers to the user's email address", func(t *testing.T) {
		n, sender := newNotifier()

		require.NoError(t, n.handle(ctx, evt))
		require.Len(t, sender.recipients, 1)
		assert.Equal(t, "viewer@example.com", sender.recipients[0])
		assert.Contains(t, sender.messages[0].Body, "Sparkle Wash")
	})

	t.Run("unknown user fails the event without sending", func(t *testing.T) {
		n, sender := newNotifier()
		orphan := evt
		orphan.UserID = uuid.New()

		err := n.handle(ctx, orphan)
		assert.Error(t, err)
		assert.Empty(t, sender.recipients)
	})

	t.Run("missing catalog names still deliver", func(t *testing.T) {
		n, sender := newNotifier()
		sparse := evt
		sparse.CarWashID = uuid.New()
		sparse.ServiceID = uuid.New()

		require.NoError(t, n.handle(ctx, sparse))
		assert.Len(t, sender.recipients, 1)
	})
}
