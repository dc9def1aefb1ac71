package service

// Тесты переключателей реакций (internal/service/reactions.go).
//
// Проверяем:
//  - требование аутентификации (ErrUnauthenticated);
//  - валидацию аргументов, включая запрет self-follow;
//  - проверку существования ролика до переключения и маппинг ErrNotFound;
//  - возврат итогового состояния реакции;
//  - маппинг прочих ошибок storage -> ErrInternal.

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-reels-service/internal/models"
	"github.com/pribylovaa/go-reels-service/internal/storage"
)

func TestService_ToggleLike_RequiresAuth(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.ToggleLike(context.Background(), uuid.New(), uuid.Nil)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_ToggleLike_ReelNotFound(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	reelID := uuid.New()
	ms.EXPECT().ReelByID(gomock.Any(), reelID).Return(nil, storage.ErrNotFound)

	_, err := s.ToggleLike(context.Background(), reelID, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

// Повторный вызов возвращает противоположное состояние (переключатель).
func TestService_ToggleLike_ReturnsState(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	reelID := uuid.New()
	viewer := uuid.New()
	reel := &models.Reel{ID: reelID, IsActive: true}

	ms.EXPECT().ReelByID(gomock.Any(), reelID).Return(reel, nil).Times(2)
	first := ms.EXPECT().ToggleLike(gomock.Any(), reelID, viewer).Return(true, nil)
	ms.EXPECT().ToggleLike(gomock.Any(), reelID, viewer).Return(false, nil).After(first)

	liked, err := s.ToggleLike(context.Background(), reelID, viewer)
	require.NoError(t, err)
	require.True(t, liked)

	liked, err = s.ToggleLike(context.Background(), reelID, viewer)
	require.NoError(t, err)
	require.False(t, liked)
}

func TestService_ToggleSave_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	reelID := uuid.New()
	viewer := uuid.New()

	ms.EXPECT().ReelByID(gomock.Any(), reelID).Return(&models.Reel{ID: reelID}, nil)
	ms.EXPECT().ToggleSave(gomock.Any(), reelID, viewer).Return(true, nil)

	saved, err := s.ToggleSave(context.Background(), reelID, viewer)
	require.NoError(t, err)
	require.True(t, saved)
}

func TestService_ToggleFollow_Validation(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	viewer := uuid.New()

	// аноним
	_, err := s.ToggleFollow(context.Background(), uuid.Nil, uuid.New())
	require.ErrorIs(t, err, ErrUnauthenticated)

	// пустой creator
	_, err = s.ToggleFollow(context.Background(), viewer, uuid.Nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// подписка на себя запрещена
	_, err = s.ToggleFollow(context.Background(), viewer, viewer)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_ToggleFollow_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	viewer := uuid.New()
	creator := uuid.New()
	ms.EXPECT().ToggleFollow(gomock.Any(), viewer, creator).Return(true, nil)

	following, err := s.ToggleFollow(context.Background(), viewer, creator)
	require.NoError(t, err)
	require.True(t, following)
}

func TestService_Toggle_StorageError(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	reelID := uuid.New()
	viewer := uuid.New()

	ms.EXPECT().ReelByID(gomock.Any(), reelID).Return(&models.Reel{ID: reelID}, nil)
	ms.EXPECT().ToggleLike(gomock.Any(), reelID, viewer).Return(false, errors.New("boom"))

	_, err := s.ToggleLike(context.Background(), reelID, viewer)
	require.ErrorIs(t, err, ErrInternal)
}
