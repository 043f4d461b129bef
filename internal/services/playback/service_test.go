package playback

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetState(ctx context.Context, videoID uint, userID string) (*models.PlaybackState, error) {
	args := m.Called(ctx, videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaybackState), args.Error(1)
}

func (m *MockRepository) UpsertState(ctx context.Context, state *models.PlaybackState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockRepository) DeleteStatesByVideoID(ctx context.Context, videoID uint) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func TestServiceImpl_GetState(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored state", func(t *testing.T) {
		mockRepo := new(MockRepository)
		stored := &models.PlaybackState{VideoID: 3, UserID: "student-1", CurrentTime: 42.5}
		mockRepo.On("GetState", ctx, uint(3), "student-1").Return(stored, nil)
		service := NewService(mockRepo)

		state, err := service.GetState(ctx, 3, "student-1")
		require.NoError(t, err)
		assert.Equal(t, 42.5, state.CurrentTime)
	})

	t.Run("returns defaults for a new student", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetState", ctx, uint(3), "student-2").Return(nil, fmt.Errorf("playback state not found"))
		service := NewService(mockRepo)

		state, err := service.GetState(ctx, 3, "student-2")
		require.NoError(t, err)
		assert.Equal(t, float64(0), state.CurrentTime)
		assert.Equal(t, float64(1), state.PlaybackRate)
		assert.Equal(t, float64(1), state.Volume)
		assert.False(t, state.Muted)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetState", ctx, uint(3), "student-3").
			Return(nil, fmt.Errorf("getting playback state: database is locked"))
		service := NewService(mockRepo)

		state, err := service.GetState(ctx, 3, "student-3")
		require.Error(t, err)
		assert.Nil(t, state)
		assert.Contains(t, err.Error(), "database is locked")
	})

	t.Run("requires user id", func(t *testing.T) {
		service := NewService(new(MockRepository))
		_, err := service.GetState(ctx, 3, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeMissingField))
	})
}

func TestServiceImpl_SaveState(t *testing.T) {
	ctx := context.Background()

	validState := func() *models.PlaybackState {
		return &models.PlaybackState{
			VideoID:      3,
			UserID:       "student-1",
			CurrentTime:  10,
			PlaybackRate: 1.5,
			Volume:       0.7,
		}
	}

	t.Run("persists valid state", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("UpsertState", ctx, mock.AnythingOfType("*models.PlaybackState")).Return(nil)
		service := NewService(mockRepo)

		state, err := service.SaveState(ctx, validState())
		require.NoError(t, err)
		assert.Equal(t, 1.5, state.PlaybackRate)
		mockRepo.AssertExpectations(t)
	})

	t.Run("normalizes captions language", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("UpsertState", ctx, mock.AnythingOfType("*models.PlaybackState")).Return(nil)
		service := NewService(mockRepo)

		state := validState()
		state.CaptionsLanguage = "en-US"
		saved, err := service.SaveState(ctx, state)
		require.NoError(t, err)
		assert.Equal(t, "en", saved.CaptionsLanguage)
	})

	t.Run("validation failures", func(t *testing.T) {
		service := NewService(new(MockRepository))

		tests := []struct {
			name   string
			mutate func(*models.PlaybackState)
		}{
			{"negative current time", func(s *models.PlaybackState) { s.CurrentTime = -1 }},
			{"zero playback rate", func(s *models.PlaybackState) { s.PlaybackRate = 0 }},
			{"volume above one", func(s *models.PlaybackState) { s.Volume = 1.5 }},
			{"missing user id", func(s *models.PlaybackState) { s.UserID = "" }},
			{"unknown captions language", func(s *models.PlaybackState) { s.CaptionsLanguage = "xx" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				state := validState()
				tt.mutate(state)
				_, err := service.SaveState(ctx, state)
				assert.Error(t, err)
			})
		}
	})
}

func TestServiceImpl_ResetStates(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	mockRepo.On("DeleteStatesByVideoID", ctx, uint(3)).Return(nil)
	service := NewService(mockRepo)

	require.NoError(t, service.ResetStates(ctx, 3))
	mockRepo.AssertExpectations(t)
}
