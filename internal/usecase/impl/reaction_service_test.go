package impl

import (
	"context"
	"testing"
	"time"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	mockRepo "checkin/internal/mocks/repository"
	mockSvc "checkin/internal/mocks/service"
	"checkin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reactionServiceFixtures struct {
	service    usecase.ReactionUsecase
	txManager  *mockRepo.MockTransactionManager
	boardCache *mockSvc.MockLeaderboardCache
}

func createTestReactionService(t *testing.T) reactionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	boardCache := mockSvc.NewMockLeaderboardCache(t)

	srv := NewReactionService(txManager, boardCache, newTestConfig(), newDiscardLogger())
	srv.(*reactionService).now = func() time.Time { return fixedNow }

	return reactionServiceFixtures{service: srv, txManager: txManager, boardCache: boardCache}
}

// expectTx runs fn against a factory whose repos are prepared by setup and
// returns fn's error, like a real transaction would.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(*mockRepo.MockCheckInRepository, *mockRepo.MockReactionRepository)) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			checkInRepo := mockRepo.NewMockCheckInRepository(t)
			reactionRepo := mockRepo.NewMockReactionRepository(t)
			factory.EXPECT().CheckInRepo().Return(checkInRepo).Maybe()
			factory.EXPECT().ReactionRepo().Return(reactionRepo).Maybe()
			setup(checkInRepo, reactionRepo)

			return fn(factory)
		})
}

func TestReactionService_React_Success(t *testing.T) {
	fx := createTestReactionService(t)
	ctx := context.Background()
	yesterday := today.AddDate(0, 0, -1)

	expectTx(t, fx.txManager, func(checkInRepo *mockRepo.MockCheckInRepository, reactionRepo *mockRepo.MockReactionRepository) {
		checkInRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.CheckIn{ID: 42, UserID: "user-b", Date: yesterday}, nil)
		reactionRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Reaction")).
			Run(func(_ context.Context, r *entity.Reaction) {
				assert.Equal(t, "user-a", r.UserID)
				assert.Equal(t, entity.ReactionLike, r.Type)
				assert.Equal(t, today, r.Date)
				r.ID = 11
			}).
			Return(nil)
	})
	fx.boardCache.EXPECT().Invalidate(ctx, yesterday).Return(nil)

	out, err := fx.service.React(ctx, "user-a", usecase.ReactInput{CheckInID: 42, Type: "like"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), out.ReactionID)
	assert.Equal(t, int64(42), out.CheckInID)
	assert.Equal(t, "like", out.Type)
	assert.Equal(t, "2025-03-14", out.Date)
}

func TestReactionService_React_InvalidType(t *testing.T) {
	fx := createTestReactionService(t)

	_, err := fx.service.React(context.Background(), "user-a", usecase.ReactInput{CheckInID: 42, Type: "love"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReactionType)
}

func TestReactionService_React_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(*mockRepo.MockCheckInRepository, *mockRepo.MockReactionRepository)
		wantErr error
	}{
		{
			name: "unknown check-in",
			setup: func(c *mockRepo.MockCheckInRepository, _ *mockRepo.MockReactionRepository) {
				c.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrCheckInNotFound)
			},
			wantErr: domainerrors.ErrCheckInNotFound,
		},
		{
			name: "own check-in",
			setup: func(c *mockRepo.MockCheckInRepository, _ *mockRepo.MockReactionRepository) {
				c.EXPECT().FindByID(ctx, int64(42)).Return(&entity.CheckIn{ID: 42, UserID: "user-a", Date: today}, nil)
			},
			wantErr: domainerrors.ErrCannotReactToOwnCheckIn,
		},
		{
			name: "already reacted today",
			setup: func(c *mockRepo.MockCheckInRepository, r *mockRepo.MockReactionRepository) {
				c.EXPECT().FindByID(ctx, int64(42)).Return(&entity.CheckIn{ID: 42, UserID: "user-b", Date: today}, nil)
				r.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrReactionAlreadyExists)
			},
			wantErr: domainerrors.ErrReactionAlreadyGiven,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReactionService(t)
			expectTx(t, fx.txManager, tt.setup)

			_, err := fx.service.React(ctx, "user-a", usecase.ReactInput{CheckInID: 42, Type: "dislike"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReactionService_React_CacheFailureIgnored(t *testing.T) {
	fx := createTestReactionService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(c *mockRepo.MockCheckInRepository, r *mockRepo.MockReactionRepository) {
		c.EXPECT().FindByID(ctx, int64(42)).Return(&entity.CheckIn{ID: 42, UserID: "user-b", Date: today}, nil)
		r.EXPECT().Create(ctx, mock.Anything).Return(nil)
	})
	fx.boardCache.EXPECT().Invalidate(ctx, today).Return(errors.New("redis down"))

	_, err := fx.service.React(ctx, "user-a", usecase.ReactInput{CheckInID: 42, Type: "dislike"})
	require.NoError(t, err)
}
