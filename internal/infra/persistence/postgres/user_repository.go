package postgres

import (
	"context"
	"time"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/errors"
	"checkin/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Upsert inserts the user or, on an id conflict, refreshes the profile columns.
// RETURNING brings back the stored created_at of an existing row.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	userM := fromUserDomain(user)
	userM.CreatedAt = now
	userM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"email", "name", "picture", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserUpsertFailed.WrapMessage("email already belongs to another account")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpsertFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func toUserDomain(m *model.UserModel) *entity.User {
	user := &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Picture != nil {
		user.Picture = *m.Picture
	}

	return user
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   optionalString(u.Picture),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
