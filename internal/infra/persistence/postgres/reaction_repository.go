package postgres

import (
	"context"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository is the constructor for reactionRepository.
func NewReactionRepository(db *gorm.DB) repository.ReactionRepository {
	return &reactionRepository{db: db}
}

func (repo *reactionRepository) Create(ctx context.Context, reaction *entity.Reaction) error {
	reactionM := &model.ReactionModel{
		UserID:       reaction.UserID,
		CheckInID:    reaction.CheckInID,
		ReactionType: string(reaction.Type),
		ReactionDate: reaction.Date,
		CreatedAt:    reaction.CreatedAt,
	}

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(reactionM).Error
	if err != nil {
		switch {
		case isConstraintViolation(err, model.ReactionUniqueIndex):
			return repository.ErrReactionAlreadyExists
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrCheckInNotFound.WrapMessage("reaction target does not exist")
		case isCheckConstraintViolation(err):
			return domainerrors.ErrInvalidReactionType.WrapMessage("rejected by chk_reactions_type")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create reaction")
		}
	}

	reaction.ID = reactionM.ID

	return nil
}

func (repo *reactionRepository) CountByCheckInIDs(ctx context.Context, checkInIDs []int64) (map[int64]entity.ReactionCount, error) {
	counts := make(map[int64]entity.ReactionCount, len(checkInIDs))
	if len(checkInIDs) == 0 {
		return counts, nil
	}

	var rows []model.ReactionCountRow
	err := repo.db.WithContext(ctx).
		Model(&model.ReactionModel{}).
		Select("checkin_id, "+
			"COUNT(*) FILTER (WHERE reaction_type = ?) AS likes, "+
			"COUNT(*) FILTER (WHERE reaction_type = ?) AS dislikes",
			string(entity.ReactionLike), string(entity.ReactionDislike)).
		Where("checkin_id IN ?", checkInIDs).
		Group("checkin_id").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count reactions")
	}

	for _, row := range rows {
		counts[row.CheckInID] = entity.ReactionCount{Likes: row.Likes, Dislikes: row.Dislikes}
	}

	return counts, nil
}
