package postgres

import (
	"context"
	"time"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/geofence"
	"checkin/internal/domain/repository"
	"checkin/internal/errors"
	"checkin/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	entryColumns  = "c.id, c.user_id, c.check_in_date, c.check_in_time, u.name AS user_name, u.picture AS user_picture"
	photoColumn   = ", c.photo_data"
	entriesSource = "checkins AS c"
	joinOwners    = "JOIN users AS u ON u.id = c.user_id"
)

type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(db *gorm.DB) repository.CheckInRepository {
	return &checkInRepository{db: db}
}

// Create relies on the unique_user_date index: of two racing inserts for the
// same user and day exactly one commits, the other gets ErrCheckInAlreadyExists.
func (repo *checkInRepository) Create(ctx context.Context, checkIn *entity.CheckIn) error {
	checkInM := fromCheckInDomain(checkIn)

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(checkInM).Error
	if err != nil {
		if isConstraintViolation(err, model.CheckInUniqueIndex) {
			return repository.ErrCheckInAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("check-in owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create check-in")
	}

	checkIn.ID = checkInM.ID

	return nil
}

func (repo *checkInRepository) FindByID(ctx context.Context, id int64) (*entity.CheckIn, error) {
	var checkInM model.CheckInModel
	err := repo.db.WithContext(ctx).
		Omit("photo_data").
		Where("id = ?", id).
		First(&checkInM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find check-in by id")
	}

	return toCheckInDomain(&checkInM), nil
}

func (repo *checkInRepository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*entity.CheckIn, error) {
	var checkInM model.CheckInModel
	err := repo.db.WithContext(ctx).
		Omit("photo_data").
		Where("user_id = ? AND check_in_date = ?", userID, entity.FormatDate(date)).
		First(&checkInM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find check-in by user and date")
	}

	return toCheckInDomain(&checkInM), nil
}

func (repo *checkInRepository) ListEntriesByDate(ctx context.Context, date time.Time, withPhoto bool) ([]*entity.CheckInEntry, error) {
	columns := entryColumns
	if withPhoto {
		columns += photoColumn
	}

	var rows []model.CheckInEntryRow
	err := repo.db.WithContext(ctx).
		Table(entriesSource).
		Select(columns).
		Joins(joinOwners).
		Where("c.check_in_date = ?", entity.FormatDate(date)).
		Order("c.check_in_time ASC").
		Order("c.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list check-ins by date")
	}

	return toEntries(rows), nil
}

func (repo *checkInRepository) ListRecentDates(ctx context.Context, limit int) ([]time.Time, error) {
	dates := make([]time.Time, 0, limit)
	err := repo.db.WithContext(ctx).
		Model(&model.CheckInModel{}).
		Distinct().
		Order("check_in_date DESC").
		Limit(limit).
		Pluck("check_in_date", &dates).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list check-in dates")
	}

	for i, d := range dates {
		dates[i] = entity.CivilDate(d, time.UTC)
	}

	return dates, nil
}

func (repo *checkInRepository) ListEntriesByDates(ctx context.Context, dates []time.Time) ([]*entity.CheckInEntry, error) {
	if len(dates) == 0 {
		return []*entity.CheckInEntry{}, nil
	}

	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = entity.FormatDate(d)
	}

	var rows []model.CheckInEntryRow
	err := repo.db.WithContext(ctx).
		Table(entriesSource).
		Select(entryColumns).
		Joins(joinOwners).
		Where("c.check_in_date IN ?", formatted).
		Order("c.check_in_date DESC").
		Order("c.check_in_time ASC").
		Order("c.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list check-ins by dates")
	}

	return toEntries(rows), nil
}

func toEntries(rows []model.CheckInEntryRow) []*entity.CheckInEntry {
	entries := make([]*entity.CheckInEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.CheckInEntry{
			CheckInID:   row.ID,
			UserID:      row.UserID,
			Date:        entity.CivilDate(row.CheckInDate, time.UTC),
			CheckInTime: row.CheckInTime.UTC(),
			UserName:    row.UserName,
			UserPicture: derefString(row.UserPicture),
			Photo:       derefString(row.PhotoData),
		})
	}

	return entries
}

func toCheckInDomain(m *model.CheckInModel) *entity.CheckIn {
	return &entity.CheckIn{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        entity.CivilDate(m.CheckInDate, time.UTC),
		CheckInTime: m.CheckInTime.UTC(),
		Location:    geofence.NewPoint(m.Latitude, m.Longitude),
		Photo:       derefString(m.PhotoData),
	}
}

func fromCheckInDomain(c *entity.CheckIn) *model.CheckInModel {
	return &model.CheckInModel{
		ID:          c.ID,
		UserID:      c.UserID,
		CheckInDate: c.Date,
		CheckInTime: c.CheckInTime,
		Latitude:    c.Location.Lat(),
		Longitude:   c.Location.Lon(),
		PhotoData:   optionalString(c.Photo),
	}
}
