package postgres

import (
	"context"

	"checkin/internal/errors"
	"checkin/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables, foreign keys and the named unique
// indexes the ledger relies on.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	migrator := db.WithContext(ctx).Migrator()
	for _, idx := range []struct {
		model any
		name  string
	}{
		{model: &model.CheckInModel{}, name: model.CheckInUniqueIndex},
		{model: &model.ReactionModel{}, name: model.ReactionUniqueIndex},
	} {
		if !migrator.HasIndex(idx.model, idx.name) {
			return errors.Errorf("index %s missing after migration", idx.name)
		}
	}

	return nil
}
