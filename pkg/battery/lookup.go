package battery

import (
	"errors"

	"gorm.io/gorm"
)

// getOrCreateID looks up a dimension row by value and returns its id,
// inserting the row first when absent. A nil value is looked up with
// IS NULL, so repeated nil inserts land on the same stored null row.
// Concurrent identical inserts are not retried; the unique constraint
// surfaces as a database error to the caller.
func (inv *Inventory) getOrCreateID(tx *gorm.DB, table, column string, value any) (uint, error) {
	find := func() (uint, error) {
		var row struct{ ID uint }
		q := tx.Table(table).Select("id")
		if value == nil {
			q = q.Where(column + " IS NULL")
		} else {
			q = q.Where(column+" = ?", value)
		}
		if err := q.Take(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil
	}

	id, err := find()
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	if err := tx.Table(table).Create(map[string]any{column: value}).Error; err != nil {
		return 0, err
	}

	return find()
}
