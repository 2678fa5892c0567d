package battery

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"batteryhub.xyz/battery-inventory-service/pkg/common"
	"batteryhub.xyz/battery-inventory-service/pkg/models"
)

// DatetimeLayout is the fixed timestamp format used on the wire and in
// serialized records.
const DatetimeLayout = "2006-01-02 15:04:05"

// RecordInput is a validated creation/update payload. Capacity and Weight
// are nil when the client omitted them or sent text.
type RecordInput struct {
	Name       string
	Color      string
	Resistance float64
	Voltage    float64
	Source     *string
	Capacity   *int64
	Weight     *float64
	Datetime   time.Time
}

// RecordView is the JSON-safe projection of one joined record row.
// Weight and Capacity hold a number when set and the literal string
// "Unknown" otherwise, matching what clients have always received.
type RecordView struct {
	ID         uint    `json:"id"`
	Barcode    int     `json:"barcode"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Voltage    float64 `json:"voltage"`
	Resistance float64 `json:"resistance"`
	Source     string  `json:"source"`
	Weight     any     `json:"weight"`
	Capacity   any     `json:"capacity"`
	Datetime   string  `json:"datetime"`
}

type joinedRecord struct {
	ID         uint
	Barcode    int
	Datetime   time.Time
	Name       *string
	Color      string
	Voltage    float64
	Resistance float64
	Source     *string
	Weight     *float64
	Capacity   *int64
}

const unknownValue = "Unknown"

func serializeRecord(row *joinedRecord) RecordView {
	view := RecordView{
		ID:         row.ID,
		Barcode:    row.Barcode,
		Name:       unknownValue,
		Color:      row.Color,
		Voltage:    row.Voltage,
		Resistance: row.Resistance,
		Source:     unknownValue,
		Weight:     unknownValue,
		Capacity:   unknownValue,
		Datetime:   row.Datetime.Format(DatetimeLayout),
	}
	if row.Name != nil {
		view.Name = *row.Name
	}
	if row.Source != nil {
		view.Source = *row.Source
	}
	if row.Weight != nil {
		view.Weight = *row.Weight
	}
	if row.Capacity != nil {
		view.Capacity = *row.Capacity
	}
	return view
}

func (inv *Inventory) recordLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryHubRecord),
	)
}

// addRecord composes the parameter rows, draws a fresh barcode and
// inserts the fact row, all in one transaction.
func (inv *Inventory) addRecord(input *RecordInput) (int, error) {
	logger := inv.recordLogger()

	var barcode int
	err := inv.Db.Conn.Transaction(func(tx *gorm.DB) error {
		ids, err := inv.composeParams(tx, input)
		if err != nil {
			return err
		}

		barcode, err = inv.generateBarcode(tx)
		if err != nil {
			return err
		}

		record := models.BatteryData{
			Barcode:      barcode,
			RealParamsID: &ids.ParamsID,
			SourceID:     ids.SourceID,
			Datetime:     input.Datetime,
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		logger.Error("Failed to add record", zap.Error(err))
		observeRecordOp("add", err)
		return 0, asServiceError(err)
	}

	logger.Info("Added record", zap.Int("barcode", barcode))
	observeRecordOp("add", nil)
	return barcode, nil
}

// updateRecord re-composes the parameters for an existing barcode and
// swaps the fact row's references wholesale. The previous RealParameters
// row is left behind on purpose; reclaiming it would change behavior
// observable through parameter reuse.
func (inv *Inventory) updateRecord(barcode int, input *RecordInput) error {
	logger := inv.recordLogger()

	err := inv.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var record models.BatteryData
		if err := tx.Where("barcode = ?", barcode).Take(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newNotFoundError("Record not found.")
			}
			return err
		}

		ids, err := inv.composeParams(tx, input)
		if err != nil {
			return err
		}

		return tx.Model(&models.BatteryData{}).
			Where("id = ?", record.ID).
			Updates(map[string]any{
				"real_params_id": ids.ParamsID,
				"source_id":      ids.SourceID,
				"datetime":       input.Datetime,
			}).Error
	})
	if err != nil {
		logger.Error("Failed to update record", zap.Int("barcode", barcode), zap.Error(err))
		observeRecordOp("update", err)
		return asServiceError(err)
	}

	logger.Info("Updated record", zap.Int("barcode", barcode))
	observeRecordOp("update", nil)
	return nil
}

func (inv *Inventory) getRecordByBarcode(barcode int) (*RecordView, error) {
	if barcode < BarcodeMin || barcode > BarcodeMax {
		return nil, newValidationError("Barcode must be an int and a 6-digit number.")
	}

	var row joinedRecord
	err := inv.baseQuery(inv.Db.Conn).
		Where("battery_data.barcode = ?", barcode).
		Take(&row).Error
	if err != nil {
		observeRecordOp("get", err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("Record not found.")
		}
		return nil, asServiceError(err)
	}

	view := serializeRecord(&row)
	observeRecordOp("get", nil)
	return &view, nil
}

func (inv *Inventory) getRecordsByConditions(conds []Condition) ([]RecordView, error) {
	q := inv.baseQuery(inv.Db.Conn)
	for _, cond := range conds {
		q = q.Where(cond.Expr, cond.Args...)
	}

	var rows []joinedRecord
	if err := q.Scan(&rows).Error; err != nil {
		observeRecordOp("list", err)
		return nil, asServiceError(err)
	}

	observeRecordOp("list", nil)
	return common.Mapper(rows, func(row joinedRecord) RecordView {
		return serializeRecord(&row)
	}), nil
}

func (inv *Inventory) getRecordsByLimit(limit int) ([]RecordView, error) {
	if limit <= 0 {
		return nil, newValidationError("Limit records must be a positive integer")
	}

	var rows []joinedRecord
	err := inv.baseQuery(inv.Db.Conn).
		Order("battery_data.datetime DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		observeRecordOp("list", err)
		return nil, asServiceError(err)
	}

	observeRecordOp("list", nil)
	return common.Mapper(rows, func(row joinedRecord) RecordView {
		return serializeRecord(&row)
	}), nil
}

// deleteRecord hard-deletes the fact row. Dimension and RealParameters
// rows referenced by it stay behind.
func (inv *Inventory) deleteRecord(barcode int) error {
	logger := inv.recordLogger()

	err := inv.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var record models.BatteryData
		if err := tx.Where("barcode = ?", barcode).Take(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newNotFoundError("Record not found.")
			}
			return err
		}
		return tx.Delete(&record).Error
	})
	if err != nil {
		observeRecordOp("delete", err)
		var se *ServiceError
		if errors.As(err, &se) && se.Kind == ErrKindNotFound {
			return se
		}
		logger.Error("Failed to delete record", zap.Int("barcode", barcode), zap.Error(err))
		return asServiceError(err)
	}

	logger.Info("Deleted record", zap.Int("barcode", barcode))
	observeRecordOp("delete", nil)
	return nil
}
