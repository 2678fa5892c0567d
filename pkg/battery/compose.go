package battery

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"batteryhub.xyz/battery-inventory-service/pkg/common"
	"batteryhub.xyz/battery-inventory-service/pkg/models"
)

type composedIDs struct {
	ParamsID uint
	SourceID *uint
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// composeParams normalizes every dimension of the input and resolves the
// RealParameters row for the resulting id tuple, inserting one when no
// identical tuple exists yet. Source stays outside RealParameters because
// it lives directly on battery_data; it is also the one dimension allowed
// to be unset (nil id, no row created).
func (inv *Inventory) composeParams(tx *gorm.DB, input *RecordInput) (*composedIDs, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryHubLookup),
	)

	nameID, err := inv.getOrCreateID(tx, "name", "name", input.Name)
	if err != nil {
		return nil, err
	}
	colorID, err := inv.getOrCreateID(tx, "color", "color", input.Color)
	if err != nil {
		return nil, err
	}
	voltageID, err := inv.getOrCreateID(tx, "voltage", "voltage", input.Voltage)
	if err != nil {
		return nil, err
	}
	resistanceID, err := inv.getOrCreateID(tx, "resistance", "resistance", input.Resistance)
	if err != nil {
		return nil, err
	}
	capacityID, err := inv.getOrCreateID(tx, "capacity", "capacity", deref(input.Capacity))
	if err != nil {
		return nil, err
	}
	weightID, err := inv.getOrCreateID(tx, "weight", "weight", deref(input.Weight))
	if err != nil {
		return nil, err
	}

	var sourceID *uint
	if input.Source != nil {
		id, err := inv.getOrCreateID(tx, "source", "source", *input.Source)
		if err != nil {
			return nil, err
		}
		sourceID = &id
	}

	var params models.RealParameters
	err = tx.
		Where("name_id = ?", nameID).
		Where("color_id = ?", colorID).
		Where("voltage_id = ?", voltageID).
		Where("resistance_id = ?", resistanceID).
		Where("capacity_id = ?", capacityID).
		Where("weight_id = ?", weightID).
		Take(&params).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		params = models.RealParameters{
			NameID:       &nameID,
			ColorID:      colorID,
			VoltageID:    voltageID,
			ResistanceID: resistanceID,
			CapacityID:   &capacityID,
			WeightID:     &weightID,
		}
		if err := tx.Create(&params).Error; err != nil {
			return nil, err
		}
		logger.Info("Created real parameters row", zap.Uint("params_id", params.ID))
	}

	return &composedIDs{ParamsID: params.ID, SourceID: sourceID}, nil
}
