package battery

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"batteryhub.xyz/battery-inventory-service/pkg/common"
	"batteryhub.xyz/battery-inventory-service/pkg/models"
	_ "batteryhub.xyz/battery-inventory-service/pkg/testing"
)

func TestAddRecordRoundtrip(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	input := newTestInput()

	barcode, err := inv.Records.AddRecord(input)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, barcode, BarcodeMin)
	assert.LessOrEqual(t, barcode, BarcodeMax)

	view, err := inv.Records.GetRecordByBarcode(barcode)
	require.NoError(t, err)

	assert.NotZero(t, view.ID)
	assert.Equal(t, barcode, view.Barcode)
	assert.Equal(t, input.Name, view.Name)
	assert.Equal(t, input.Color, view.Color)
	assert.InDelta(t, input.Voltage, view.Voltage, 0.001)
	assert.InDelta(t, input.Resistance, view.Resistance, 0.001)
	assert.Equal(t, *input.Source, view.Source)
	assert.Equal(t, *input.Capacity, view.Capacity)
	assert.InDelta(t, *input.Weight, view.Weight.(float64), 0.001)
	assert.Equal(t, input.Datetime.Format(DatetimeLayout), view.Datetime)
}

func TestAddRecord_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	barcode, err := inv.Records.AddRecord(newTestInput())
	require.NoError(t, err)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "record" &&
			lobj["logger"] == "battery_core" &&
			lobj["msg"] == "Added record" &&
			lobj["barcode"] == float64(barcode) {
			found = true
		}
	}
	assert.True(t, found, "log not found")
}

func TestAddRecordUnknownSubstitution(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	input := newTestInput()
	input.Source = nil
	input.Capacity = nil
	input.Weight = nil

	barcode, err := inv.Records.AddRecord(input)
	require.NoError(t, err)

	view, err := inv.Records.GetRecordByBarcode(barcode)
	require.NoError(t, err)

	assert.Equal(t, unknownValue, view.Source)
	assert.Equal(t, unknownValue, view.Capacity)
	assert.Equal(t, unknownValue, view.Weight)
	assert.NotEqual(t, unknownValue, view.Name)
}

func TestGetRecordByBarcodeNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	// barcode outside the 6-digit range is a validation failure
	_, err := inv.Records.GetRecordByBarcode(12345)
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrKindValidation, se.Kind)

	// an unused code inside the range is not found
	_, err = inv.Records.GetRecordByBarcode(findFreeBarcode(t, inv))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrKindNotFound, se.Kind)
}

func TestUpdateRecord(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	barcode, err := inv.Records.AddRecord(newTestInput())
	require.NoError(t, err)

	changed := newTestInput()
	require.NoError(t, inv.Records.UpdateRecord(barcode, changed))

	view, err := inv.Records.GetRecordByBarcode(barcode)
	require.NoError(t, err)
	assert.Equal(t, changed.Name, view.Name)
	assert.Equal(t, changed.Color, view.Color)
	assert.Equal(t, changed.Datetime.Format(DatetimeLayout), view.Datetime)
}

func TestUpdateRecordNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	err := inv.Records.UpdateRecord(findFreeBarcode(t, inv), newTestInput())
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrKindNotFound, se.Kind)
}

func findFreeBarcode(t *testing.T, inv *Inventory) int {
	t.Helper()
	var existing []int
	require.NoError(t, inv.Db.Conn.Model(&models.BatteryData{}).Pluck("barcode", &existing).Error)
	taken := map[int]struct{}{}
	for _, code := range existing {
		taken[code] = struct{}{}
	}
	for candidate := BarcodeMin; candidate <= BarcodeMax; candidate++ {
		if _, used := taken[candidate]; !used {
			return candidate
		}
	}
	t.Fatal("no free barcode found")
	return 0
}

func TestDeleteRecord(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	input := newTestInput()
	barcode, err := inv.Records.AddRecord(input)
	require.NoError(t, err)

	var record models.BatteryData
	require.NoError(t, inv.Db.Conn.Where("barcode = ?", barcode).Take(&record).Error)
	paramsID := *record.RealParamsID

	require.NoError(t, inv.Records.DeleteRecord(barcode))

	_, err = inv.Records.GetRecordByBarcode(barcode)
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrKindNotFound, se.Kind)

	// dimension and params rows survive the delete
	var params models.RealParameters
	assert.NoError(t, inv.Db.Conn.Where("id = ?", paramsID).Take(&params).Error)
	var color models.Color
	assert.NoError(t, inv.Db.Conn.Where("color = ?", input.Color).Take(&color).Error)
}

func TestDeleteRecordNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	var countBefore int64
	require.NoError(t, inv.Db.Conn.Model(&models.BatteryData{}).Count(&countBefore).Error)

	err := inv.Records.DeleteRecord(findFreeBarcode(t, inv))
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrKindNotFound, se.Kind)

	var countAfter int64
	require.NoError(t, inv.Db.Conn.Model(&models.BatteryData{}).Count(&countAfter).Error)
	assert.Equal(t, countBefore, countAfter, "missed delete must not mutate")
}

func TestGetRecordsByConditions(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	input := newTestInput()
	input.Voltage = 3.85
	barcode, err := inv.Records.AddRecord(input)
	require.NoError(t, err)

	conds := BuildConditions(map[string]string{
		"name":        input.Name,
		"min_voltage": "3.8",
		"max_voltage": "3.9",
	})
	records, err := inv.Records.GetRecordsByConditions(conds)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, barcode, records[0].Barcode)

	// a range that excludes the record
	conds = BuildConditions(map[string]string{
		"name":        input.Name,
		"min_voltage": "3.9",
	})
	records, err = inv.Records.GetRecordsByConditions(conds)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetRecordsByLimit(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	_, err := inv.Records.GetRecordsByLimit(0)
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrKindValidation, se.Kind)

	// records stamped far in the future so they outrank anything the
	// other tests have inserted into the shared database
	base := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	var barcodes []int
	for i := 0; i < 3; i++ {
		input := newTestInput()
		input.Datetime = base.Add(time.Duration(i) * time.Hour)
		barcode, err := inv.Records.AddRecord(input)
		require.NoError(t, err)
		barcodes = append(barcodes, barcode)
	}

	records, err := inv.Records.GetRecordsByLimit(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, barcodes[2], records[0].Barcode, "newest first")
	assert.Equal(t, barcodes[1], records[1].Barcode)
}
