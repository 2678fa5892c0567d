package battery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"batteryhub.xyz/battery-inventory-service/pkg/common"
	_ "batteryhub.xyz/battery-inventory-service/pkg/testing"
)

func TestGenerateBarcode(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	seen := map[int]struct{}{}
	for i := 0; i < 20; i++ {
		barcode, err := inv.Records.AddRecord(newTestInput())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, barcode, BarcodeMin)
		assert.LessOrEqual(t, barcode, BarcodeMax)

		_, dup := seen[barcode]
		assert.False(t, dup, "barcode %d handed out twice", barcode)
		seen[barcode] = struct{}{}
	}
}

func TestSampleFreeBarcodeLastSlot(t *testing.T) {
	taken := map[int]struct{}{}
	for code := 100; code <= 108; code++ {
		taken[code] = struct{}{}
	}

	// ten-value space with a single free code left
	barcode, err := sampleFreeBarcode(taken, 100, 109, maxBarcodeAttempts)
	require.NoError(t, err)
	assert.Equal(t, 109, barcode)
}

func TestSampleFreeBarcodeExhaustion(t *testing.T) {
	taken := map[int]struct{}{}
	for code := 100; code <= 109; code++ {
		taken[code] = struct{}{}
	}

	_, err := sampleFreeBarcode(taken, 100, 109, maxBarcodeAttempts)
	require.Error(t, err)
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrKindDatabase, se.Kind)
	assert.Equal(t, "Database error", se.Description())
}

func TestParseBarcode(t *testing.T) {
	valid := []string{"100000", "123456", "999999"}
	for _, raw := range valid {
		_, err := ParseBarcode(raw)
		assert.NoError(t, err, "expected %q to parse", raw)
	}

	invalid := []string{"12345", "1234567", "099999", "abc123", "12.456", "", "12345a"}
	for _, raw := range invalid {
		_, err := ParseBarcode(raw)
		require.Error(t, err, "expected %q to be rejected", raw)
		var se *ServiceError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, ErrKindValidation, se.Kind)
	}
}
