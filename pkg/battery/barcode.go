package battery

import (
	"fmt"
	"math/rand"
	"strconv"

	"gorm.io/gorm"

	"batteryhub.xyz/battery-inventory-service/pkg/models"
)

const (
	BarcodeMin = 100000
	BarcodeMax = 999999

	// The barcode space holds 900k values; with a sane fill level a free
	// code is found in a couple of draws. The cap keeps a nearly-full
	// table from turning the sampler into an endless loop.
	maxBarcodeAttempts = 10000
)

// sampleFreeBarcode rejection-samples the [min, max] code space against
// the taken set, giving up with a database-kind failure once the attempt
// cap is spent.
func sampleFreeBarcode(taken map[int]struct{}, min, max, attempts int) (int, error) {
	for i := 0; i < attempts; i++ {
		candidate := min + rand.Intn(max-min+1)
		if _, used := taken[candidate]; !used {
			return candidate, nil
		}
	}
	return 0, newDatabaseError(fmt.Errorf("no free barcode found after %d attempts", attempts))
}

// generateBarcode rejection-samples a 6-digit code against a snapshot of
// the codes already taken. Fails closed when the cap is hit.
func (inv *Inventory) generateBarcode(tx *gorm.DB) (int, error) {
	var existing []int
	if err := tx.Model(&models.BatteryData{}).Pluck("barcode", &existing).Error; err != nil {
		return 0, err
	}

	taken := make(map[int]struct{}, len(existing))
	for _, code := range existing {
		taken[code] = struct{}{}
	}

	return sampleFreeBarcode(taken, BarcodeMin, BarcodeMax, maxBarcodeAttempts)
}

// ParseBarcode validates a barcode from a URL path segment: numeric and
// exactly 6 decimal digits.
func ParseBarcode(raw string) (int, error) {
	code, err := strconv.Atoi(raw)
	if err != nil || len(raw) != 6 {
		return 0, newValidationError("Barcode must be an int and a 6-digit number.")
	}
	if code < BarcodeMin || code > BarcodeMax {
		return 0, newValidationError("Barcode must be an int and a 6-digit number.")
	}
	return code, nil
}
