package battery

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"batteryhub.xyz/battery-inventory-service/pkg/db"
)

func GetMockInventoryWithMemorySqliteDialector(t *testing.T, useMockRecords bool) (
	*gomock.Controller,
	*Inventory,
	*MockIRecords,
) {
	ctrl := gomock.NewController(t)

	mockRecords := NewMockIRecords(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	inventory := &Inventory{Db: *dbInstance}

	recordsService := inventory.GetIRecords()
	if useMockRecords {
		recordsService = mockRecords
	}

	inventory.WithServices(ServiceOpts{
		Records: recordsService,
	})

	return ctrl, inventory, mockRecords
}

// newTestInput builds a fully-populated input with unique dimension
// values, so tests sharing the in-memory database never collide on the
// unique value constraints.
func newTestInput() *RecordInput {
	source := "src-" + uuid.NewString()[:8]
	capacity := int64(500 + time.Now().UnixNano()%3000)
	weight := 10.0 + float64(time.Now().UnixNano()%1000)/100.0
	return &RecordInput{
		Name:       "n-" + uuid.NewString()[:6],
		Color:      "c-" + uuid.NewString()[:12],
		Resistance: float64(time.Now().UnixNano()%90000)/100.0 + 0.01,
		Voltage:    float64(time.Now().UnixNano()%440)/100.0 + 0.01,
		Source:     &source,
		Capacity:   &capacity,
		Weight:     &weight,
		Datetime:   time.Now().Truncate(time.Second),
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
