package battery

import (
	"batteryhub.xyz/battery-inventory-service/pkg/db"
)

// IRecords is the record service surface consumed by the HTTP layer.
type IRecords interface {
	AddRecord(input *RecordInput) (int, error)
	UpdateRecord(barcode int, input *RecordInput) error
	GetRecordByBarcode(barcode int) (*RecordView, error)
	GetRecordsByConditions(conds []Condition) ([]RecordView, error)
	GetRecordsByLimit(limit int) ([]RecordView, error)
	DeleteRecord(barcode int) error
}

// Inventory is the service core. It holds no per-request state; all
// persisted state lives behind Db.
type Inventory struct {
	Db      db.DB
	Records IRecords
}

type ServiceOpts struct {
	Records IRecords
}

func (inv *Inventory) WithServices(opts ServiceOpts) *Inventory {
	if opts.Records != nil {
		inv.Records = opts.Records
	}
	return inv
}

type IRecordsImpl struct {
	inv *Inventory
}

func (ir *IRecordsImpl) AddRecord(input *RecordInput) (int, error) {
	return ir.inv.addRecord(input)
}

func (ir *IRecordsImpl) UpdateRecord(barcode int, input *RecordInput) error {
	return ir.inv.updateRecord(barcode, input)
}

func (ir *IRecordsImpl) GetRecordByBarcode(barcode int) (*RecordView, error) {
	return ir.inv.getRecordByBarcode(barcode)
}

func (ir *IRecordsImpl) GetRecordsByConditions(conds []Condition) ([]RecordView, error) {
	return ir.inv.getRecordsByConditions(conds)
}

func (ir *IRecordsImpl) GetRecordsByLimit(limit int) ([]RecordView, error) {
	return ir.inv.getRecordsByLimit(limit)
}

func (ir *IRecordsImpl) DeleteRecord(barcode int) error {
	return ir.inv.deleteRecord(barcode)
}

func (inv *Inventory) GetIRecords() IRecords {
	return &IRecordsImpl{inv: inv}
}
