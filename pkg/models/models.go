// Package models holds the gorm models for the battery inventory schema:
// nine dimension lookup tables, two parameter tables and the battery_data
// fact table. Table names are kept singular to stay compatible with
// databases created by earlier deployments.
package models

import "time"

type Name struct {
	ID   uint    `gorm:"primaryKey"`
	Name *string `gorm:"size:50;uniqueIndex"`
}

func (Name) TableName() string { return "name" }

type Color struct {
	ID    uint   `gorm:"primaryKey"`
	Color string `gorm:"size:20;uniqueIndex;not null"`
}

func (Color) TableName() string { return "color" }

type Capacity struct {
	ID       uint   `gorm:"primaryKey"`
	Capacity *int64 `gorm:"uniqueIndex"`
}

func (Capacity) TableName() string { return "capacity" }

type Current struct {
	ID      uint     `gorm:"primaryKey"`
	Current *float64 `gorm:"type:decimal(3,2);uniqueIndex"`
}

func (Current) TableName() string { return "current" }

type Source struct {
	ID     uint   `gorm:"primaryKey"`
	Source string `gorm:"size:50;uniqueIndex;not null"`
}

func (Source) TableName() string { return "source" }

type Voltage struct {
	ID      uint    `gorm:"primaryKey"`
	Voltage float64 `gorm:"type:decimal(3,2);uniqueIndex;not null"`
}

func (Voltage) TableName() string { return "voltage" }

type Resistance struct {
	ID         uint    `gorm:"primaryKey"`
	Resistance float64 `gorm:"type:decimal(5,2);uniqueIndex;not null"`
}

func (Resistance) TableName() string { return "resistance" }

type Photo struct {
	ID    uint   `gorm:"primaryKey"`
	Photo []byte `gorm:"type:blob"`
}

func (Photo) TableName() string { return "photo" }

type Weight struct {
	ID     uint     `gorm:"primaryKey"`
	Weight *float64 `gorm:"type:decimal(4,3);uniqueIndex"`
}

func (Weight) TableName() string { return "weight" }

// RealParameters links one measured value per dimension. Rows are
// deduplicated by the full id tuple on insert and never edited afterwards.
type RealParameters struct {
	ID           uint  `gorm:"primaryKey"`
	NameID       *uint `gorm:"index"`
	ColorID      uint  `gorm:"not null"`
	CapacityID   *uint
	ResistanceID uint `gorm:"not null"`
	VoltageID    uint `gorm:"not null"`
	WeightID     *uint

	Name       *Name       `gorm:"foreignKey:NameID"`
	Color      *Color      `gorm:"foreignKey:ColorID"`
	Capacity   *Capacity   `gorm:"foreignKey:CapacityID"`
	Resistance *Resistance `gorm:"foreignKey:ResistanceID"`
	Voltage    *Voltage    `gorm:"foreignKey:VoltageID"`
	Weight     *Weight     `gorm:"foreignKey:WeightID"`
}

func (RealParameters) TableName() string { return "real_parameters" }

// StockParameters mirrors the manufacturer's nominal figures. The table is
// part of the schema but not reachable from the HTTP surface yet.
type StockParameters struct {
	ID                    uint `gorm:"primaryKey"`
	NameID                *uint
	CapacityID            *uint
	ResistanceID          *uint
	ChargeCurrentID       *uint
	MaxChargeCurrentID    *uint
	DischargeCurrentID    *uint
	MaxDischargeCurrentID *uint

	Name                *Name       `gorm:"foreignKey:NameID"`
	Capacity            *Capacity   `gorm:"foreignKey:CapacityID"`
	Resistance          *Resistance `gorm:"foreignKey:ResistanceID"`
	ChargeCurrent       *Current    `gorm:"foreignKey:ChargeCurrentID"`
	MaxChargeCurrent    *Current    `gorm:"foreignKey:MaxChargeCurrentID"`
	DischargeCurrent    *Current    `gorm:"foreignKey:DischargeCurrentID"`
	MaxDischargeCurrent *Current    `gorm:"foreignKey:MaxDischargeCurrentID"`
}

func (StockParameters) TableName() string { return "stock_parameters" }

// BatteryData is the fact table. Barcode is a unique 6-digit integer.
type BatteryData struct {
	ID            uint `gorm:"primaryKey"`
	Barcode       int  `gorm:"uniqueIndex;not null"`
	StockParamsID *uint
	RealParamsID  *uint
	SourceID      *uint
	PhotoID       *uint
	Datetime      time.Time

	StockParams *StockParameters `gorm:"foreignKey:StockParamsID"`
	RealParams  *RealParameters  `gorm:"foreignKey:RealParamsID"`
	Source      *Source          `gorm:"foreignKey:SourceID"`
	Photo       *Photo           `gorm:"foreignKey:PhotoID"`
}

func (BatteryData) TableName() string { return "battery_data" }
