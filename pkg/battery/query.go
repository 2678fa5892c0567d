package battery

import (
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Condition is one AND-combined predicate over the joined record query.
type Condition struct {
	Expr string
	Args []any
}

type rangeAttr struct {
	column string
	minKey string
	maxKey string
}

var rangeAttrs = []rangeAttr{
	{column: "voltage.voltage", minKey: "min_voltage", maxKey: "max_voltage"},
	{column: "resistance.resistance", minKey: "min_resistance", maxKey: "max_resistance"},
	{column: "capacity.capacity", minKey: "min_capacity", maxKey: "max_capacity"},
}

var exactAttrs = map[string]string{
	"name":   "name.name",
	"color":  "color.color",
	"source": "source.source",
}

// BuildConditions translates recognized filter keys into predicates.
// Both bounds present gives an inclusive BETWEEN, a single bound gives a
// strict comparison. Empty or unparsable values count as absent and
// unrecognized keys are ignored.
func BuildConditions(args map[string]string) []Condition {
	var conds []Condition

	numArg := func(key string) (float64, bool) {
		raw, ok := args[key]
		if !ok || raw == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	for _, attr := range rangeAttrs {
		minVal, hasMin := numArg(attr.minKey)
		maxVal, hasMax := numArg(attr.maxKey)
		switch {
		case hasMin && hasMax:
			conds = append(conds, Condition{Expr: attr.column + " BETWEEN ? AND ?", Args: []any{minVal, maxVal}})
		case hasMin:
			conds = append(conds, Condition{Expr: attr.column + " > ?", Args: []any{minVal}})
		case hasMax:
			conds = append(conds, Condition{Expr: attr.column + " < ?", Args: []any{maxVal}})
		}
	}

	for key, column := range exactAttrs {
		if raw, ok := args[key]; ok && raw != "" {
			conds = append(conds, Condition{Expr: column + " = ?", Args: []any{raw}})
		}
	}

	return conds
}

// baseQuery is the joined SELECT every read path starts from. Required
// dimensions are inner joins, optional ones outer joins so records with
// unset name/source/weight/capacity still come back.
func (inv *Inventory) baseQuery(tx *gorm.DB) *gorm.DB {
	return tx.Table("battery_data").
		Select(strings.Join([]string{
			"battery_data.id AS id",
			"battery_data.barcode AS barcode",
			"battery_data.datetime AS datetime",
			"name.name AS name",
			"color.color AS color",
			"voltage.voltage AS voltage",
			"resistance.resistance AS resistance",
			"source.source AS source",
			"weight.weight AS weight",
			"capacity.capacity AS capacity",
		}, ", ")).
		Joins("JOIN real_parameters ON battery_data.real_params_id = real_parameters.id").
		Joins("LEFT JOIN source ON battery_data.source_id = source.id").
		Joins("LEFT JOIN name ON real_parameters.name_id = name.id").
		Joins("JOIN color ON real_parameters.color_id = color.id").
		Joins("JOIN resistance ON real_parameters.resistance_id = resistance.id").
		Joins("JOIN voltage ON real_parameters.voltage_id = voltage.id").
		Joins("LEFT JOIN weight ON real_parameters.weight_id = weight.id").
		Joins("LEFT JOIN capacity ON real_parameters.capacity_id = capacity.id")
}

// sortKey projects one serialized field into a comparable value. Missing
// or "Unknown" fields sort as 0.
func sortKey(r *RecordView, field string) (num float64, str string, isStr bool) {
	switch field {
	case "id":
		return float64(r.ID), "", false
	case "barcode":
		return float64(r.Barcode), "", false
	case "voltage":
		return r.Voltage, "", false
	case "resistance":
		return r.Resistance, "", false
	case "weight":
		if v, ok := r.Weight.(float64); ok {
			return v, "", false
		}
		return 0, "", false
	case "capacity":
		if v, ok := r.Capacity.(int64); ok {
			return float64(v), "", false
		}
		return 0, "", false
	case "name":
		return 0, r.Name, true
	case "color":
		return 0, r.Color, true
	case "source":
		return 0, r.Source, true
	case "datetime":
		return 0, r.Datetime, true
	default:
		return 0, "", false
	}
}

// SortRecords orders serialized records in memory by sortBy. An empty
// sortBy is a no-op even when orderBy is set; an empty orderBy defaults
// to ascending.
func SortRecords(records []RecordView, sortBy, orderBy string) {
	if sortBy == "" {
		return
	}

	less := func(i, j int) bool {
		ni, si, strI := sortKey(&records[i], sortBy)
		nj, sj, strJ := sortKey(&records[j], sortBy)
		if strI && strJ {
			return si < sj
		}
		return ni < nj
	}

	if orderBy == "desc" {
		sort.SliceStable(records, func(i, j int) bool { return less(j, i) })
		return
	}
	sort.SliceStable(records, less)
}
