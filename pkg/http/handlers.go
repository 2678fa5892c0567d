package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"batteryhub.xyz/battery-inventory-service/pkg/battery"
)

func errorStatus(err error) int {
	var se *battery.ServiceError
	if errors.As(err, &se) {
		switch se.Kind {
		case battery.ErrKindValidation:
			return http.StatusBadRequest
		case battery.ErrKindNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

func errorBody(err error) gin.H {
	var se *battery.ServiceError
	if errors.As(err, &se) {
		return gin.H{"error": se.Message, "description": se.Description()}
	}
	return gin.H{"error": err.Error(), "description": "Unknown error"}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), errorBody(err))
}

// AddRecord handles POST /api/records.
func (rs *RestfulServer) AddRecord(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var payload battery.RecordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "description": "Validation error"})
		return
	}

	input, err := battery.ValidatePayload(&payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	barcode, err := rs.Hub.Records.AddRecord(input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": "Record added successfully.",
		"barcode": barcode,
	})
}

// GetRecords handles GET /api/records with optional filter, sort and
// limit query parameters.
func (rs *RestfulServer) GetRecords(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	args := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			args[key] = values[0]
		}
	}

	var records []battery.RecordView
	var err error

	if rawLimit, ok := args["limit"]; ok && rawLimit != "" {
		limit, convErr := strconv.Atoi(rawLimit)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       "Limit records must be a positive integer",
				"description": "Validation error",
			})
			return
		}
		records, err = rs.Hub.Records.GetRecordsByLimit(limit)
	} else {
		conds := battery.BuildConditions(args)
		records, err = rs.Hub.Records.GetRecordsByConditions(conds)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	battery.SortRecords(records, args["sort_by"], args["order_by"])

	if records == nil {
		records = []battery.RecordView{}
	}
	c.JSON(http.StatusOK, records)
}

// GetRecord handles GET /api/records/:barcode.
func (rs *RestfulServer) GetRecord(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	barcode, err := battery.ParseBarcode(c.Param("barcode"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	record, err := rs.Hub.Records.GetRecordByBarcode(barcode)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateRecord handles PUT /api/records/:barcode.
func (rs *RestfulServer) UpdateRecord(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	barcode, err := battery.ParseBarcode(c.Param("barcode"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var payload battery.RecordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "description": "Validation error"})
		return
	}

	input, err := battery.ValidatePayload(&payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := rs.Hub.Records.UpdateRecord(barcode, input); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Record updated successfully."})
}

// DeleteRecord handles DELETE /api/records/:barcode.
func (rs *RestfulServer) DeleteRecord(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	barcode, err := battery.ParseBarcode(c.Param("barcode"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := rs.Hub.Records.DeleteRecord(barcode); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Record deleted successfully."})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
