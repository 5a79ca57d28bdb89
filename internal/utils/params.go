package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetTableID(ctx *gin.Context) (string, error) {
	tableID := ctx.Param("table_id")

	if tableID == "" {
		return "", errors.New("table ID not found")
	}

	return tableID, nil
}

func GetRequestID(ctx *gin.Context) (string, error) {
	requestID := ctx.Param("request_id")

	if requestID == "" {
		return "", errors.New("request ID not found")
	}

	return requestID, nil
}

// GetPageParams reads skip/limit query parameters. Skip must be >= 0 and
// limit > 0; there is no upper bound on limit.
func GetPageParams(ctx *gin.Context) (int, int, error) {
	skip := 0
	limit := 100

	if raw := ctx.Query("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return 0, 0, errors.New("invalid skip parameter")
		}
		skip = parsed
	}

	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return 0, 0, errors.New("invalid limit parameter")
		}
		limit = parsed
	}

	return skip, limit, nil
}
