package tools

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPage 读取 page、page_size 查询参数，可变参数依次是 defaultPageSize, maxPageSize
func GetPage(c *gin.Context, defaults ...uint) (offset, limit int) {
	defaultPageSize, maxPageSize := 100, 500
	if len(defaults) > 0 && defaults[0] <= math.MaxInt {
		defaultPageSize = int(defaults[0])
	}
	if len(defaults) > 1 && defaults[1] <= math.MaxInt {
		maxPageSize = int(defaults[1])
	}

	limit, err := strconv.Atoi(c.Query("page_size"))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	} else if limit > maxPageSize {
		limit = maxPageSize
	}
	if limit < 1 {
		limit = 1
	}
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 0, limit
	}
	// 页码过大时截断，offset 不会溢出为负数
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}
	return (page - 1) * limit, limit
}
