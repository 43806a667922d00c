package controller

import (
	"github.com/gin-gonic/gin"
)

const (
	APIVersion    = "1.0"
	ServiceType   = "wordcloud"
	ServerVersion = "0.1.0"
)

const responseKey = "ninesong-response"

func envelope(status string) gin.H {
	return gin.H{
		"status":        status,
		"version":       APIVersion,
		"type":          ServiceType,
		"serverVersion": ServerVersion,
	}
}

// ErrorResponse 统一错误响应并中止后续处理
func ErrorResponse(c *gin.Context, httpStatus int, code, message string) {
	body := envelope("failed")
	body["error"] = gin.H{
		"code":    code,
		"message": message,
	}
	c.AbortWithStatusJSON(httpStatus, gin.H{responseKey: body})
}

// SuccessResponse 统一成功响应，数据挂在 key 下
func SuccessResponse(c *gin.Context, key string, data interface{}, count int) {
	body := envelope("ok")
	body[key] = data
	body["count"] = count
	c.JSON(200, gin.H{responseKey: body})
}
