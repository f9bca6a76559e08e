package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/configs"
)

// APIResponse 定义了统一的响应信封结构，服务端与客户端共用同一形态
type APIResponse struct {
	Success bool        `json:"success"`         // 是否成功
	Message string      `json:"message"`         // 响应消息
	Data    interface{} `json:"data,omitempty"`  // 响应数据
	Error   string      `json:"error,omitempty"` // 错误详情（仅非生产环境返回堆栈类信息）
}

// RespondSuccess 发送一个标准的成功 JSON 响应
// status: HTTP 状态码 (例如 http.StatusOK, http.StatusCreated)
// data: 要包含在响应中的数据
// message: (可选) 成功消息，为空时使用默认值
func RespondSuccess(c *gin.Context, status int, data interface{}, message string) {
	if message == "" {
		message = "操作成功"
	}
	c.JSON(status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondError 发送一个标准的错误 JSON 响应并中断后续处理
func RespondError(c *gin.Context, status int, message string, errDetail ...string) {
	resp := APIResponse{
		Success: false,
		Message: message,
	}
	if len(errDetail) > 0 && errDetail[0] != "" {
		resp.Error = errDetail[0]
	}
	c.AbortWithStatusJSON(status, resp)
}

// RespondValidationError 发送参数校验错误响应 (400)
func RespondValidationError(c *gin.Context, message string, details ...string) {
	RespondError(c, http.StatusBadRequest, message, details...)
}

// RespondUnauthorizedError 发送未认证错误响应 (401)。
// 不区分令牌缺失/过期/被篡改，统一提示，避免泄露失败原因。
func RespondUnauthorizedError(c *gin.Context, message ...string) {
	msg := "未认证或认证令牌无效"
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	RespondError(c, http.StatusUnauthorized, msg)
}

// RespondForbiddenError 发送权限不足错误响应 (403)
func RespondForbiddenError(c *gin.Context, message string) {
	RespondError(c, http.StatusForbidden, message)
}

// RespondNotFoundError 发送资源未找到错误响应 (404)
func RespondNotFoundError(c *gin.Context, message string) {
	RespondError(c, http.StatusNotFound, message)
}

// RespondInternalServerError 发送服务器内部错误响应 (500)。
// errDetail 仅在非生产环境下返回给调用方，生产环境只保留通用提示。
func RespondInternalServerError(c *gin.Context, message string, errDetail ...string) {
	if configs.IsProduction() {
		RespondError(c, http.StatusInternalServerError, message)
		return
	}
	RespondError(c, http.StatusInternalServerError, message, errDetail...)
}
