package handler

import (
	"github.com/gin-gonic/gin"

	"shiftboard/internal/service"
	"shiftboard/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, "user_id")
}

// MustGetOrganizationID 从 Gin 上下文中安全提取 organization_id。
func MustGetOrganizationID(c *gin.Context) (string, bool) {
	return mustGetString(c, "organization_id")
}

// MustGetViewer 组合当前组织与用户，作为 Service 层的调用者标识
func MustGetViewer(c *gin.Context) (service.Viewer, bool) {
	orgID, ok := MustGetOrganizationID(c)
	if !ok {
		return service.Viewer{}, false
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return service.Viewer{}, false
	}
	return service.Viewer{OrganizationID: orgID, UserID: userID}, true
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}
