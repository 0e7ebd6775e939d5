package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"invention-portal-api/services"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// isDuplicateEntry matches a unique-index violation. MySQL error 1062 is
// checked directly since gorm error translation is not enabled on this
// connection.
func isDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func getUserIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}

func getRoleFromContext(c *gin.Context) string {
	if val, exists := c.Get("role"); exists {
		if role, ok := val.(string); ok {
			return role
		}
	}
	return ""
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id64 == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid " + name})
		return 0, false
	}
	return uint(id64), true
}

// parseTagsParam splits a comma-joined tags query value into a clean list.
// "AI/ML, IoT," becomes ["AI/ML", "IoT"].
func parseTagsParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// respondServiceError maps the service error classes onto HTTP statuses:
// 404 not found, 403 forbidden, 400 validation, 500 everything else.
// Integrity conflicts land in the 500 branch on purpose.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func uploadPath() string {
	if path := os.Getenv("UPLOAD_PATH"); path != "" {
		return path
	}
	return "./uploads"
}
