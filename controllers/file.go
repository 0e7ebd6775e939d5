package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"invention-portal-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadFile stores an attachment for an invention: bytes to disk under a
// generated name, metadata through the file service. The original filename is
// kept only as metadata and never used on disk.
// POST /api/v1/inventions/:id/files (multipart, field "file")
func UploadFile(c *gin.Context) {
	if _, ok := getUserIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication context missing"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file is required"})
		return
	}

	maxSizeMB, err := strconv.Atoi(os.Getenv("MAX_FILE_SIZE_MB"))
	if err != nil || maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file exceeds maximum size"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	storedName := uuid.NewString() + ext
	fullPath := filepath.Join(uploadPath(), storedName)

	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save file"})
		return
	}

	svc := services.NewFileService(nil)
	saved, err := svc.SaveFileInfo(id, services.FileInfo{
		Filename:     storedName,
		OriginalName: file.Filename,
		MimeType:     file.Header.Get("Content-Type"),
		Size:         file.Size,
	})
	if err != nil {
		os.Remove(fullPath)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": saved})
}

// DownloadFile streams a stored attachment under its original name.
// GET /api/v1/files/:file_id/download
func DownloadFile(c *gin.Context) {
	fileID, ok := parseIDParam(c, "file_id")
	if !ok {
		return
	}

	svc := services.NewFileService(nil)
	file, err := svc.Get(fileID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	fullPath := filepath.Join(uploadPath(), file.Filename)
	if _, err := os.Stat(fullPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "file is missing from storage"})
		return
	}

	c.FileAttachment(fullPath, file.OriginalName)
}
