package services

import (
	"errors"
	"fmt"

	"invention-portal-api/config"
	"invention-portal-api/models"

	"gorm.io/gorm"
)

// FileInfo is the metadata the storage collaborator produces for an upload.
// The service never touches the bytes themselves.
type FileInfo struct {
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
}

type FileService struct {
	db *gorm.DB
}

func NewFileService(db *gorm.DB) *FileService {
	if db == nil {
		db = config.DB
	}
	return &FileService{db: db}
}

// SaveFileInfo persists upload metadata for an invention's attachment.
func (s *FileService) SaveFileInfo(inventionID uint, info FileInfo) (*models.InventionFile, error) {
	if info.Filename == "" || info.OriginalName == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrValidation)
	}
	if info.Size <= 0 {
		return nil, fmt.Errorf("%w: file size must be positive", ErrValidation)
	}

	if err := s.db.Where("id = ?", inventionID).First(&models.Invention{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invention %d", ErrNotFound, inventionID)
		}
		return nil, err
	}

	file := models.InventionFile{
		Filename:     info.Filename,
		OriginalName: info.OriginalName,
		MimeType:     info.MimeType,
		Size:         info.Size,
		InventionID:  inventionID,
	}
	if err := s.db.Create(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// Get returns stored metadata for a single file.
func (s *FileService) Get(fileID uint) (*models.InventionFile, error) {
	var file models.InventionFile
	if err := s.db.Where("id = ?", fileID).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: file %d", ErrNotFound, fileID)
		}
		return nil, err
	}
	return &file, nil
}
