package services

import (
	"errors"
	"fmt"
	"strings"

	"invention-portal-api/config"
	"invention-portal-api/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	if db == nil {
		db = config.DB
	}
	return &CommentService{db: db}
}

// Create stores a comment on an invention. Comments are immutable; there is
// no edit or delete beyond the cascade when the invention goes away.
func (s *CommentService) Create(inventionID uint, authorID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", ErrValidation)
	}

	if err := s.db.Where("id = ?", inventionID).First(&models.Invention{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invention %d", ErrNotFound, inventionID)
		}
		return nil, err
	}

	var author models.User
	if err := s.db.Where("user_id = ?", authorID).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, authorID)
		}
		return nil, err
	}

	comment := models.Comment{
		Content:     content,
		InventionID: inventionID,
		AuthorID:    authorID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	comment.Author = &author
	return &comment, nil
}
