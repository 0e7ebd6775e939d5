package services

import (
	"errors"
	"fmt"

	"invention-portal-api/config"
	"invention-portal-api/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Vote states after a toggle.
const (
	VoteNone     = "none"
	VoteLiked    = "liked"
	VoteDisliked = "disliked"
)

// ToggleResult reports the caller's vote state after the toggle and the
// invention's fresh like/dislike totals.
type ToggleResult struct {
	State    string `json:"state"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	if db == nil {
		db = config.DB
	}
	return &LikeService{db: db}
}

// Toggle applies one like/dislike action for a (invention, user) pair:
//
//	no vote  + action        -> vote stored
//	same vote repeated       -> vote removed
//	opposite vote            -> vote flipped
//
// At most one row ever exists per pair; the unique index on
// (invention_id, user_id) backs that up. When two concurrent toggles race on
// the insert, the loser hits a duplicate-key error and falls back to updating
// the row the winner created.
func (s *LikeService) Toggle(inventionID uint, userID string, isLike bool) (*ToggleResult, error) {
	if err := s.db.Where("id = ?", inventionID).First(&models.Invention{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invention %d", ErrNotFound, inventionID)
		}
		return nil, err
	}

	var existing []models.Like
	if err := s.db.Where("invention_id = ? AND user_id = ?", inventionID, userID).
		Limit(2).Find(&existing).Error; err != nil {
		return nil, err
	}
	if len(existing) > 1 {
		return nil, fmt.Errorf("%w: multiple vote rows for invention %d and user %s",
			ErrConflict, inventionID, userID)
	}

	var state string
	switch {
	case len(existing) == 0:
		row := models.Like{InventionID: inventionID, UserID: userID, IsLike: isLike}
		if err := s.db.Create(&row).Error; err != nil {
			if !isDuplicateEntry(err) {
				return nil, err
			}
			// Lost the insert race; the row now exists, so flip it instead.
			if err := s.db.Model(&models.Like{}).
				Where("invention_id = ? AND user_id = ?", inventionID, userID).
				Update("is_like", isLike).Error; err != nil {
				return nil, err
			}
		}
		state = voteState(isLike)
	case existing[0].IsLike == isLike:
		// Repeating the same vote retracts it.
		if err := s.db.Where("invention_id = ? AND user_id = ?", inventionID, userID).
			Delete(&models.Like{}).Error; err != nil {
			return nil, err
		}
		state = VoteNone
	default:
		if err := s.db.Model(&models.Like{}).
			Where("invention_id = ? AND user_id = ?", inventionID, userID).
			Update("is_like", isLike).Error; err != nil {
			return nil, err
		}
		state = voteState(isLike)
	}

	likes, dislikes, err := s.countVotes(inventionID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{State: state, Likes: likes, Dislikes: dislikes}, nil
}

func (s *LikeService) countVotes(inventionID uint) (likes, dislikes int64, err error) {
	var rows []struct {
		IsLike bool
		Total  int64
	}
	err = s.db.Model(&models.Like{}).
		Select("is_like, COUNT(*) AS total").
		Where("invention_id = ?", inventionID).
		Group("is_like").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, err
	}
	for _, row := range rows {
		if row.IsLike {
			likes = row.Total
		} else {
			dislikes = row.Total
		}
	}
	return likes, dislikes, nil
}

func voteState(isLike bool) string {
	if isLike {
		return VoteLiked
	}
	return VoteDisliked
}

// isDuplicateEntry matches a violation of the (invention_id, user_id) unique
// index. MySQL error 1062 is checked directly since gorm error translation is
// not enabled on this connection.
func isDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
