package services

import (
	"errors"
	"fmt"
	"strings"

	"invention-portal-api/config"
	"invention-portal-api/models"

	"gorm.io/gorm"
)

// InventionFilter narrows List results. Zero values mean "no restriction".
type InventionFilter struct {
	Status string
	Tags   []string
}

// EngagementCounts are the derived per-invention counters shown in list views.
type EngagementCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	Comments int64 `json:"comments"`
	Files    int64 `json:"files"`
}

type InventionSummary struct {
	models.Invention
	Tags   []string         `json:"tags"`
	Author models.User      `json:"author"`
	Counts EngagementCounts `json:"counts"`
}

type InventionDetail struct {
	models.Invention
	Tags     []string               `json:"tags"`
	Author   models.User            `json:"author"`
	Files    []models.InventionFile `json:"files"`
	Comments []models.Comment       `json:"comments"`
	Likes    []models.Like          `json:"likes"`
	Counts   EngagementCounts       `json:"counts"`
}

type CreateInventionInput struct {
	Title       string
	Description string
	Tags        []string
}

type InventionService struct {
	db *gorm.DB
}

func NewInventionService(db *gorm.DB) *InventionService {
	if db == nil {
		db = config.DB
	}
	return &InventionService{db: db}
}

// List returns inventions newest-first, enriched with author and engagement
// counts. The status filter is an exact match; the tag filter matches any
// overlap between the invention's tags and the requested set. Inventions whose
// author row is gone are excluded by the inner join.
//
// The result is assembled from a constant number of queries: one for the
// filtered inventions, then one batched query each for authors, vote counts,
// comment counts, file counts and tags.
func (s *InventionService) List(filter InventionFilter) ([]InventionSummary, error) {
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, filter.Status)
	}

	q := s.db.Model(&models.Invention{}).
		Joins("JOIN users ON users.user_id = inventions.author_id")
	if filter.Status != "" {
		q = q.Where("inventions.status = ?", filter.Status)
	}
	if len(filter.Tags) > 0 {
		q = q.Where("inventions.id IN (SELECT invention_id FROM invention_tags WHERE tag IN ?)", filter.Tags)
	}

	var inventions []models.Invention
	if err := q.Order("inventions.created_at DESC, inventions.id DESC").Find(&inventions).Error; err != nil {
		return nil, err
	}
	if len(inventions) == 0 {
		return []InventionSummary{}, nil
	}

	ids := make([]uint, 0, len(inventions))
	authorIDs := make([]string, 0, len(inventions))
	seenAuthors := make(map[string]bool, len(inventions))
	for _, inv := range inventions {
		ids = append(ids, inv.ID)
		if !seenAuthors[inv.AuthorID] {
			seenAuthors[inv.AuthorID] = true
			authorIDs = append(authorIDs, inv.AuthorID)
		}
	}

	authors, err := s.loadAuthors(authorIDs)
	if err != nil {
		return nil, err
	}
	counts, err := s.loadCounts(ids)
	if err != nil {
		return nil, err
	}
	tags, err := s.loadTags(ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]InventionSummary, 0, len(inventions))
	for _, inv := range inventions {
		author, ok := authors[inv.AuthorID]
		if !ok {
			// The join already filtered these out; seeing one here means the
			// author vanished between the two queries. Skip it.
			continue
		}
		summaries = append(summaries, InventionSummary{
			Invention: inv,
			Tags:      tags[inv.ID],
			Author:    author,
			Counts:    counts[inv.ID],
		})
	}
	return summaries, nil
}

// Get returns the full invention record with author, files, comments (each
// with its author, newest first), likes and tags. A missing invention or a
// missing author both surface as ErrNotFound: orphaned inventions are
// invisible everywhere, matching the List join.
func (s *InventionService) Get(id uint) (*InventionDetail, error) {
	var inv models.Invention
	if err := s.db.Where("id = ?", id).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invention %d", ErrNotFound, id)
		}
		return nil, err
	}

	var author models.User
	if err := s.db.Where("user_id = ?", inv.AuthorID).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invention %d", ErrNotFound, id)
		}
		return nil, err
	}

	var files []models.InventionFile
	if err := s.db.Where("invention_id = ?", id).Order("created_at ASC, id ASC").Find(&files).Error; err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := s.db.Where("invention_id = ?", id).Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	if err := s.attachCommentAuthors(comments); err != nil {
		return nil, err
	}

	var likes []models.Like
	if err := s.db.Where("invention_id = ?", id).Find(&likes).Error; err != nil {
		return nil, err
	}

	tags, err := s.loadTags([]uint{id})
	if err != nil {
		return nil, err
	}

	counts := EngagementCounts{
		Comments: int64(len(comments)),
		Files:    int64(len(files)),
	}
	for _, l := range likes {
		if l.IsLike {
			counts.Likes++
		} else {
			counts.Dislikes++
		}
	}

	return &InventionDetail{
		Invention: inv,
		Tags:      tags[id],
		Author:    author,
		Files:     files,
		Comments:  comments,
		Likes:     likes,
		Counts:    counts,
	}, nil
}

// Create stores a new pending invention with its ordered tag rows.
func (s *InventionService) Create(authorID string, input CreateInventionInput) (*InventionSummary, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}

	var author models.User
	if err := s.db.Where("user_id = ?", authorID).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, authorID)
		}
		return nil, err
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}

	inv := models.Invention{
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
		AuthorID:    authorID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		for i, tag := range tags {
			row := models.InventionTag{InventionID: inv.ID, Position: i, Tag: tag}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &InventionSummary{
		Invention: inv,
		Tags:      tags,
		Author:    author,
	}, nil
}

// Delete removes an invention and all of its children (files, comments,
// likes, tags) in one transaction. Only the author or an admin may delete.
// The removed file records are returned so the caller can clean up the disk.
func (s *InventionService) Delete(id uint, actorID, role string) ([]models.InventionFile, error) {
	var inv models.Invention
	if err := s.db.Where("id = ?", id).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invention %d", ErrNotFound, id)
		}
		return nil, err
	}

	if inv.AuthorID != actorID && role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: only the author or an admin may delete invention %d", ErrForbidden, id)
	}

	var files []models.InventionFile
	if err := s.db.Where("invention_id = ?", id).Find(&files).Error; err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invention_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invention_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invention_id = ?", id).Delete(&models.InventionFile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invention_id = ?", id).Delete(&models.InventionTag{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Invention{}).Error
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *InventionService) loadAuthors(userIDs []string) (map[string]models.User, error) {
	var users []models.User
	if err := s.db.Where("user_id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}
	return byID, nil
}

// loadCounts gathers like/dislike, comment and file totals for the given
// inventions with one grouped query per table.
func (s *InventionService) loadCounts(ids []uint) (map[uint]EngagementCounts, error) {
	counts := make(map[uint]EngagementCounts, len(ids))

	var voteRows []struct {
		InventionID uint
		IsLike      bool
		Total       int64
	}
	if err := s.db.Model(&models.Like{}).
		Select("invention_id, is_like, COUNT(*) AS total").
		Where("invention_id IN ?", ids).
		Group("invention_id, is_like").
		Scan(&voteRows).Error; err != nil {
		return nil, err
	}
	for _, row := range voteRows {
		c := counts[row.InventionID]
		if row.IsLike {
			c.Likes = row.Total
		} else {
			c.Dislikes = row.Total
		}
		counts[row.InventionID] = c
	}

	var commentRows []struct {
		InventionID uint
		Total       int64
	}
	if err := s.db.Model(&models.Comment{}).
		Select("invention_id, COUNT(*) AS total").
		Where("invention_id IN ?", ids).
		Group("invention_id").
		Scan(&commentRows).Error; err != nil {
		return nil, err
	}
	for _, row := range commentRows {
		c := counts[row.InventionID]
		c.Comments = row.Total
		counts[row.InventionID] = c
	}

	var fileRows []struct {
		InventionID uint
		Total       int64
	}
	if err := s.db.Model(&models.InventionFile{}).
		Select("invention_id, COUNT(*) AS total").
		Where("invention_id IN ?", ids).
		Group("invention_id").
		Scan(&fileRows).Error; err != nil {
		return nil, err
	}
	for _, row := range fileRows {
		c := counts[row.InventionID]
		c.Files = row.Total
		counts[row.InventionID] = c
	}

	return counts, nil
}

func (s *InventionService) loadTags(ids []uint) (map[uint][]string, error) {
	var rows []models.InventionTag
	if err := s.db.Where("invention_id IN ?", ids).
		Order("invention_id ASC, position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	tags := make(map[uint][]string, len(ids))
	for _, row := range rows {
		tags[row.InventionID] = append(tags[row.InventionID], row.Tag)
	}
	return tags, nil
}

func (s *InventionService) attachCommentAuthors(comments []models.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	authorIDs := make([]string, 0, len(comments))
	seen := make(map[string]bool, len(comments))
	for _, c := range comments {
		if !seen[c.AuthorID] {
			seen[c.AuthorID] = true
			authorIDs = append(authorIDs, c.AuthorID)
		}
	}
	authors, err := s.loadAuthors(authorIDs)
	if err != nil {
		return err
	}
	for i := range comments {
		if author, ok := authors[comments[i].AuthorID]; ok {
			u := author
			comments[i].Author = &u
		}
	}
	return nil
}
