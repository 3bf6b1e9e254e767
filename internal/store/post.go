package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	Content     string    `db:"content" json:"content"`
	Image       string    `db:"image" json:"image"`
	Category    string    `db:"category" json:"category"`
	AIPrompt    string    `db:"ai_prompt" json:"ai_prompt"`
	ReadTime    string    `db:"read_time" json:"read_time"`
	Published   bool      `db:"published" json:"published"`
	Views       int64     `db:"views" json:"views"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// PostParams holds every editable column of a post. Views are only changed
// through IncrementPostViews.
type PostParams struct {
	Title       string
	Slug        string
	Description string
	Content     string
	Image       string
	Category    string
	AIPrompt    string
	ReadTime    string
	Published   bool
}

type ListPostsParams struct {
	PublishedOnly bool
	Category      string
	Limit         int
	Offset        int
}

// PostAnalytics is the per-post view count shown on the analytics page.
type PostAnalytics struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Slug      string    `db:"slug" json:"slug"`
	Category  string    `db:"category" json:"category"`
	Views     int64     `db:"views" json:"views"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const postColumns = `id, title, slug, description, content, image, category, ai_prompt, read_time,
	published, views, created_at, updated_at`

var sqlCreatePost = `
INSERT INTO posts (title, slug, description, content, image, category, ai_prompt, read_time, published)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + postColumns

// CreatePost inserts a post. A slug that is already taken returns ErrConflict.
func (s *Store) CreatePost(ctx context.Context, params PostParams) (Post, error) {
	var post Post
	err := s.db.GetContext(ctx, &post, sqlCreatePost,
		params.Title,
		params.Slug,
		params.Description,
		params.Content,
		params.Image,
		params.Category,
		params.AIPrompt,
		params.ReadTime,
		params.Published,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Post{}, ErrConflict
		}
		return Post{}, fmt.Errorf("failed to insert post: %w", err)
	}
	return post, nil
}

var sqlGetPostByID = `
SELECT ` + postColumns + `
FROM posts
WHERE id = $1
`

func (s *Store) GetPostByID(ctx context.Context, postID uuid.UUID) (Post, error) {
	var post Post
	err := s.db.GetContext(ctx, &post, sqlGetPostByID, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

var sqlGetPostBySlug = `
SELECT ` + postColumns + `
FROM posts
WHERE slug = $1
`

func (s *Store) GetPostBySlug(ctx context.Context, slug string) (Post, error) {
	var post Post
	err := s.db.GetContext(ctx, &post, sqlGetPostBySlug, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return post, nil
}

var sqlListPosts = `
SELECT ` + postColumns + `
FROM posts
WHERE ($1 = FALSE OR published = TRUE)
  AND ($2::text = '' OR category = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

func (s *Store) ListPosts(ctx context.Context, params ListPostsParams) ([]Post, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	posts := []Post{}
	err := s.db.SelectContext(ctx, &posts, sqlListPosts, params.PublishedOnly, params.Category, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

var sqlUpdatePost = `
UPDATE posts
SET title = $2,
    slug = $3,
    description = $4,
    content = $5,
    image = $6,
    category = $7,
    ai_prompt = $8,
    read_time = $9,
    published = $10,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + postColumns

func (s *Store) UpdatePost(ctx context.Context, postID uuid.UUID, params PostParams) (Post, error) {
	var post Post
	err := s.db.GetContext(ctx, &post, sqlUpdatePost,
		postID,
		params.Title,
		params.Slug,
		params.Description,
		params.Content,
		params.Image,
		params.Category,
		params.AIPrompt,
		params.ReadTime,
		params.Published,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return Post{}, ErrNotFound
		case isUniqueViolation(err):
			return Post{}, ErrConflict
		}
		return Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

const sqlIncrementPostViews = `
UPDATE posts
SET views = views + 1
WHERE id = $1
`

func (s *Store) IncrementPostViews(ctx context.Context, postID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlIncrementPostViews, postID); err != nil {
		return fmt.Errorf("failed to increment post views: %w", err)
	}
	return nil
}

const sqlDeletePost = `
DELETE FROM posts
WHERE id = $1
`

func (s *Store) DeletePost(ctx context.Context, postID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeletePost, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlListPostAnalytics = `
SELECT id, title, slug, category, views, created_at
FROM posts
ORDER BY views DESC, created_at DESC
`

func (s *Store) ListPostAnalytics(ctx context.Context) ([]PostAnalytics, error) {
	analytics := []PostAnalytics{}
	if err := s.db.SelectContext(ctx, &analytics, sqlListPostAnalytics); err != nil {
		return nil, fmt.Errorf("failed to list post analytics: %w", err)
	}
	return analytics, nil
}
