package processor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"shop-admin/internal/observability"
	"shop-admin/internal/store"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrSlugTaken       = errors.New("slug already in use")
	ErrInvalidSlug     = errors.New("slug must be lowercase letters, digits and dashes")
	ErrInvalidCategory = errors.New("unsupported category")
	ErrFailedOperation = errors.New("post operation failed")
)

// Categories are the content categories shared by posts and products.
var Categories = []string{"Mindset", "Skillset", "Toolset"}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

const (
	defaultReadTime = "5 min read"
	defaultCategory = "Mindset"
	// dateLayout renders created_at the way the blog shows it, e.g. "March 4, 2025".
	dateLayout = "January 2, 2006"
)

type PostProcessor struct {
	store  PostStore
	logger *observability.Logger
}

func New(store PostStore, logger *observability.Logger) PostProcessor {
	return PostProcessor{
		store:  store,
		logger: logger,
	}
}

// PostInput holds the editable fields of a post. Empty Category and ReadTime
// take their defaults.
type PostInput struct {
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

// Post is a stored post with its display date.
type Post struct {
	store.Post
	Date string `json:"date"`
}

func Present(post store.Post) Post {
	return Post{Post: post, Date: post.CreatedAt.UTC().Format(dateLayout)}
}

func (p *PostProcessor) CreatePost(ctx context.Context, input PostInput) (Post, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "slug", Value: input.Slug})

	params, err := toParams(input)
	if err != nil {
		return Post{}, err
	}

	post, err := p.store.CreatePost(ctx, params)
	if err != nil {
		return Post{}, p.mapStoreError(ctx, "failed to create post", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "post_id", Value: post.ID.String()})
	p.logger.Info(ctx, "post created")
	return Present(post), nil
}

func (p *PostProcessor) UpdatePost(ctx context.Context, postID uuid.UUID, input PostInput) (Post, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "post_id", Value: postID.String()})

	params, err := toParams(input)
	if err != nil {
		return Post{}, err
	}

	post, err := p.store.UpdatePost(ctx, postID, params)
	if err != nil {
		return Post{}, p.mapStoreError(ctx, "failed to update post", err)
	}

	p.logger.Info(ctx, "post updated")
	return Present(post), nil
}

func (p *PostProcessor) GetPost(ctx context.Context, postID uuid.UUID) (Post, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "post_id", Value: postID.String()})

	post, err := p.store.GetPostByID(ctx, postID)
	if err != nil {
		return Post{}, p.mapStoreError(ctx, "failed to get post", err)
	}
	return Present(post), nil
}

func (p *PostProcessor) ListPosts(ctx context.Context, params store.ListPostsParams) ([]Post, error) {
	posts, err := p.store.ListPosts(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to list posts", err)
		return nil, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	out := make([]Post, 0, len(posts))
	for _, post := range posts {
		out = append(out, Present(post))
	}
	return out, nil
}

func (p *PostProcessor) DeletePost(ctx context.Context, postID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "post_id", Value: postID.String()})

	if err := p.store.DeletePost(ctx, postID); err != nil {
		return p.mapStoreError(ctx, "failed to delete post", err)
	}

	p.logger.Info(ctx, "post deleted")
	return nil
}

func (p *PostProcessor) mapStoreError(ctx context.Context, msg string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrPostNotFound
	case errors.Is(err, store.ErrConflict):
		return ErrSlugTaken
	}
	p.logger.Error(ctx, msg, err)
	return fmt.Errorf("%w: %v", ErrFailedOperation, err)
}

// ValidCategory reports whether category is one of Categories.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func toParams(input PostInput) (store.PostParams, error) {
	slug := strings.TrimSpace(input.Slug)
	if !slugPattern.MatchString(slug) {
		return store.PostParams{}, ErrInvalidSlug
	}

	category := input.Category
	if category == "" {
		category = defaultCategory
	}
	if !ValidCategory(category) {
		return store.PostParams{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	readTime := strings.TrimSpace(input.ReadTime)
	if readTime == "" {
		readTime = defaultReadTime
	}

	return store.PostParams{
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Description: input.Description,
		Content:     input.Content,
		Image:       input.Image,
		Category:    category,
		AIPrompt:    input.AIPrompt,
		ReadTime:    readTime,
		Published:   input.Published,
	}, nil
}
