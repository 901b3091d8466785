// AngelaMos | 2026
// service.go

package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/angelamos/streamora/internal/authz"
	"github.com/angelamos/streamora/internal/core"
)

// VideoChecker is the only thing this package needs from the video
// domain: existence, for the 404 before a comment is accepted.
type VideoChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo   Repository
	videos VideoChecker
}

func NewService(repo Repository, videos VideoChecker) *Service {
	return &Service{
		repo:   repo,
		videos: videos,
	}
}

func (s *Service) Create(
	ctx context.Context,
	videoID, authorID string,
	req CreateCommentRequest,
) (*Comment, error) {
	exists, err := s.videos.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, core.NotFoundError("Video")
	}

	comment := &Comment{
		ID:       uuid.New().String(),
		VideoID:  videoID,
		AuthorID: authorID,
		Body:     req.Text,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *Service) ListByVideo(
	ctx context.Context,
	videoID string,
	params ListParams,
) ([]CommentWithAuthor, int, ListParams, error) {
	params.Normalize()

	exists, err := s.videos.Exists(ctx, videoID)
	if err != nil {
		return nil, 0, params, err
	}
	if !exists {
		return nil, 0, params, core.NotFoundError("Video")
	}

	comments, total, err := s.repo.ListByVideo(ctx, videoID, params)
	if err != nil {
		return nil, 0, params, err
	}

	return comments, total, params, nil
}

// Delete applies the ownership policy: the author or an admin, nobody
// else.
func (s *Service) Delete(
	ctx context.Context,
	caller *authz.Identity,
	id string,
) error {
	if uuid.Validate(id) != nil {
		return fmt.Errorf("delete comment: %w", core.ErrNotFound)
	}

	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanModify(caller, comment.AuthorID) {
		return core.ForbiddenError("Not authorized to delete this comment")
	}

	return s.repo.Delete(ctx, id)
}
