// AngelaMos | 2026
// service.go

package video

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/angelamos/streamora/internal/authz"
	"github.com/angelamos/streamora/internal/core"
	"github.com/angelamos/streamora/internal/media"
)

type Service struct {
	repo    Repository
	storage *media.Storage
}

// NewService accepts a nil storage; upload-url minting is then reported
// as unavailable while everything else keeps working.
func NewService(repo Repository, storage *media.Storage) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
	}
}

func (s *Service) Create(
	ctx context.Context,
	ownerID string,
	req CreateVideoRequest,
) (*VideoWithOwner, error) {
	video := &Video{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Tags:         core.TextArray(req.Tags),
	}
	if video.Tags == nil {
		video.Tags = core.TextArray{}
	}

	if err := s.repo.Create(ctx, video); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, video.ID, ownerID)
}

func (s *Service) UploadURL(
	ctx context.Context,
	req UploadURLRequest,
) (*media.UploadTarget, error) {
	if s.storage == nil {
		return nil, core.NewAppError(nil,
			"Uploads are not enabled", http.StatusServiceUnavailable)
	}

	folder := "videos"
	if req.Kind == "thumbnail" {
		folder = "thumbnails"
	}

	return s.storage.PresignUpload(ctx, folder, req.Ext)
}

func (s *Service) Get(
	ctx context.Context,
	id, viewerID string,
) (*VideoWithOwner, error) {
	if uuid.Validate(id) != nil {
		return nil, fmt.Errorf("get video: %w", core.ErrNotFound)
	}

	return s.repo.GetByID(ctx, id, viewerID)
}

// PlaybackURL resolves the URL a client should stream from. Objects in
// our bucket get a fresh presigned GET; an externally hosted video
// plays from its stored URL directly, as does everything when signing
// is not configured.
func (s *Service) PlaybackURL(ctx context.Context, id string) (string, error) {
	if uuid.Validate(id) != nil {
		return "", fmt.Errorf("playback url: %w", core.ErrNotFound)
	}

	video, err := s.repo.GetByID(ctx, id, "")
	if err != nil {
		return "", err
	}

	if s.storage == nil {
		return video.VideoURL, nil
	}

	key, ok := s.storage.KeyForURL(video.VideoURL)
	if !ok {
		return video.VideoURL, nil
	}

	return s.storage.PresignPlayback(ctx, key)
}

func (s *Service) List(
	ctx context.Context,
	params ListParams,
) ([]VideoWithOwner, int, ListParams, error) {
	params.Normalize()

	videos, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, params, err
	}

	return videos, total, params, nil
}

func (s *Service) ToggleLike(
	ctx context.Context,
	videoID, userID string,
) (*LikeResponse, error) {
	if uuid.Validate(videoID) != nil {
		return nil, fmt.Errorf("toggle like: %w", core.ErrNotFound)
	}

	return s.repo.ToggleLike(ctx, videoID, userID)
}

func (s *Service) RecordView(ctx context.Context, id string) (int64, error) {
	if uuid.Validate(id) != nil {
		return 0, fmt.Errorf("record view: %w", core.ErrNotFound)
	}

	return s.repo.IncrementViews(ctx, id)
}

// Delete enforces the ownership policy before touching storage: the
// caller must own the video or hold the admin role.
func (s *Service) Delete(
	ctx context.Context,
	caller *authz.Identity,
	id string,
) error {
	if uuid.Validate(id) != nil {
		return fmt.Errorf("delete video: %w", core.ErrNotFound)
	}

	video, err := s.repo.GetByID(ctx, id, "")
	if err != nil {
		return err
	}

	if !authz.CanModify(caller, video.OwnerID) {
		return core.ForbiddenError("Not authorized to delete this video")
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	if uuid.Validate(id) != nil {
		return false, nil
	}

	return s.repo.Exists(ctx, id)
}
