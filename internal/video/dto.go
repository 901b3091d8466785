// AngelaMos | 2026
// dto.go

package video

import (
	"time"

	"github.com/angelamos/streamora/internal/user"
)

type CreateVideoRequest struct {
	Title        string   `json:"title"        validate:"required,min=1,max=100"`
	Description  string   `json:"description"  validate:"max=1000"`
	VideoURL     string   `json:"videoUrl"     validate:"required,url,max=2048"`
	ThumbnailURL string   `json:"thumbnailUrl" validate:"required,url,max=2048"`
	Tags         []string `json:"tags"         validate:"max=20,dive,min=1,max=50"`
}

type UploadURLRequest struct {
	Kind string `json:"kind" validate:"required,oneof=video thumbnail"`
	Ext  string `json:"ext"  validate:"omitempty,alphanum,max=10"`
}

type VideoResponse struct {
	ID           string       `json:"id"`
	Owner        user.Summary `json:"owner"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	VideoURL     string       `json:"videoUrl"`
	ThumbnailURL string       `json:"thumbnailUrl"`
	Tags         []string     `json:"tags"`
	LikesCount   int          `json:"likesCount"`
	Views        int64        `json:"views"`
	Liked        bool         `json:"liked"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type LikeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

type ViewResponse struct {
	Views int64 `json:"views"`
}

type PlaybackResponse struct {
	PlaybackURL string `json:"playbackUrl"`
}

const (
	SortRecent  = "recent"
	SortPopular = "popular"
)

type ListParams struct {
	Page  int
	Limit int
	Sort  string
}

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 50 {
		p.Limit = 50
	}
	if p.Sort != SortPopular {
		p.Sort = SortRecent
	}
}

func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func ToVideoResponse(v *VideoWithOwner) VideoResponse {
	return VideoResponse{
		ID: v.ID,
		Owner: user.Summary{
			ID:        v.OwnerID,
			Name:      v.OwnerName,
			Username:  v.OwnerUsername,
			AvatarURL: v.OwnerAvatarURL,
		},
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Tags:         []string(v.Tags),
		LikesCount:   v.LikesCount,
		Views:        v.Views,
		Liked:        v.Liked,
		CreatedAt:    v.CreatedAt,
	}
}

func ToVideoResponseList(videos []VideoWithOwner) []VideoResponse {
	responses := make([]VideoResponse, 0, len(videos))
	for i := range videos {
		responses = append(responses, ToVideoResponse(&videos[i]))
	}
	return responses
}
