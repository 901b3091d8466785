// AngelaMos | 2026
// dto.go

package comment

import (
	"time"

	"github.com/angelamos/streamora/internal/user"
)

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

type CommentResponse struct {
	ID        string       `json:"id"`
	VideoID   string       `json:"videoId"`
	Author    user.Summary `json:"author"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"createdAt"`
}

const (
	SortNewest = "newest"
	SortOldest = "oldest"
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
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Sort != SortOldest {
		p.Sort = SortNewest
	}
}

func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func ToCommentResponse(c *CommentWithAuthor) CommentResponse {
	return CommentResponse{
		ID:      c.ID,
		VideoID: c.VideoID,
		Author: user.Summary{
			ID:        c.AuthorID,
			Name:      c.AuthorName,
			Username:  c.AuthorUsername,
			AvatarURL: c.AuthorAvatarURL,
		},
		Text:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

func ToCommentResponseList(comments []CommentWithAuthor) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, ToCommentResponse(&comments[i]))
	}
	return responses
}
