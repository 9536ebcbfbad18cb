package request

import (
	"peershare/internal/usecase"
)

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func (r CreateItemRequest) ToInput() usecase.CreateItemInput {
	return usecase.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		RequestID:   r.RequestID,
	}
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

func (r UpdateItemRequest) ToInput() usecase.UpdateItemInput {
	return usecase.UpdateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
