package response

import (
	"peershare/internal/handler/dto"
	"peershare/internal/usecase"
)

type RequestResponse struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	Created     dto.DateTime   `json:"created"`
	Items       []ItemResponse `json:"items"`
}

func ToRequestResponse(v *usecase.RequestView) RequestResponse {
	return RequestResponse{
		ID:          v.ID,
		Description: v.Description,
		Created:     dto.NewDateTime(v.Created),
		Items:       ToItemListResponse(v.Items),
	}
}

func ToRequestListResponse(views []*usecase.RequestView) []RequestResponse {
	res := make([]RequestResponse, 0, len(views))
	for _, v := range views {
		res = append(res, ToRequestResponse(v))
	}
	return res
}
