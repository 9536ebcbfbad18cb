package response

import (
	"github.com/jinzhu/copier"

	"peershare/internal/handler/dto"
	"peershare/internal/usecase"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type CommentResponse struct {
	ID         int64        `json:"id"`
	Text       string       `json:"text"`
	AuthorName string       `json:"authorName"`
	Created    dto.DateTime `json:"created"`
}

// BookingSummaryResponse is the compact form embedded in item details.
type BookingSummaryResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingSummaryResponse `json:"lastBooking"`
	NextBooking *BookingSummaryResponse `json:"nextBooking"`
	Comments    []CommentResponse       `json:"comments"`
}

func ToItemResponse(v *usecase.ItemView) ItemResponse {
	var res ItemResponse
	_ = copier.Copy(&res, v)
	return res
}

func ToItemListResponse(views []*usecase.ItemView) []ItemResponse {
	res := make([]ItemResponse, 0, len(views))
	for _, v := range views {
		res = append(res, ToItemResponse(v))
	}
	return res
}

func ToCommentResponse(v *usecase.CommentView) CommentResponse {
	return CommentResponse{
		ID:         v.ID,
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    dto.NewDateTime(v.Created),
	}
}

func ToItemDetailResponse(v *usecase.ItemDetailView) ItemDetailResponse {
	res := ItemDetailResponse{
		ItemResponse: ToItemResponse(&v.ItemView),
		Comments:     make([]CommentResponse, 0, len(v.Comments)),
	}
	if v.LastBooking != nil {
		res.LastBooking = &BookingSummaryResponse{ID: v.LastBooking.ID, BookerID: v.LastBooking.BookerID}
	}
	if v.NextBooking != nil {
		res.NextBooking = &BookingSummaryResponse{ID: v.NextBooking.ID, BookerID: v.NextBooking.BookerID}
	}
	for _, c := range v.Comments {
		res.Comments = append(res.Comments, ToCommentResponse(c))
	}
	return res
}

func ToItemDetailListResponse(views []*usecase.ItemDetailView) []ItemDetailResponse {
	res := make([]ItemDetailResponse, 0, len(views))
	for _, v := range views {
		res = append(res, ToItemDetailResponse(v))
	}
	return res
}
