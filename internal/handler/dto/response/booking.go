package response

import (
	"peershare/internal/handler/dto"
	"peershare/internal/usecase"
)

type BookingItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingUserResponse struct {
	ID int64 `json:"id"`
}

type BookingResponse struct {
	ID     int64               `json:"id"`
	Start  dto.DateTime        `json:"start"`
	End    dto.DateTime        `json:"end"`
	Status string              `json:"status"`
	Item   BookingItemResponse `json:"item"`
	Booker BookingUserResponse `json:"booker"`
}

func ToBookingResponse(v *usecase.BookingView) BookingResponse {
	return BookingResponse{
		ID:     v.ID,
		Start:  dto.NewDateTime(v.Start),
		End:    dto.NewDateTime(v.End),
		Status: string(v.Status),
		Item:   BookingItemResponse{ID: v.ItemID, Name: v.ItemName},
		Booker: BookingUserResponse{ID: v.BookerID},
	}
}

func ToBookingListResponse(views []*usecase.BookingView) []BookingResponse {
	res := make([]BookingResponse, 0, len(views))
	for _, v := range views {
		res = append(res, ToBookingResponse(v))
	}
	return res
}
