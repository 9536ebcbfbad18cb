package request

import (
	"peershare/internal/handler/dto"
	"peershare/internal/usecase"
)

type CreateBookingRequest struct {
	ItemID int64        `json:"itemId" binding:"required"`
	Start  dto.DateTime `json:"start" binding:"required"`
	End    dto.DateTime `json:"end" binding:"required"`
}

func (r CreateBookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		ItemID: r.ItemID,
		Start:  r.Start.Time,
		End:    r.End.Time,
	}
}
