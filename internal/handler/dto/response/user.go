package response

import (
	"github.com/jinzhu/copier"

	"peershare/internal/usecase"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToUserResponse(v *usecase.UserView) UserResponse {
	var res UserResponse
	_ = copier.Copy(&res, v)
	return res
}

func ToUserListResponse(views []*usecase.UserView) []UserResponse {
	res := make([]UserResponse, 0, len(views))
	for _, v := range views {
		res = append(res, ToUserResponse(v))
	}
	return res
}
