package handler

import "accounts/internal/domain/entity"

// userView is the client-facing projection of a user. The password hash is
// never part of it.
type userView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func toUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}
	return &userView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func toUserViews(users []*entity.User) []*userView {
	views := make([]*userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}
	return views
}
