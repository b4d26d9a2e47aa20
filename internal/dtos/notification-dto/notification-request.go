package notification_dto

type NotificationListFilter struct {
	Limit int `query:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Page  int `query:"page,omitempty" validate:"omitempty,min=1"`
}

type ParamNotificationID struct {
	ID string `params:"notification_id" validate:"required,uuid"`
}
