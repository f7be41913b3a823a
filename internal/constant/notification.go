package constant

type NotificationType string

const (
	NotificationWorkshopCreated  NotificationType = "workshop_created"
	NotificationWorkshopAccepted NotificationType = "workshop_accepted"
	NotificationWorkshopRejected NotificationType = "workshop_rejected"
	NotificationWorkshopReminder NotificationType = "workshop_reminder"
	NotificationNewComment       NotificationType = "new_comment"
	NotificationRatingReceived   NotificationType = "rating_received"
)

var notificationTypeLabels = map[NotificationType]string{
	NotificationWorkshopCreated:  "Workshop Created",
	NotificationWorkshopAccepted: "Workshop Accepted",
	NotificationWorkshopRejected: "Workshop Rejected",
	NotificationWorkshopReminder: "Workshop Reminder",
	NotificationNewComment:       "New Comment",
	NotificationRatingReceived:   "Rating Received",
}

func (t NotificationType) Label() string {
	label, ok := notificationTypeLabels[t]
	if !ok {
		return string(t)
	}
	return label
}

func (t NotificationType) Valid() bool {
	_, ok := notificationTypeLabels[t]
	return ok
}
