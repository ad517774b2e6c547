package domain

// Activity is a user-defined category of time usage.
type Activity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}
