package responses

type Comment struct {
	ID        any    `json:"id"`
	Username  string `json:"username"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}
