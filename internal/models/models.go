package models

type User struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	ApplicationNumber string `json:"application_number"`
	Password          string `json:"-"`
}

type Profile struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	About       string `json:"about"`
	LinkedIn    string `json:"linkedin"`
	GitHub      string `json:"github"`
	SkillsTeach string `json:"skills_teach"`
	SkillsLearn string `json:"skills_learn"`
}

// Message rows are append-only; ID is the ordering key for chat history.
type Message struct {
	ID         int    `json:"id"`
	SenderID   int    `json:"sender_id"`
	ReceiverID int    `json:"receiver_id"`
	Body       string `json:"message"`
}
