package core

type Account struct {
	ID       uint   `json:"accountId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Message struct {
	ID          uint   `json:"messageId"`
	MessageText string `json:"messageText"`
	PostedBy    uint   `json:"postedBy"`
}
