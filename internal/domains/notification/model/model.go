package model

// Notice is a message addressed to a chat recipient.
type Notice struct {
	RecipientID int64  `json:"recipient_id"`
	Text        string `json:"text"`
}
