package entity

type MessageStatus string

const (
	MessagePending MessageStatus = "pending"
	MessageRead    MessageStatus = "read"
)

type Message struct {
	BaseSimple
	Name    string        `db:"name"`
	Email   string        `db:"email"`
	Subject *string       `db:"subject"`
	Body    string        `db:"body"`
	Status  MessageStatus `db:"status"`
}
