package entities

import "time"

// Operator — учетная запись, управляющая ровно одним магазином.
type Operator struct {
	ID           int64
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
