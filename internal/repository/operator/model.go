package operator

import "time"

type OperatorDB struct {
	ID           int64
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
