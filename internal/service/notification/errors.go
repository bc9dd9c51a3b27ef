package notification

import "errors"

var ErrUndefinedStatus = errors.New("undefined order status")
