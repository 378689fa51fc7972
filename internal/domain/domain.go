// Package domain holds the entities shared by the storage, service and web layers.
package domain

import "time"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Unix converts a stored unix timestamp to UTC time.
func Unix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
