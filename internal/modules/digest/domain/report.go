package domain

import (
	messageDomain "github.com/reshetovitsme/nepse-digest/internal/modules/message/domain"
)

// Report summarizes one digest run
type Report struct {
	RunID         string                `json:"run_id"`
	News          int                   `json:"news"`
	Announcements int                   `json:"announcements"`
	Events        int                   `json:"events"`
	Messages      int                   `json:"messages"`
	Chunks        int                   `json:"chunks"`
	Sent          int                   `json:"sent"`
	Failed        int                   `json:"failed"`
	Blocks        []messageDomain.Block `json:"-"`
}

// SendReport counts delivered and failed chunks
type SendReport struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
