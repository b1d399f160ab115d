package errors

import "errors"

var (
	ErrMissingBotToken  = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingChannelID = errors.New("CHANNEL_ID environment variable is required")
	ErrListingNotFound  = errors.New("listing container not found")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrInvalidLimit     = errors.New("message limit must be positive")
)
