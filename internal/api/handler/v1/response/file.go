package response

import "time"

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

type SignedFileResponse struct {
	URL     string    `json:"url"`
	Expires time.Time `json:"expires"`
}

type MailQueuedResponse struct {
	ID     string `json:"id"`
	Queued bool   `json:"queued"`
}
