package models

// UploadTicket is the delegated write credential issued for one upload:
// a time-limited URL granting a single direct write, and the object key the
// backend chose for it. The ticket is single use and discarded after the
// transfer phase.
type UploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}
