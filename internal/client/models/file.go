package models

import "strings"

// FileItem is one entry of the vault catalog as returned by the listing
// endpoint. Items are ephemeral view objects rebuilt on every refresh.
type FileItem struct {
	Key          string `json:"key"`
	Size         int64  `json:"size,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// OwnedBy reports whether key belongs to ownerID, i.e. whether it carries
// the mandatory "<ownerID>/" prefix. An empty ownerID owns nothing.
//
// The listing view must only ever show the intersection of the server
// response and this predicate, regardless of what the backend returns.
func OwnedBy(ownerID, key string) bool {
	if ownerID == "" {
		return false
	}
	return strings.HasPrefix(key, ownerID+"/")
}

// ObjectKey returns the expected storage key for a file uploaded by ownerID.
func ObjectKey(ownerID, fileName string) string {
	return ownerID + "/" + fileName
}
