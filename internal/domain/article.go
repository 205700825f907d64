// Package domain holds the entity types exchanged between the client SDK
// and its callers. Instances are immutable value snapshots produced by the
// mapping layer; edits build new values and round-trip through the API.
package domain

// Article status identifiers as assigned by the server.
const (
	StatusDraft      = 1
	StatusModeration = 2
	StatusRejected   = 3
	StatusPublished  = 4
)

// statusNames maps status identifiers to display names.
var statusNames = map[int]string{
	StatusDraft:      "Draft",
	StatusModeration: "Moderation",
	StatusRejected:   "Rejected",
	StatusPublished:  "Published",
}

// StatusName returns the display name for a status id, or "Unknown" for
// ids the client does not recognize.
func StatusName(statusID int) string {
	if name, ok := statusNames[statusID]; ok {
		return name
	}
	return "Unknown"
}

// Article is a published or draft piece of content.
type Article struct {
	ID         int
	AuthorID   int
	Title      string
	Body       string
	Image      string // base64 payload, empty when absent
	StatusID   int
	CreatedAt  string // ISO-8601, as issued by the server
	Tags       []Tag
	AuthorName string // derived from the author record, never sent upstream
}

// Tag is a label attached to articles. Tag ids are server-assigned and
// unique; order is preserved for display but irrelevant for selection.
type Tag struct {
	ID   int
	Name string
}

// TagIDs returns the ids of the article's tags in display order.
func (a Article) TagIDs() []int {
	ids := make([]int, 0, len(a.Tags))
	for _, t := range a.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}
