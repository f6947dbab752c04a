package model

const NoCaption = "No caption"

// PhotoRecord is one archived photo reference. DateKey is always the
// YYYY-MM-DD calendar date of the ingesting process at arrival time.
type PhotoRecord struct {
	ExternalRef string `json:"external_ref"`
	Caption     string `json:"caption"`
	DateKey     string `json:"date_key"`
}

type PhotoVariant struct {
	Ref    string `json:"ref"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Event is the transport-independent inbound event contract.
type Event struct {
	ChatID        int64          `json:"chat_id"`
	Text          string         `json:"text"`
	Caption       string         `json:"caption"`
	PhotoVariants []PhotoVariant `json:"photo_variants"`
}

type ReplyKind int

const (
	ReplyText ReplyKind = iota
	ReplyPhoto
)

// Reply is the transport-independent outbound reply contract.
type Reply struct {
	ChatID  int64     `json:"chat_id"`
	Kind    ReplyKind `json:"kind"`
	Text    string    `json:"text,omitempty"`
	Ref     string    `json:"ref,omitempty"`
	Caption string    `json:"caption,omitempty"`
}
