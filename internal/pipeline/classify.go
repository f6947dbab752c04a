package pipeline

import (
	"github.com/Tamjid17/TGBot/internal/model"
)

type ClassificationKind int

const (
	KindPhotoUpload ClassificationKind = iota
	KindDateQuery
	KindUnrecognized
)

func (k ClassificationKind) String() string {
	switch k {
	case KindPhotoUpload:
		return "photo_upload"
	case KindDateQuery:
		return "date_query"
	default:
		return "unrecognized"
	}
}

type Classification struct {
	Kind    ClassificationKind
	Ref     string
	Caption string
	Text    string
}

// Classify inspects an inbound event and produces exactly one outcome.
// An event with photo variants is an upload and the highest-resolution
// variant wins; a text-only event is a date query whether or not the
// text looks like a date (the normalizer decides that downstream);
// anything else is unrecognized and touches no state.
func Classify(ev model.Event) Classification {
	if len(ev.PhotoVariants) > 0 {
		best := ev.PhotoVariants[0]
		for _, variant := range ev.PhotoVariants[1:] {
			if variant.Width*variant.Height >= best.Width*best.Height {
				best = variant
			}
		}
		return Classification{Kind: KindPhotoUpload, Ref: best.Ref, Caption: ev.Caption}
	}
	if ev.Text != "" {
		return Classification{Kind: KindDateQuery, Text: ev.Text}
	}
	return Classification{Kind: KindUnrecognized}
}
