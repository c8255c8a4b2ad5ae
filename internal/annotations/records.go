// Package annotations loads pickled caption annotation files.
//
// The two input files are Python pickles, each holding a list of
// per-image entry dicts produced by the upstream annotation writer.
// The field names below are the writer's; they are part of the file
// format, not configuration.
package annotations

// Field names expected in the pickled entry dicts.
const (
	FieldImageID    = "img_id"
	FieldGender     = "bb_gender"
	FieldObjects    = "rmdup_object_list"
	FieldCaptions   = "caption_list"
	FieldPrediction = "pred"
)

// HumanRecord is one per-image entry from the human annotation file.
// Gender is empty when the annotation is missing; downstream encoding
// treats that the same as any non-male label.
type HumanRecord struct {
	ImageID  string
	Gender   string
	Objects  []string
	Captions []string
}

// ModelRecord is one per-image entry from the model annotation file.
type ModelRecord struct {
	ImageID string
	Caption string
}
