package dataset

import "github.com/go-gota/gota/dataframe"

// HumanCaptions returns the per-caption human table left-joined with
// the gender attribute table on img_id: {img_id, caption, gender}.
func (b *Builder) HumanCaptions() dataframe.DataFrame {
	return b.humanCaps.LeftJoin(b.attrs, ColImageID)
}

// ModelCaptions returns the per-image model table left-joined with the
// gender attribute table on img_id: {img_id, caption, gender}. Images
// absent from the human source carry no gender.
func (b *Builder) ModelCaptions() dataframe.DataFrame {
	return b.modelCaps.LeftJoin(b.attrs, ColImageID)
}

// Combined inner-joins the human and model caption tables on img_id,
// with the caption columns renamed caption_human and caption_model,
// then attaches the gender code. The join is strict inner: an image
// present in only one source does not appear at all. Because the human
// side has one row per caption, each model caption repeats once per
// matching human caption.
func (b *Builder) Combined() dataframe.DataFrame {
	human := b.humanCaps.Rename(ColCaptionHuman, ColCaption)
	model := b.modelCaps.Rename(ColCaptionModel, ColCaption)
	return human.InnerJoin(model, ColImageID).LeftJoin(b.attrs, ColImageID)
}

// ObjectPresence returns the 0/1 object presence matrix: img_id plus
// one column per object, columns in sorted vocabulary order.
func (b *Builder) ObjectPresence() dataframe.DataFrame {
	return b.presence.Copy()
}

// ObjectVocabulary returns the sorted distinct object tokens observed
// across all human records.
func (b *Builder) ObjectVocabulary() []string {
	vocab := make([]string, len(b.objects))
	copy(vocab, b.objects)
	return vocab
}

// Images returns the number of images in the human annotation source.
func (b *Builder) Images() int {
	return b.attrs.Nrow()
}
