package annotations

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nlpodyssey/gopickle/pickle"
	"github.com/nlpodyssey/gopickle/types"
)

// LoadHuman reads the human annotation pickle at path.
// Records come back in file order.
func LoadHuman(path string) ([]HumanRecord, error) {
	entries, err := loadEntries(path)
	if err != nil {
		return nil, err
	}

	records := make([]HumanRecord, 0, len(entries))
	for i, entry := range entries {
		imgID, err := entryImageID(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d in %s: %w", i, path, err)
		}

		rec := HumanRecord{ImageID: imgID}
		if gender, ok := entryString(entry, FieldGender); ok {
			rec.Gender = gender
		}
		rec.Objects, err = entryStringList(entry, FieldObjects)
		if err != nil {
			return nil, fmt.Errorf("entry %d in %s: %w", i, path, err)
		}
		rec.Captions, err = entryStringList(entry, FieldCaptions)
		if err != nil {
			return nil, fmt.Errorf("entry %d in %s: %w", i, path, err)
		}

		records = append(records, rec)
	}
	return records, nil
}

// LoadModel reads the model annotation pickle at path.
func LoadModel(path string) ([]ModelRecord, error) {
	entries, err := loadEntries(path)
	if err != nil {
		return nil, err
	}

	records := make([]ModelRecord, 0, len(entries))
	for i, entry := range entries {
		imgID, err := entryImageID(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d in %s: %w", i, path, err)
		}

		caption, ok := entryString(entry, FieldPrediction)
		if !ok {
			return nil, fmt.Errorf("entry %d in %s: missing %q field", i, path, FieldPrediction)
		}

		records = append(records, ModelRecord{ImageID: imgID, Caption: caption})
	}
	return records, nil
}

// loadEntries unpickles the file and returns its top-level list of dicts.
// The file is read fully and the handle released before returning.
func loadEntries(path string) ([]*types.Dict, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("annotation file not found: %s", path)
	}

	obj, err := pickle.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to unpickle %s: %w", path, err)
	}

	list, ok := obj.(*types.List)
	if !ok {
		return nil, fmt.Errorf("unexpected pickle root in %s: %T (want list of entries)", path, obj)
	}

	entries := make([]*types.Dict, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		entry, ok := list.Get(i).(*types.Dict)
		if !ok {
			return nil, fmt.Errorf("entry %d in %s: %T (want dict)", i, path, list.Get(i))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// entryImageID normalizes the img_id field to its string form. The
// upstream writer stores COCO integer ids; string ids pass through.
func entryImageID(entry *types.Dict) (string, error) {
	raw, ok := entry.Get(FieldImageID)
	if !ok {
		return "", fmt.Errorf("missing %q field", FieldImageID)
	}

	switch id := raw.(type) {
	case string:
		return id, nil
	case int:
		return strconv.Itoa(id), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	default:
		return "", fmt.Errorf("unsupported %q type %T", FieldImageID, raw)
	}
}

// entryString returns a string field. Missing keys and None values
// report ok=false rather than an error.
func entryString(entry *types.Dict, field string) (string, bool) {
	raw, ok := entry.Get(field)
	if !ok || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

// entryStringList returns a list-of-strings field. A missing key yields
// an empty list; a present key of the wrong shape is an error.
func entryStringList(entry *types.Dict, field string) ([]string, error) {
	raw, ok := entry.Get(field)
	if !ok || raw == nil {
		return nil, nil
	}

	var n int
	var get func(int) any
	switch seq := raw.(type) {
	case *types.List:
		n, get = seq.Len(), seq.Get
	case *types.Tuple:
		n, get = seq.Len(), seq.Get
	default:
		return nil, fmt.Errorf("unsupported %q type %T", field, raw)
	}

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, ok := get(i).(string)
		if !ok {
			return nil, fmt.Errorf("%q item %d: %T (want string)", field, i, get(i))
		}
		out = append(out, s)
	}
	return out, nil
}
