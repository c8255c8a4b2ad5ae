package testutil

import (
	"path/filepath"
	"testing"

	"github.com/nlpodyssey/gopickle/pickle"
	"github.com/nlpodyssey/gopickle/types"
)

func TestPickleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.pkl")
	WritePickle(t, path, []any{
		map[string]any{
			"img_id":   1,
			"bb_gender": "Male",
			"caption_list": []string{"a man with a dog", "a person walking"},
		},
	})

	loaded, err := pickle.Load(path)
	if err != nil {
		t.Fatalf("gopickle failed to load fixture: %v", err)
	}

	list, ok := loaded.(*types.List)
	if !ok {
		t.Fatalf("expected *types.List, got %T", loaded)
	}
	if list.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", list.Len())
	}

	entry, ok := list.Get(0).(*types.Dict)
	if !ok {
		t.Fatalf("expected *types.Dict entry, got %T", list.Get(0))
	}

	gender, ok := entry.Get("bb_gender")
	if !ok {
		t.Fatal("bb_gender key missing")
	}
	if gender != "Male" {
		t.Errorf("expected Male, got %v", gender)
	}

	imgID, ok := entry.Get("img_id")
	if !ok {
		t.Fatal("img_id key missing")
	}
	if imgID != 1 {
		t.Errorf("expected img_id 1, got %v", imgID)
	}

	caps, ok := entry.Get("caption_list")
	if !ok {
		t.Fatal("caption_list key missing")
	}
	capList, ok := caps.(*types.List)
	if !ok {
		t.Fatalf("expected *types.List captions, got %T", caps)
	}
	if capList.Len() != 2 {
		t.Errorf("expected 2 captions, got %d", capList.Len())
	}
	if capList.Get(0) != "a man with a dog" {
		t.Errorf("unexpected first caption: %v", capList.Get(0))
	}
}

func TestPickleUnsupportedType(t *testing.T) {
	if _, err := Pickle(struct{}{}); err == nil {
		t.Error("expected error for unsupported type")
	}
}
