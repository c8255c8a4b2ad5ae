// Package testutil provides helpers for building test fixtures.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"testing"
)

// Pickle serializes a Go value as a Python pickle stream (protocol 0).
// Supported values: nil, bool, int, int64, float64, string, []any,
// []string, and map[string]any. Map keys are emitted in sorted order so
// fixtures are deterministic.
//
// This is a fixture writer only; production code never writes pickles.
func Pickle(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return nil, err
	}
	buf.WriteByte('.')
	return buf.Bytes(), nil
}

// WritePickle pickles v and writes it to path, failing the test on error.
func WritePickle(t *testing.T, path string, v any) {
	t.Helper()

	data, err := Pickle(v)
	if err != nil {
		t.Fatalf("failed to pickle fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
}

func encode(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteByte('N')
	case bool:
		if val {
			buf.WriteString("I01\n")
		} else {
			buf.WriteString("I00\n")
		}
	case int:
		buf.WriteString("I" + strconv.Itoa(val) + "\n")
	case int64:
		buf.WriteString("I" + strconv.FormatInt(val, 10) + "\n")
	case float64:
		buf.WriteString("F" + strconv.FormatFloat(val, 'g', -1, 64) + "\n")
	case string:
		buf.WriteString("S'" + escapeString(val) + "'\n")
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return encode(buf, items)
	case []any:
		buf.WriteString("(l")
		for _, item := range val {
			if err := encode(buf, item); err != nil {
				return err
			}
			buf.WriteByte('a')
		}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteString("(d")
		for _, k := range keys {
			if err := encode(buf, k); err != nil {
				return err
			}
			if err := encode(buf, val[k]); err != nil {
				return err
			}
			buf.WriteByte('s')
		}
	default:
		return fmt.Errorf("unsupported pickle value type %T", v)
	}
	return nil
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return s
}
