package jsonpatch

import (
	"reflect"
	"sort"
	"strings"
)

// DiffBoth computes both the forward (a→b) and backward (b→a) RFC 6902 JSON
// Patches in a single traversal. Both a and b should be the result of
// json.Unmarshal into interface{}. Path should be "" for the root document.
// Object keys are visited in sorted order so the output is stable.
func DiffBoth(a, b interface{}, path string) (fwd, bwd []map[string]interface{}) {
	if a == nil && b == nil {
		return nil, nil
	}
	if a == nil || b == nil {
		return []map[string]interface{}{replaceOp(path, b)},
			[]map[string]interface{}{replaceOp(path, a)}
	}

	aMap, aIsMap := a.(map[string]interface{})
	bMap, bIsMap := b.(map[string]interface{})
	if aIsMap && bIsMap {
		return diffObjectsBoth(aMap, bMap, path)
	}

	// Arrays are replaced whole.
	_, aIsArr := a.([]interface{})
	_, bIsArr := b.([]interface{})
	if aIsArr && bIsArr && reflect.DeepEqual(a, b) {
		return nil, nil
	}

	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return []map[string]interface{}{replaceOp(path, b)},
			[]map[string]interface{}{replaceOp(path, a)}
	}

	return nil, nil
}

func diffObjectsBoth(a, b map[string]interface{}, path string) (fwd, bwd []map[string]interface{}) {
	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			childPath := path + "/" + escapeKey(k)
			fwd = append(fwd, removeOp(childPath))
			bwd = append(bwd, addOp(childPath, a[k]))
		}
	}

	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		bv := b[k]
		av, inA := a[k]
		if !inA {
			fwd = append(fwd, addOp(childPath, bv))
			bwd = append(bwd, removeOp(childPath))
		} else {
			subFwd, subBwd := DiffBoth(av, bv, childPath)
			fwd = append(fwd, subFwd...)
			bwd = append(bwd, subBwd...)
		}
	}

	return fwd, bwd
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func replaceOp(path string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"op": "replace", "path": path, "value": value}
}

func addOp(path string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"op": "add", "path": path, "value": value}
}

func removeOp(path string) map[string]interface{} {
	return map[string]interface{}{"op": "remove", "path": path}
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
