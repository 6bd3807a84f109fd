package packet

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseJSONObjectLenient(t *testing.T) {
	obj, err := ParseJSONObject(`{zoneId: base:moon, "spawnPoint": {x: 1.5, y: -2, z: 3}, flag: true, none: null}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, _ := String(obj, "zoneId"); id != "base:moon" {
		t.Fatalf("expected zone ID base:moon, got %q", id)
	}
	spawn, ok := obj["spawnPoint"].(map[string]any)
	if !ok {
		t.Fatalf("expected spawn point object, got %T", obj["spawnPoint"])
	}
	if x, err := Number(spawn, "x"); err != nil || x != 1.5 {
		t.Fatalf("expected x 1.5, got %v (%v)", x, err)
	}
	if y, err := Number(spawn, "y"); err != nil || y != -2 {
		t.Fatalf("expected y -2, got %v (%v)", y, err)
	}
	if obj["flag"] != true {
		t.Fatalf("expected flag true, got %v", obj["flag"])
	}
	if v, ok := obj["none"]; !ok || v != nil {
		t.Fatalf("expected explicit null, got %v", v)
	}
}

func TestParseJSONObjectStrict(t *testing.T) {
	obj, err := ParseJSONObject(`{"username":"offline:Steve","uniqueId":"offline:12","list":[1,"aA",[]]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name, _ := String(obj, "username"); name != "offline:Steve" {
		t.Fatalf("unexpected username %q", name)
	}
	list := obj["list"].([]any)
	if len(list) != 3 || list[0] != 1.0 || list[1] != "aA" {
		t.Fatalf("unexpected list %v", list)
	}
}

func TestParseJSONObjectErrors(t *testing.T) {
	for _, s := range []string{``, `[1, 2]`, `{a: 1`, `{a 1}`, `{"a": "b}`, `{a: }`} {
		if _, err := ParseJSONObject(s); err == nil {
			t.Fatalf("expected %q to fail", s)
		}
	}
}

func TestNumberRejectsNonNumbers(t *testing.T) {
	obj := map[string]any{"a": "abc", "b": true}
	for _, key := range []string{"a", "b", "missing"} {
		if _, err := Number(obj, key); err == nil {
			t.Fatalf("expected %s to fail", key)
		}
	}
}

func TestParseJSONObjectDepthLimit(t *testing.T) {
	deep := "{a:" + strings.Repeat("[", 1<<20) + "}"
	if _, err := ParseJSONObject(deep); err == nil || !strings.Contains(err.Error(), "nesting") {
		t.Fatalf("expected a nesting error, got %v", err)
	}

	nested := "{a:" + strings.Repeat("[", maxJSONDepth-1) + strings.Repeat("]", maxJSONDepth-1) + "}"
	if _, err := ParseJSONObject(nested); err != nil {
		t.Fatalf("expected %d levels to parse, got %v", maxJSONDepth, err)
	}
}

func TestZoneDecodeDeepNesting(t *testing.T) {
	buf := new(bytes.Buffer)
	WriteString(buf, "{a:"+strings.Repeat("[", 1<<20)+"}")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected decoding to fail")
		}
	}()
	(&Zone{}).Decode(buf)
}
