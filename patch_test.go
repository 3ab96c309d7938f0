package ton

import (
	"errors"
	"testing"

	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/ir"
)

func TestPatch(t *testing.T) {
	doc := mustNode(t, `Person(1) { name: "John", tags: ["a", "b"], note: "<b>&" }`)
	patch := `[
		{"op": "replace", "path": "/name", "value": "Jane"},
		{"op": "add", "path": "/tags/1", "value": "x"},
		{"op": "remove", "path": "/_instanceId"},
		{"op": "add", "path": "/age", "value": 30}
	]`
	res, err := Patch(doc, []byte(patch))
	if err != nil {
		t.Fatal(err)
	}
	want := mustNode(t, `Person { name: "Jane", tags: ["a", "x", "b"], note: "<b>&", age: 30 }`)
	if !Equivalent(encode.MustString(want), encode.MustString(res)) {
		t.Errorf("got %s", encode.MustString(res))
	}
	if res.ClassName != "Person" || res.InstanceCount != nil {
		t.Errorf("metadata %q %v", res.ClassName, res.InstanceCount)
	}

	_, err = Patch(doc, []byte(`[{"op": "remove", "path": "/missing/x"}]`))
	if !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
	_, err = Patch(doc, []byte(`{`))
	if !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
}

func TestPatchNode(t *testing.T) {
	doc := mustNode(t, `{ a: 1 }`)
	res, err := PatchNode(doc, mustNode(t, `[{ op: "add", path: "/b", value: [true] }]`))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(res); got != "{a:1,b:[true]}" {
		t.Errorf("got %s", got)
	}
	if _, err := PatchNode(doc, mustNode(t, `{ op: "add" }`)); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
}

func TestDiffThenPatch(t *testing.T) {
	from := mustNode(t, `{ name: "John", list: [1, 2, 3], nested: { x: "a/b" } }`)
	to := mustNode(t, `{ name: "Johnny", list: [0, 1, 3], nested: { x: "a/b", y: 2 }, extra: |on| }`)
	d, err := Diff(from, to)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Patch(from, d)
	if err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if !Equivalent(encode.MustString(to), encode.MustString(res)) {
		t.Errorf("got %s\npatch %s", encode.MustString(res), d)
	}
	if d, _ := Diff(from, from.Clone()); string(d) != "[]" {
		t.Errorf("got %s", d)
	}
	if !ir.Equal(from, mustNode(t, `{ name: "John", list: [1, 2, 3], nested: { x: "a/b" } }`)) {
		t.Error("patch mutated its input")
	}
}
