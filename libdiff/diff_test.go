package libdiff

import (
	"encoding/json"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/parse"
)

func mustNode(t *testing.T, s string) *ir.Node {
	t.Helper()
	doc, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return doc.Root
}

func changeStrings(cs []Change) []string {
	res := make([]string, len(cs))
	for i := range cs {
		res[i] = cs[i].Op.Symbol() + " " + cs[i].Path()
	}
	return res
}

func TestDiffObject(t *testing.T) {
	from := mustNode(t, `Person(1) { name: "John", age: 30, old: 1, gone: undefined }`)
	to := mustNode(t, `Person(2) { name: "Jane", age: 30, new: true, "odd key": [] }`)
	got := Diff(from, to)
	want := []string{
		"~ $._instanceId",
		"~ $.name",
		"- $.old",
		"+ $.new",
		"+ $.'odd key'",
	}
	if diff := cmp.Diff(want, changeStrings(got)); diff != "" {
		t.Fatalf("changes (-want +got):\n%s", diff)
	}
	if got[1].Text == nil {
		t.Error("string replacement without text diff")
	}
	if got[0].String() != "~ $._instanceId: 1 -> 2" {
		t.Errorf("got %q", got[0].String())
	}
	if got[4].Pointer() != "/odd key" {
		t.Errorf("got %q", got[4].Pointer())
	}
	if Diff(from, from.Clone()) != nil {
		t.Error("equal trees differ")
	}
}

func TestDiffArray(t *testing.T) {
	got := Diff(mustNode(t, `[1, 2, 3]`), mustNode(t, `[0, 1, 3, 4]`))
	want := []string{"+ $[0]: 0", "- $[2]: 2", "+ $[3]: 4"}
	strs := make([]string, len(got))
	for i := range got {
		strs[i] = got[i].String()
	}
	if diff := cmp.Diff(want, strs); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}

	got = Diff(mustNode(t, `[{ a: 1 }, "x"]`), mustNode(t, `[{ a: 2 }, "x"]`))
	if diff := cmp.Diff([]string{"~ $[0].a"}, changeStrings(got)); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}
}

func TestDiffKinds(t *testing.T) {
	got := Diff(mustNode(t, `{ a: 1 }`), mustNode(t, `{ a: [1] }`))
	if len(got) != 1 || got[0].Op != Replace || got[0].Text != nil {
		t.Fatalf("got %v", changeStrings(got))
	}
	if got[0].String() != "~ $.a: 1 -> [1]" {
		t.Errorf("got %q", got[0].String())
	}
}

func TestJSONPatchApplies(t *testing.T) {
	pairs := [][2]string{
		{`{ a: 1, b: [1, 2, 3] }`, `{ b: [0, 1, 3, 4], c: "x" }`},
		{`{ l: [{ n: "a" }, { n: "b" }, { n: "c" }] }`, `{ l: [{ n: "b" }, { n: "c", m: 1 }] }`},
		{`Person(1) { name: "John" }`, `Person { name: "Jo/hn~", "a/b": 1 }`},
		{`{ s: "line one\nline two" }`, `{ s: "line one\nline 2" }`},
		{`{ a: [1, 2] }`, `{ a: { b: 1 } }`},
		{`{ e: |a|b|, id: 550e8400-e29b-41d4-a716-446655440000 }`, `{ e: |a|, id: 650e8400-e29b-41d4-a716-446655440000 }`},
	}
	for _, p := range pairs {
		from, to := mustNode(t, p[0]), mustNode(t, p[1])
		changes := Diff(from, to)
		applyCheck(t, p[0], from, to, changes)
		applyCheck(t, p[1]+" reversed", to, from, Reverse(changes))
	}
}

func applyCheck(t *testing.T, name string, from, to *ir.Node, changes []Change) {
	t.Helper()
	pd, err := JSONPatch(changes)
	if err != nil {
		t.Fatal(err)
	}
	patch, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		t.Fatalf("%s: %v\n%s", name, err, pd)
	}
	src, err := from.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	out, err := patch.Apply(src)
	if err != nil {
		t.Fatalf("%s: apply: %v\n%s", name, err, pd)
	}
	var got, want any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	wd, _ := to.MarshalJSON()
	if err := json.Unmarshal(wd, &want); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s: patched (-want +got):\n%s", name, diff)
	}
}

func TestReverse(t *testing.T) {
	from, to := mustNode(t, `{ a: "abc", b: 1 }`), mustNode(t, `{ a: "abd", c: 2 }`)
	rev := Reverse(Diff(from, to))
	if diff := cmp.Diff([]string{"- $.c", "+ $.b", "~ $.a"}, changeStrings(rev)); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}
	if rev[2].From.String != "abd" || rev[2].To.String != "abc" {
		t.Errorf("replace not swapped: %v", rev[2].String())
	}
}

func TestInline(t *testing.T) {
	diffs := []diffpatch.Diff{
		{Type: diffpatch.DiffEqual, Text: "J"},
		{Type: diffpatch.DiffDelete, Text: "ohn"},
		{Type: diffpatch.DiffInsert, Text: "ane\n"},
	}
	if got := Inline(diffs); got != `J[-ohn-]{+ane\n+}` {
		t.Errorf("got %s", got)
	}
	if got := Inline(DiffString("same", "same")); got != "same" {
		t.Errorf("got %s", got)
	}
}

func TestLines(t *testing.T) {
	got := Lines("a\nb\nc\n", "a\nB\nc\n")
	if want := " a\n-b\n+B\n c\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if Lines("x", "x") != "" {
		t.Error("equal texts differ")
	}
}
