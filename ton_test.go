package ton

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/ir"
)

func mustNode(t *testing.T, s string) *ir.Node {
	t.Helper()
	doc, err := ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return doc.Root
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.ton", `Person(1) { name: "John", tags: |a|b| }`)
	doc, err := ParseFile(in)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.ton")
	if err := SerializeToFile(doc, out, encode.Compact()); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "Person(1){name:\"John\",tags:|a|b|}\n" {
		t.Errorf("got %q", d)
	}
	back, err := ParseFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(doc.Root, back.Root) {
		t.Error("file round trip changed the document")
	}
	if got := Serialize(back, encode.Compact()); got != "Person(1){name:\"John\",tags:|a|b|}" {
		t.Errorf("got %q", got)
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.ton")); !os.IsNotExist(err) {
		t.Errorf("got %v", err)
	}
	bad := writeFile(t, dir, "bad.ton", "{ a: }")
	if _, err := ParseFile(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "person.schema.yaml", `
type: object
required: [name]
properties:
  age:
    type: number
    minimum: 0
`)
	withHeader := writeFile(t, dir, "p.ton", "#TON 1\n#SCHEMA person.schema.yaml\n{ age: -1 }\n")
	res, err := ValidateFile(withHeader, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		": Missing required property 'name'",
		"age: Value -1 is less than minimum 0",
	}
	if diff := cmp.Diff(want, res.Errors); diff != "" {
		t.Errorf("errors (-want +got):\n%s", diff)
	}

	plain := writeFile(t, dir, "q.ton", "{ age: -1 }")
	res, err = ValidateFile(plain, nil)
	if err != nil || !res.Valid {
		t.Errorf("got %v %v", res, err)
	}

	missing := writeFile(t, dir, "r.ton", "#SCHEMA nope.yaml\n{}")
	if _, err := ValidateFile(missing, nil); err == nil {
		t.Error("expected missing schema error")
	}
}
