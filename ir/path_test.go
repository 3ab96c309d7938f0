package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pathDoc() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "users", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "name", Val: FromString("a")}}),
			FromKeyVals([]KeyVal{{Key: "name", Val: FromString("b")}}),
		})},
		{Key: "odd.key", Val: FromInt(1)},
	})
}

func TestNodePath(t *testing.T) {
	doc := pathDoc()
	name := doc.Get("users").Index(1).Get("name")
	if got := name.Path(); got != "$.users[1].name" {
		t.Errorf("got %s", got)
	}
	if got := doc.Get("odd.key").Path(); got != "$.'odd.key'" {
		t.Errorf("got %s", got)
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	for _, p := range []string{"$", "$.a", "$.a[0].b", "$.a[*]", "$..name", "$.'odd.key'"} {
		pp, err := ParsePath(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if got := pp.String(); got != p {
			t.Errorf("got %s want %s", got, p)
		}
	}
	for _, p := range []string{"", "a.b", "$.a[", "$x"} {
		if _, err := ParsePath(p); err == nil {
			t.Errorf("%q: expected error", p)
		}
	}
}

func TestGetPath(t *testing.T) {
	doc := pathDoc()
	n, err := doc.GetPath("$.users[0].name")
	if err != nil {
		t.Fatal(err)
	}
	if n == nil || n.String != "a" {
		t.Fatalf("got %v", n)
	}
	n, err = doc.GetPath("$.'odd.key'")
	if err != nil || n == nil || *n.Int64 != 1 {
		t.Errorf("got %v %v", n, err)
	}
	n, err = doc.GetPath("$.users[5]")
	if err != nil || n != nil {
		t.Errorf("got %v %v", n, err)
	}
	if _, err := doc.GetPath("$.users.name"); err == nil {
		t.Error("expected type error")
	}
}

func TestListPath(t *testing.T) {
	doc := pathDoc()
	for _, p := range []string{"$.users[*].name", "$..name"} {
		res, err := doc.ListPath(nil, p)
		if err != nil {
			t.Fatal(err)
		}
		got := make([]string, len(res))
		for i, n := range res {
			got[i] = n.String
		}
		if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", p, diff)
		}
	}
}
