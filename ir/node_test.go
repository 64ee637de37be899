package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPutGet(t *testing.T) {
	obj := Object()
	obj.Put("a", FromInt(1))
	obj.Put("b", FromString("x"))
	obj.Put("a", FromInt(2))

	if got := obj.Len(); got != 2 {
		t.Fatalf("len: got %d, want 2", got)
	}
	if got := Get(obj, "a"); Compare(got, FromInt(2)) != 0 {
		t.Errorf("a: got %s", MustJSON(got))
	}
	if got := Get(obj, "missing"); got != nil {
		t.Errorf("missing: got %s", MustJSON(got))
	}
	// replacement keeps the original position
	if obj.Fields[0] != "a" || obj.Fields[1] != "b" {
		t.Errorf("field order: %v", obj.Fields)
	}
}

func TestFromKeyVals(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("alice")},
		{Key: "age", Val: FromInt(30)},
	})
	want := `{"name":"alice","age":30}`
	if got := MustJSON(obj); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFromUint(t *testing.T) {
	small := FromUint(7)
	if small.Int64 == nil || *small.Int64 != 7 {
		t.Errorf("small uint not stored as int64")
	}
	big := FromUint(18446744073709551615)
	if big.Int64 != nil || big.Number != "18446744073709551615" {
		t.Errorf("big uint not stored as number string: %+v", big)
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "xs", Val: FromSlice([]*Node{FromInt(1), FromFloat(2.5)})},
		{Key: "ok", Val: FromBool(true)},
		{Key: "nothing", Val: Null()},
	})
	clone := orig.Clone()
	if d := cmp.Diff(orig, clone); d != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", d)
	}
	// mutating the clone must not touch the original
	Get(clone, "xs").Append(FromInt(3))
	clone.Put("ok", FromBool(false))
	if Get(orig, "xs").Len() != 2 {
		t.Errorf("clone aliases original array")
	}
	if !Get(orig, "ok").Bool {
		t.Errorf("clone aliases original scalar")
	}
}
