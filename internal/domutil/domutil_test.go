package domutil

import "testing"

func TestAccessorsDefaultOnAbsentOrWrongType(t *testing.T) {
	o := Object{"s": "hi", "f": 1.5, "i": 3.0, "b": true, "wrong": "not-a-number"}

	if got := Str(o, "s", "def"); got != "hi" {
		t.Errorf("Str: got %q", got)
	}
	if got := Str(o, "missing", "def"); got != "def" {
		t.Errorf("Str default: got %q", got)
	}
	if got := Float(o, "f", 0); got != 1.5 {
		t.Errorf("Float: got %v", got)
	}
	if got := Float(o, "wrong", 9); got != 9 {
		t.Errorf("Float wrong-type default: got %v", got)
	}
	if got := Int(o, "i", 0); got != 3 {
		t.Errorf("Int: got %v", got)
	}
	if got := Bool(o, "b", false); got != true {
		t.Errorf("Bool: got %v", got)
	}
	if got := Bool(o, "missing", true); got != true {
		t.Errorf("Bool default: got %v", got)
	}
}

func TestObjAndArrNarrowing(t *testing.T) {
	o := Object{"obj": Object{"x": 1.0}, "arr": Array{1.0, 2.0}, "notObj": 5.0}

	if sub, ok := Obj(o, "obj"); !ok || sub["x"] != 1.0 {
		t.Errorf("Obj: got %v ok=%v", sub, ok)
	}
	if _, ok := Obj(o, "notObj"); ok {
		t.Error("Obj: expected ok=false for non-object value")
	}
	if _, ok := Obj(o, "missing"); ok {
		t.Error("Obj: expected ok=false for missing key")
	}
	if arr, ok := Arr(o, "arr"); !ok || len(arr) != 2 {
		t.Errorf("Arr: got %v ok=%v", arr, ok)
	}
}

func TestRequireObjError(t *testing.T) {
	if _, err := RequireObj(Object{}, "skeleton", "document"); err == nil {
		t.Fatal("expected an error for a missing required object")
	}
}

func TestFloatArrayAndIntArrayScaleAndSkipNonNumeric(t *testing.T) {
	arr := Array{1.0, "skip", 3.0}
	floats := FloatArray(arr, 2)
	if floats[0] != 2 || floats[1] != 0 || floats[2] != 6 {
		t.Errorf("unexpected FloatArray result: %v", floats)
	}
	ints := IntArray(Array{1.0, 2.0})
	if ints[0] != 1 || ints[1] != 2 {
		t.Errorf("unexpected IntArray result: %v", ints)
	}
}
