package graph

import (
	"errors"
	"testing"
)

func TestArena_AddReturnsPosition(t *testing.T) {
	a := NewArena()
	root := a.NewGroup()

	for i, name := range []string{"Zero", "One", "Two"} {
		idx, err := a.Add(root, a.NewWidget(name))
		if err != nil {
			t.Fatalf("Add(%s) returned error: %v", name, err)
		}
		if idx != i {
			t.Errorf("Add(%s) = %d, want %d", name, idx, i)
		}
	}

	got, err := a.Report(root)
	if err != nil {
		t.Fatal(err)
	}
	want := "Widget 'Zero'.\nWidget 'One'.\nWidget 'Two'."
	if got != want {
		t.Errorf("Report = %q, want %q", got, want)
	}
}

func TestArena_NodeNotFound(t *testing.T) {
	a := NewArena()

	if _, err := a.Node(7); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := a.Report(7); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestArena_NodeIsACopy(t *testing.T) {
	a := NewArena()
	root := a.NewGroup()
	if _, err := a.Add(root, a.NewNumber(1)); err != nil {
		t.Fatal(err)
	}

	n, err := a.Node(root)
	if err != nil {
		t.Fatal(err)
	}
	n.Children[0] = 99

	again, _ := a.Node(root)
	if again.Children[0] == 99 {
		t.Error("mutating a returned Node must not affect the arena")
	}
	if again.Kind != KindGroup {
		t.Errorf("Kind = %s, want group", again.Kind)
	}
}

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KindWidget: "widget",
		KindNumber: "number",
		KindGroup:  "group",
		Kind(0):    "Kind(0)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(k), got, want)
		}
	}
}
