package widgets

import "testing"

func TestMemoSkipsUnchangedProps(t *testing.T) {
	memo := NewMemo[ColorDisplay](nil)
	tr := NewTrigger("color", func() {})

	memo.Render(ColorDisplay{Color: "#fff", HandleChange: tr}, 20, 5)
	memo.Render(ColorDisplay{Color: "#fff", HandleChange: tr}, 20, 5)
	if got := memo.Renders(); got != 1 {
		t.Fatalf("renders = %d, want 1", got)
	}

	memo.Render(ColorDisplay{Color: "#000", HandleChange: tr}, 20, 5)
	if got := memo.Renders(); got != 2 {
		t.Fatalf("renders after value change = %d, want 2", got)
	}

	memo.Render(ColorDisplay{Color: "#000", HandleChange: NewTrigger("color", func() {})}, 20, 5)
	if got := memo.Renders(); got != 3 {
		t.Fatalf("renders after handler change = %d, want 3", got)
	}

	memo.Render(ColorDisplay{Color: "#000", HandleChange: tr}, 30, 5)
	if got := memo.Renders(); got != 4 {
		t.Fatalf("renders after resize = %d, want 4", got)
	}
}

func TestMemoOutputMatchesDirectRender(t *testing.T) {
	d := LetterDisplay{Letter: "k", HandleChange: NewTrigger("letter", func() {})}
	memo := NewMemo[LetterDisplay](nil)
	direct := d.Render(16, 6)
	for i := 0; i < 3; i++ {
		if got := memo.Bind(d).Render(16, 6); got != direct {
			t.Fatalf("memoized output differs on call %d", i)
		}
	}
}

func TestMemoUsesCustomRender(t *testing.T) {
	var seen []string
	memo := NewMemo(func(d LetterDisplay, width, height int) string {
		seen = append(seen, d.Letter)
		return d.Render(width, height)
	})
	tr := NewTrigger("letter", func() {})
	memo.Render(LetterDisplay{Letter: "a", HandleChange: tr}, 10, 5)
	memo.Render(LetterDisplay{Letter: "a", HandleChange: tr}, 10, 5)
	memo.Render(LetterDisplay{Letter: "b", HandleChange: tr}, 10, 5)
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("custom render calls = %v", seen)
	}
}
