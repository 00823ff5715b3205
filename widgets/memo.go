package widgets

// Memoizable widgets are plain values compared with ==.
type Memoizable interface {
	Widget
	comparable
}

type memoKey[W Memoizable] struct {
	w      W
	width  int
	height int
}

// Memo caches the last render of a widget value. A call with the same value
// and box returns the cached output without rendering.
type Memo[W Memoizable] struct {
	render  func(w W, width, height int) string
	last    memoKey[W]
	out     string
	valid   bool
	renders int
}

// NewMemo wraps render. A nil render uses the widget's own Render.
func NewMemo[W Memoizable](render func(w W, width, height int) string) *Memo[W] {
	if render == nil {
		render = func(w W, width, height int) string { return w.Render(width, height) }
	}
	return &Memo[W]{render: render}
}

func (m *Memo[W]) Render(w W, width, height int) string {
	key := memoKey[W]{w: w, width: width, height: height}
	if m.valid && m.last == key {
		return m.out
	}
	m.out = m.render(w, width, height)
	m.last = key
	m.valid = true
	m.renders++
	return m.out
}

// Renders counts the calls that actually rendered.
func (m *Memo[W]) Renders() int {
	return m.renders
}

// Bind returns w as a Widget that renders through the memo.
func (m *Memo[W]) Bind(w W) Widget {
	return memoized[W]{memo: m, w: w}
}

type memoized[W Memoizable] struct {
	memo *Memo[W]
	w    W
}

func (b memoized[W]) Render(width, height int) string {
	return b.memo.Render(b.w, width, height)
}
