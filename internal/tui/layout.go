package tui

type pageLayout struct {
	windowWidth   int
	windowHeight  int
	viewportWidth int
	usableHeight  int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth: 76,
		usableHeight:  24,
	}
}

// Update recomputes the panel sizes for a terminal of width x height cells.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	const chrome = 14
	usable := height - chrome
	if usable < 12 {
		usable = 12
	}
	l.usableHeight = usable
}

// editorHeight gives the input box most of the screen until a summary is
// requested, then shrinks it to make room for the summary panel.
func (l pageLayout) editorHeight(submitted bool) int {
	if !submitted {
		return l.usableHeight
	}
	h := l.usableHeight * 3 / 10
	if h < 3 {
		h = 3
	}
	return h
}

func (l pageLayout) outputHeight() int {
	const panelChrome = 4
	h := l.usableHeight - l.editorHeight(true) - panelChrome
	if h < 4 {
		h = 4
	}
	return h
}

func (l pageLayout) wrapWidth() int {
	w := l.viewportWidth - 2
	if w < 20 {
		w = 20
	}
	return w
}
