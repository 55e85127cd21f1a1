package tui

// nextIndex returns the index after current, wrapping to the first.
func nextIndex(n, current int) int {
	if n == 0 {
		return 0
	}
	return (current + 1) % n
}

// prevIndex returns the index before current, wrapping to the last.
func prevIndex(n, current int) int {
	if n == 0 {
		return 0
	}
	return (current - 1 + n) % n
}

// adjustScroll keeps cursor inside a window of viewportHeight rows.
func adjustScroll(cursor, scrollOff, viewportHeight, totalItems int) int {
	if viewportHeight <= 0 || totalItems <= viewportHeight {
		return 0
	}
	if cursor < scrollOff {
		return cursor
	}
	if cursor >= scrollOff+viewportHeight {
		return cursor - viewportHeight + 1
	}
	return scrollOff
}
