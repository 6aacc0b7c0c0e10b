package weight

// Drawer rolls tables against a RandomSource.
type Drawer struct {
	src RandomSource
}

// NewDrawer creates a drawer; a nil source falls back to DefaultSource.
func NewDrawer(src RandomSource) *Drawer {
	if src == nil {
		src = DefaultSource()
	}
	return &Drawer{src: src}
}

// Draw rolls a uniform value in [0, total) and resolves it.
func (d *Drawer) Draw(t *Table) Outcome {
	return t.DrawUnits(d.src.Int64N(t.total))
}

// Pick returns a uniform index in [0, n). Used for the item step after a tier is drawn.
func (d *Drawer) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return int(d.src.Int64N(int64(n)))
}

// Source exposes the underlying random source.
func (d *Drawer) Source() RandomSource { return d.src }
