package tagtext

// Motions move the remembered caret and clear the selection; the Select*
// variants extend the selection from its current anchor instead.

// MoveLeft moves the caret one unit back.
func (d *Document) MoveLeft() {
	d.moveTo(d.CaretOffset()-1, false)
}

// MoveRight moves the caret one unit forward.
func (d *Document) MoveRight() {
	d.moveTo(d.CaretOffset()+1, false)
}

// SelectLeft extends the selection one unit back.
func (d *Document) SelectLeft() {
	d.moveTo(d.CaretOffset()-1, true)
}

// SelectRight extends the selection one unit forward.
func (d *Document) SelectRight() {
	d.moveTo(d.CaretOffset()+1, true)
}

// MoveStart moves the caret to the start of the document.
func (d *Document) MoveStart() {
	d.moveTo(0, false)
}

// MoveEnd moves the caret to the end of the document.
func (d *Document) MoveEnd() {
	d.moveTo(d.Len(), false)
}

// MoveLineStart moves the caret after the previous newline.
func (d *Document) MoveLineStart() {
	units := d.units()
	d.moveTo(lineStart(units, d.CaretOffset()), false)
}

// MoveLineEnd moves the caret before the next newline.
func (d *Document) MoveLineEnd() {
	units := d.units()
	d.moveTo(lineEnd(units, d.CaretOffset()), false)
}

// MoveUp moves the caret to the same column on the previous line, or to the
// line end when that line is shorter.
func (d *Document) MoveUp() {
	units := d.units()
	u := d.CaretOffset()
	start := lineStart(units, u)
	if start == 0 {
		d.moveTo(0, false)
		return
	}
	col := u - start
	prevStart := lineStart(units, start-1)
	d.moveTo(min(prevStart+col, start-1), false)
}

// MoveDown moves the caret to the same column on the next line.
func (d *Document) MoveDown() {
	units := d.units()
	u := d.CaretOffset()
	end := lineEnd(units, u)
	if end >= len(units) {
		d.moveTo(len(units), false)
		return
	}
	col := u - lineStart(units, u)
	nextStart := end + 1
	d.moveTo(min(nextStart+col, lineEnd(units, nextStart)), false)
}

func (d *Document) moveTo(u int, extend bool) {
	if extend && !d.hasAnchor {
		d.anchor = d.positionAt(d.CaretOffset())
		d.hasAnchor = true
	}
	d.setCaretUnit(u)
	if !extend {
		d.clearAnchor()
	}
}

func lineStart(units []unit, u int) int {
	u = min(max(u, 0), len(units))
	for i := u - 1; i >= 0; i-- {
		if !units[i].token && isLineBreak(units[i].text) {
			return i + 1
		}
	}
	return 0
}

func lineEnd(units []unit, u int) int {
	u = min(max(u, 0), len(units))
	for i := u; i < len(units); i++ {
		if !units[i].token && isLineBreak(units[i].text) {
			return i
		}
	}
	return len(units)
}

// isLineBreak reports whether a grapheme cluster ends a line. Stored
// templates may carry CRLF or CR, which uniseg keeps as one cluster.
func isLineBreak(g string) bool {
	return g == "\n" || g == "\r\n" || g == "\r"
}
