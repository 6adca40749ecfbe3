// Package doc holds the opened document as an ordered sequence of
// rows. The store is read-only after loading; nothing in the viewer
// removes or rewrites a row.
package doc

// Row is one line of the document with its trailing line ending
// stripped. Rows are immutable once appended.
type Row struct {
	content []byte
}

func (r Row) Len() int      { return len(r.content) }
func (r Row) Bytes() []byte { return r.content }

// Document is the ordered row store, insertion order = file order.
type Document struct {
	rows []Row
}

// Append copies line into a new row, growing the row table by doubling
// when it is full.
func (d *Document) Append(line []byte) {
	if len(d.rows) == cap(d.rows) {
		newCap := 16
		if cap(d.rows) > 0 {
			newCap = cap(d.rows) * 2
		}
		grown := make([]Row, len(d.rows), newCap)
		copy(grown, d.rows)
		d.rows = grown
	}
	content := make([]byte, len(line))
	copy(content, line)
	d.rows = append(d.rows, Row{content: content})
}

func (d *Document) RowCount() int { return len(d.rows) }

func (d *Document) Row(i int) Row { return d.rows[i] }
