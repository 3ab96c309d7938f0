package libdiff

// Reverse returns the changes which undo changes: each change inverted,
// in reverse order.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := c
		r.From, r.To = c.To, c.From
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		}
		if c.Text != nil {
			r.Text = DiffString(c.To.String, c.From.String)
		}
		res[len(changes)-1-i] = r
	}
	return res
}
