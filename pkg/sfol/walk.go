package sfol

// BoundVars returns the variables bound by quantifiers in f, outermost first.
func BoundVars(f Formula) []string {
	var out []string
	var walk func(Formula)
	walk = func(f Formula) {
		switch n := f.(type) {
		case *ForAll:
			out = append(out, n.Var)
			walk(n.Body)
		case *Exists:
			out = append(out, n.Var)
			walk(n.Body)
		case *And:
			walk(n.Left)
			walk(n.Right)
		case *Or:
			walk(n.Left)
			walk(n.Right)
		case *Implies:
			walk(n.Left)
			walk(n.Right)
		case *Iff:
			walk(n.Left)
			walk(n.Right)
		case *Not:
			walk(n.Formula)
		}
	}
	walk(f)
	return out
}
