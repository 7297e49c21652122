package ast

// Equal reports whether the subtree at ra in a and the subtree at rb in b are
// structurally equal. Slot numbering plays no part in the comparison.
func Equal(a Resolver, ra Ref, b Resolver, rb Ref) (bool, error) {
	na, err := a.Resolve(ra)
	if err != nil {
		return false, err
	}
	nb, err := b.Resolve(rb)
	if err != nil {
		return false, err
	}
	if !na.ShallowEqual(nb) {
		return false, nil
	}
	ca, cb := na.Children(), nb.Children()
	if len(ca) != len(cb) {
		return false, nil
	}
	for i := range ca {
		eq, err := Equal(a, ca[i], b, cb[i])
		if err != nil || !eq {
			return eq, err
		}
	}
	return true, nil
}
