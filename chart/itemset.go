package chart

// itemset is a set of chart items, used to track the items on the path from
// the root during tree enumeration.
type itemset map[*item]struct{}

var exists = struct{}{}

func (set itemset) add(it *item) itemset {
	if set == nil {
		set = itemset{}
	}
	set[it] = exists
	return set
}

func (set itemset) contains(it *item) bool {
	if set == nil || it == nil {
		return false
	}
	_, ok := set[it]
	return ok
}

func (set itemset) delete(it *item) {
	if set != nil {
		delete(set, it)
	}
}
