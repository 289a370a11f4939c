package gen

// Assemble combines the generated tables into a bundle after verifying, in
// order: primary key uniqueness per table, mid→top resolution, then
// leaf→parent resolution. The first violation aborts assembly; rows are
// never silently dropped. mids may be empty for two-tier datasets, in which
// case leaves must resolve against the top table.
func Assemble(tops []TopEntity, mids []MidEntity, leafs []LeafEntity) (*Bundle, error) {
	topKeys := make(map[string]struct{}, len(tops))
	for i, t := range tops {
		if _, dup := topKeys[t.ID]; dup {
			return nil, &IntegrityError{Table: "top", Row: i, Key: t.ID}
		}
		topKeys[t.ID] = struct{}{}
	}

	midKeys := make(map[string]struct{}, len(mids))
	for i, m := range mids {
		if _, dup := midKeys[m.ID]; dup {
			return nil, &IntegrityError{Table: "mid", Row: i, Key: m.ID}
		}
		midKeys[m.ID] = struct{}{}
	}

	leafKeys := make(map[string]struct{}, len(leafs))
	for i, l := range leafs {
		if _, dup := leafKeys[l.ID]; dup {
			return nil, &IntegrityError{Table: "leaf", Row: i, Key: l.ID}
		}
		leafKeys[l.ID] = struct{}{}
	}

	for i, m := range mids {
		if _, ok := topKeys[m.TopID]; !ok {
			return nil, &IntegrityError{Table: "mid", Row: i, Key: m.TopID}
		}
	}

	parentKeys := midKeys
	if len(mids) == 0 {
		parentKeys = topKeys
	}
	for i, l := range leafs {
		if _, ok := parentKeys[l.ParentID]; !ok {
			return nil, &IntegrityError{Table: "leaf", Row: i, Key: l.ParentID}
		}
	}

	return &Bundle{Tops: tops, Mids: mids, Leafs: leafs}, nil
}
