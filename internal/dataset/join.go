package dataset

import "fmt"

// InnerJoin joins left and right on their key columns, keeping only rows
// whose key appears on both sides. A key repeated on the right fans out
// one-to-many, standard join semantics. The result carries a single
// identifier column, the left key, with left columns before right columns.
func InnerJoin(left, right Table, leftKey, rightKey string) (Table, error) {
	if !left.Schema.Has(leftKey) {
		return Table{}, &ColumnError{Column: leftKey}
	}
	if !right.Schema.Has(rightKey) {
		return Table{}, &ColumnError{Column: rightKey}
	}

	schema := left.Schema.clone()
	for _, c := range right.Schema {
		if c.Name == rightKey {
			continue
		}
		if schema.Has(c.Name) {
			return Table{}, fmt.Errorf("dataset: column %q present on both sides of join", c.Name)
		}
		schema = append(schema, c)
	}

	byKey := make(map[string][]Row, len(right.Rows))
	for _, r := range right.Rows {
		if IsMissing(r[rightKey]) {
			continue
		}
		k := Format(r[rightKey])
		byKey[k] = append(byKey[k], r)
	}

	out := Table{Schema: schema}
	for _, lr := range left.Rows {
		if IsMissing(lr[leftKey]) {
			continue
		}
		for _, rr := range byKey[Format(lr[leftKey])] {
			row := lr.clone()
			for _, c := range right.Schema {
				if c.Name == rightKey {
					continue
				}
				row[c.Name] = rr[c.Name]
			}
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}
