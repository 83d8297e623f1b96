package model

// Entities lists every persisted entity, parents before children. Migration,
// force-sync (which drops in reverse) and the inspect script all read it.
func Entities() []any {
	return []any{
		&User{},
		&Address{},
		&Category{},
		&UnitType{},
		&Product{},
		&PackType{},
		&Pack{},
		&PackProduct{},
		&Cart{},
		&Order{},
		&Payment{},
		&OrderPackContent{},
	}
}

// TableNames returns the table of each registered entity in registry order.
func TableNames() []string {
	entities := Entities()
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		if t, ok := e.(interface{ TableName() string }); ok {
			names = append(names, t.TableName())
		}
	}
	return names
}
