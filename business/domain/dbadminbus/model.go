package dbadminbus

// Table describes an entry in the ops console allowlist. Only tables in the
// registry can be read or mutated through the console.
type Table struct {
	Name       string
	PrimaryKey string
	Mutable    bool
}

// Column describes a table column as reported by information_schema.
type Column struct {
	Name     string
	DataType string
	Nullable bool
	Default  string
}

// Enum describes a database enum type and its values.
type Enum struct {
	Name   string
	Values []string
}

// RowPage is one page of rows from a generic table query with the exact
// total for the filter.
type RowPage struct {
	Rows  []map[string]any
	Total int
}
