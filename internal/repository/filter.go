package repository

// Op is a comparison operator in a filter condition.
type Op int

const (
	OpEq Op = iota
	OpIsNull
	OpPrefix
	OpGte
	OpLt
	OpNe
)

// Condition compares one column with a value.
// Value is ignored for OpIsNull.
type Condition struct {
	Column string
	Op     Op
	Value  any
}

// Filter is a conjunction of conditions. A nil Filter matches every row.
type Filter []Condition

// Eq matches rows where column equals v.
func Eq(column string, v any) Condition {
	return Condition{Column: column, Op: OpEq, Value: v}
}

// IsNull matches rows where column is NULL.
func IsNull(column string) Condition {
	return Condition{Column: column, Op: OpIsNull}
}

// HasPrefix matches rows where the text column starts with prefix.
func HasPrefix(column, prefix string) Condition {
	return Condition{Column: column, Op: OpPrefix, Value: prefix}
}

// Gte matches rows where column >= v.
func Gte(column string, v any) Condition {
	return Condition{Column: column, Op: OpGte, Value: v}
}

// Lt matches rows where column < v.
func Lt(column string, v any) Condition {
	return Condition{Column: column, Op: OpLt, Value: v}
}

// Ne matches rows where column differs from v.
func Ne(column string, v any) Condition {
	return Condition{Column: column, Op: OpNe, Value: v}
}

// Where builds a Filter from conditions.
func Where(conds ...Condition) Filter {
	return Filter(conds)
}
