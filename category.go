// category.go - the failure categories understood by the library.
//
// Intent:
//   - Name every class of failure the measurement library reports.
//   - Keep the set open: new categories may be declared anywhere without a
//     central registry and without breaking callers.
//
// Conventions (documented, not enforced here):
//   - The constant value equals its identifier, so Error() renders the tag.
//   - Code switching on a Category must carry a default arm; the set grows.
package fallible

// Category classifies an Error.
//
// It is stringly typed so that adding a category is never a breaking change
// and so the rendered form is the symbolic name itself.
type Category string

// Boundary / parsing
const (
	FFI       Category = "FFI"
	TypeParse Category = "TypeParse"
)

// Invocation
const (
	FailedFunction Category = "FailedFunction"
	FailedMap      Category = "FailedMap"
	RelationDebug  Category = "RelationDebug"
	FailedCast     Category = "FailedCast"
)

// Compatibility between two descriptors that are expected to agree
const (
	DomainMismatch  Category = "DomainMismatch"
	MetricMismatch  Category = "MetricMismatch"
	MeasureMismatch Category = "MeasureMismatch"
)

// Constructor validation
const (
	MakeDomain         Category = "MakeDomain"
	MakeTransformation Category = "MakeTransformation"
	MakeMeasurement    Category = "MakeMeasurement"
)

// Meta
const (
	InvalidDistance Category = "InvalidDistance"
	NotImplemented  Category = "NotImplemented"
)

// allBuiltinCategories is the ordered set of categories the core ships with.
var allBuiltinCategories = []Category{
	FFI,
	TypeParse,
	FailedFunction,
	FailedMap,
	RelationDebug,
	FailedCast,
	DomainMismatch,
	MetricMismatch,
	MeasureMismatch,
	MakeDomain,
	MakeTransformation,
	MakeMeasurement,
	InvalidDistance,
	NotImplemented,
}

var builtinCategorySet = map[Category]struct{}{
	FFI:                {},
	TypeParse:          {},
	FailedFunction:     {},
	FailedMap:          {},
	RelationDebug:      {},
	FailedCast:         {},
	DomainMismatch:     {},
	MetricMismatch:     {},
	MeasureMismatch:    {},
	MakeDomain:         {},
	MakeTransformation: {},
	MakeMeasurement:    {},
	InvalidDistance:    {},
	NotImplemented:     {},
}

// BuiltinCategories returns a copy of the built-in categories in a stable order.
func BuiltinCategories() []Category {
	out := make([]Category, len(allBuiltinCategories))
	copy(out, allBuiltinCategories)
	return out
}

// IsBuiltin reports whether c is one of the built-in categories.
// Projects may declare and use their own categories freely.
func (c Category) IsBuiltin() bool {
	_, ok := builtinCategorySet[c]
	return ok
}

func (c Category) String() string { return string(c) }

// Err promotes a bare category into an Error with no message.
func (c Category) Err() Error { return Error{category: c} }
