// Package query builds storage-agnostic predicate trees from validated
// listing parameters. The trees are interpreted by the repository layer;
// nothing here knows about SQL or HTTP.
package query

// Field identifies an entity attribute referenced by a predicate. The
// repositories map fields onto their storage columns.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldTags        Field = "tags"
	FieldCategory    Field = "category"
	FieldCreatedAt   Field = "created_at"

	FieldSellerID    Field = "seller_id"
	FieldPrice       Field = "price"
	FieldGigActive   Field = "is_active"
	FieldOwnerBanned Field = "owner_banned"

	FieldClientID  Field = "client_id"
	FieldBudgetMin Field = "budget_min"
	FieldBudgetMax Field = "budget_max"
	FieldDeadline  Field = "deadline"
	FieldStatus    Field = "status"

	FieldRequestID    Field = "request_id"
	FieldFreelancerID Field = "freelancer_id"
)

type Op int

const (
	OpEq Op = iota
	OpGTE
	OpLTE
	// OpContainsFold is a case-insensitive substring match.
	OpContainsFold
	// OpHasTag is set membership on a tag collection field.
	OpHasTag
	OpAnd
	OpOr
)

// Predicate is one node of the tree. Leaf nodes carry Field/Value,
// OpAnd/OpOr nodes carry Subs.
type Predicate struct {
	Op    Op
	Field Field
	Value interface{}
	Subs  []Predicate
}

func Eq(f Field, v interface{}) Predicate  { return Predicate{Op: OpEq, Field: f, Value: v} }
func GTE(f Field, v interface{}) Predicate { return Predicate{Op: OpGTE, Field: f, Value: v} }
func LTE(f Field, v interface{}) Predicate { return Predicate{Op: OpLTE, Field: f, Value: v} }

func ContainsFold(f Field, s string) Predicate {
	return Predicate{Op: OpContainsFold, Field: f, Value: s}
}

func HasTag(f Field, tag string) Predicate {
	return Predicate{Op: OpHasTag, Field: f, Value: tag}
}

// And conjoins the given predicates. An empty conjunction matches everything.
func And(subs ...Predicate) Predicate { return Predicate{Op: OpAnd, Subs: subs} }

func Or(subs ...Predicate) Predicate { return Predicate{Op: OpOr, Subs: subs} }
