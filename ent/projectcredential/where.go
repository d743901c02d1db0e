// Code generated by ent, DO NOT EDIT.

package projectcredential

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/weftworks/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldProjectID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldProvider, v))
}

// Ciphertext applies equality check predicate on the "ciphertext" field. It's identical to CiphertextEQ.
func Ciphertext(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldCiphertext, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldContainsFold(FieldProjectID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldContainsFold(FieldProvider, v))
}

// CiphertextEQ applies the EQ predicate on the "ciphertext" field.
func CiphertextEQ(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldCiphertext, v))
}

// CiphertextNEQ applies the NEQ predicate on the "ciphertext" field.
func CiphertextNEQ(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldCiphertext, v))
}

// CiphertextIn applies the In predicate on the "ciphertext" field.
func CiphertextIn(vs ...[]byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldCiphertext, vs...))
}

// CiphertextNotIn applies the NotIn predicate on the "ciphertext" field.
func CiphertextNotIn(vs ...[]byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldCiphertext, vs...))
}

// CiphertextGT applies the GT predicate on the "ciphertext" field.
func CiphertextGT(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldCiphertext, v))
}

// CiphertextGTE applies the GTE predicate on the "ciphertext" field.
func CiphertextGTE(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldCiphertext, v))
}

// CiphertextLT applies the LT predicate on the "ciphertext" field.
func CiphertextLT(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldCiphertext, v))
}

// CiphertextLTE applies the LTE predicate on the "ciphertext" field.
func CiphertextLTE(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldCiphertext, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectCredential) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectCredential) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectCredential) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.NotPredicates(p))
}
