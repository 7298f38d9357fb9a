// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/merxlab/merx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyDescription applies equality check predicate on the "company_description" field. It's identical to CompanyDescriptionEQ.
func CompanyDescription(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCompanyDescription, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLanguage, v))
}

// GreetingMessage applies equality check predicate on the "greeting_message" field. It's identical to GreetingMessageEQ.
func GreetingMessage(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldGreetingMessage, v))
}

// SalesStrategy applies equality check predicate on the "sales_strategy" field. It's identical to SalesStrategyEQ.
func SalesStrategy(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSalesStrategy, v))
}

// IndexNamespace applies equality check predicate on the "index_namespace" field. It's identical to IndexNamespaceEQ.
func IndexNamespace(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldIndexNamespace, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldName, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldCompanyName, v))
}

// CompanyDescriptionEQ applies the EQ predicate on the "company_description" field.
func CompanyDescriptionEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCompanyDescription, v))
}

// CompanyDescriptionNEQ applies the NEQ predicate on the "company_description" field.
func CompanyDescriptionNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCompanyDescription, v))
}

// CompanyDescriptionIn applies the In predicate on the "company_description" field.
func CompanyDescriptionIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCompanyDescription, vs...))
}

// CompanyDescriptionNotIn applies the NotIn predicate on the "company_description" field.
func CompanyDescriptionNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCompanyDescription, vs...))
}

// CompanyDescriptionGT applies the GT predicate on the "company_description" field.
func CompanyDescriptionGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCompanyDescription, v))
}

// CompanyDescriptionGTE applies the GTE predicate on the "company_description" field.
func CompanyDescriptionGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCompanyDescription, v))
}

// CompanyDescriptionLT applies the LT predicate on the "company_description" field.
func CompanyDescriptionLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCompanyDescription, v))
}

// CompanyDescriptionLTE applies the LTE predicate on the "company_description" field.
func CompanyDescriptionLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCompanyDescription, v))
}

// CompanyDescriptionContains applies the Contains predicate on the "company_description" field.
func CompanyDescriptionContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldCompanyDescription, v))
}

// CompanyDescriptionHasPrefix applies the HasPrefix predicate on the "company_description" field.
func CompanyDescriptionHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldCompanyDescription, v))
}

// CompanyDescriptionHasSuffix applies the HasSuffix predicate on the "company_description" field.
func CompanyDescriptionHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldCompanyDescription, v))
}

// CompanyDescriptionIsNil applies the IsNil predicate on the "company_description" field.
func CompanyDescriptionIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCompanyDescription))
}

// CompanyDescriptionNotNil applies the NotNil predicate on the "company_description" field.
func CompanyDescriptionNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCompanyDescription))
}

// CompanyDescriptionEqualFold applies the EqualFold predicate on the "company_description" field.
func CompanyDescriptionEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldCompanyDescription, v))
}

// CompanyDescriptionContainsFold applies the ContainsFold predicate on the "company_description" field.
func CompanyDescriptionContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldCompanyDescription, v))
}

// ToneEQ applies the EQ predicate on the "tone" field.
func ToneEQ(v Tone) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTone, v))
}

// ToneNEQ applies the NEQ predicate on the "tone" field.
func ToneNEQ(v Tone) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTone, v))
}

// ToneIn applies the In predicate on the "tone" field.
func ToneIn(vs ...Tone) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTone, vs...))
}

// ToneNotIn applies the NotIn predicate on the "tone" field.
func ToneNotIn(vs ...Tone) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTone, vs...))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldLanguage, v))
}

// GreetingMessageEQ applies the EQ predicate on the "greeting_message" field.
func GreetingMessageEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldGreetingMessage, v))
}

// GreetingMessageNEQ applies the NEQ predicate on the "greeting_message" field.
func GreetingMessageNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldGreetingMessage, v))
}

// GreetingMessageIn applies the In predicate on the "greeting_message" field.
func GreetingMessageIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldGreetingMessage, vs...))
}

// GreetingMessageNotIn applies the NotIn predicate on the "greeting_message" field.
func GreetingMessageNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldGreetingMessage, vs...))
}

// GreetingMessageGT applies the GT predicate on the "greeting_message" field.
func GreetingMessageGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldGreetingMessage, v))
}

// GreetingMessageGTE applies the GTE predicate on the "greeting_message" field.
func GreetingMessageGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldGreetingMessage, v))
}

// GreetingMessageLT applies the LT predicate on the "greeting_message" field.
func GreetingMessageLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldGreetingMessage, v))
}

// GreetingMessageLTE applies the LTE predicate on the "greeting_message" field.
func GreetingMessageLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldGreetingMessage, v))
}

// GreetingMessageContains applies the Contains predicate on the "greeting_message" field.
func GreetingMessageContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldGreetingMessage, v))
}

// GreetingMessageHasPrefix applies the HasPrefix predicate on the "greeting_message" field.
func GreetingMessageHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldGreetingMessage, v))
}

// GreetingMessageHasSuffix applies the HasSuffix predicate on the "greeting_message" field.
func GreetingMessageHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldGreetingMessage, v))
}

// GreetingMessageIsNil applies the IsNil predicate on the "greeting_message" field.
func GreetingMessageIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldGreetingMessage))
}

// GreetingMessageNotNil applies the NotNil predicate on the "greeting_message" field.
func GreetingMessageNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldGreetingMessage))
}

// GreetingMessageEqualFold applies the EqualFold predicate on the "greeting_message" field.
func GreetingMessageEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldGreetingMessage, v))
}

// GreetingMessageContainsFold applies the ContainsFold predicate on the "greeting_message" field.
func GreetingMessageContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldGreetingMessage, v))
}

// SalesStrategyEQ applies the EQ predicate on the "sales_strategy" field.
func SalesStrategyEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSalesStrategy, v))
}

// SalesStrategyNEQ applies the NEQ predicate on the "sales_strategy" field.
func SalesStrategyNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSalesStrategy, v))
}

// SalesStrategyIn applies the In predicate on the "sales_strategy" field.
func SalesStrategyIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSalesStrategy, vs...))
}

// SalesStrategyNotIn applies the NotIn predicate on the "sales_strategy" field.
func SalesStrategyNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSalesStrategy, vs...))
}

// SalesStrategyGT applies the GT predicate on the "sales_strategy" field.
func SalesStrategyGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSalesStrategy, v))
}

// SalesStrategyGTE applies the GTE predicate on the "sales_strategy" field.
func SalesStrategyGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSalesStrategy, v))
}

// SalesStrategyLT applies the LT predicate on the "sales_strategy" field.
func SalesStrategyLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSalesStrategy, v))
}

// SalesStrategyLTE applies the LTE predicate on the "sales_strategy" field.
func SalesStrategyLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSalesStrategy, v))
}

// SalesStrategyContains applies the Contains predicate on the "sales_strategy" field.
func SalesStrategyContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldSalesStrategy, v))
}

// SalesStrategyHasPrefix applies the HasPrefix predicate on the "sales_strategy" field.
func SalesStrategyHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldSalesStrategy, v))
}

// SalesStrategyHasSuffix applies the HasSuffix predicate on the "sales_strategy" field.
func SalesStrategyHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldSalesStrategy, v))
}

// SalesStrategyIsNil applies the IsNil predicate on the "sales_strategy" field.
func SalesStrategyIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldSalesStrategy))
}

// SalesStrategyNotNil applies the NotNil predicate on the "sales_strategy" field.
func SalesStrategyNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldSalesStrategy))
}

// SalesStrategyEqualFold applies the EqualFold predicate on the "sales_strategy" field.
func SalesStrategyEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldSalesStrategy, v))
}

// SalesStrategyContainsFold applies the ContainsFold predicate on the "sales_strategy" field.
func SalesStrategyContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldSalesStrategy, v))
}

// ProductsIsNil applies the IsNil predicate on the "products" field.
func ProductsIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldProducts))
}

// ProductsNotNil applies the NotNil predicate on the "products" field.
func ProductsNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldProducts))
}

// IndexNamespaceEQ applies the EQ predicate on the "index_namespace" field.
func IndexNamespaceEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldIndexNamespace, v))
}

// IndexNamespaceNEQ applies the NEQ predicate on the "index_namespace" field.
func IndexNamespaceNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldIndexNamespace, v))
}

// IndexNamespaceIn applies the In predicate on the "index_namespace" field.
func IndexNamespaceIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldIndexNamespace, vs...))
}

// IndexNamespaceNotIn applies the NotIn predicate on the "index_namespace" field.
func IndexNamespaceNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldIndexNamespace, vs...))
}

// IndexNamespaceGT applies the GT predicate on the "index_namespace" field.
func IndexNamespaceGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldIndexNamespace, v))
}

// IndexNamespaceGTE applies the GTE predicate on the "index_namespace" field.
func IndexNamespaceGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldIndexNamespace, v))
}

// IndexNamespaceLT applies the LT predicate on the "index_namespace" field.
func IndexNamespaceLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldIndexNamespace, v))
}

// IndexNamespaceLTE applies the LTE predicate on the "index_namespace" field.
func IndexNamespaceLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldIndexNamespace, v))
}

// IndexNamespaceContains applies the Contains predicate on the "index_namespace" field.
func IndexNamespaceContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldIndexNamespace, v))
}

// IndexNamespaceHasPrefix applies the HasPrefix predicate on the "index_namespace" field.
func IndexNamespaceHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldIndexNamespace, v))
}

// IndexNamespaceHasSuffix applies the HasSuffix predicate on the "index_namespace" field.
func IndexNamespaceHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldIndexNamespace, v))
}

// IndexNamespaceEqualFold applies the EqualFold predicate on the "index_namespace" field.
func IndexNamespaceEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldIndexNamespace, v))
}

// IndexNamespaceContainsFold applies the ContainsFold predicate on the "index_namespace" field.
func IndexNamespaceContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldIndexNamespace, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCatalog applies the HasEdge predicate on the "catalog" edge.
func HasCatalog() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CatalogTable, CatalogColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCatalogWith applies the HasEdge predicate on the "catalog" edge with a given conditions (other predicates).
func HasCatalogWith(preds ...predicate.Product) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newCatalogStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConversations applies the HasEdge predicate on the "conversations" edge.
func HasConversations() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationsWith applies the HasEdge predicate on the "conversations" edge with a given conditions (other predicates).
func HasConversationsWith(preds ...predicate.Conversation) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newConversationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTrainingData applies the HasEdge predicate on the "training_data" edge.
func HasTrainingData() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TrainingDataTable, TrainingDataColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrainingDataWith applies the HasEdge predicate on the "training_data" edge with a given conditions (other predicates).
func HasTrainingDataWith(preds ...predicate.TrainingData) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newTrainingDataStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrders applies the HasEdge predicate on the "orders" edge.
func HasOrders() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OrdersTable, OrdersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrdersWith applies the HasEdge predicate on the "orders" edge with a given conditions (other predicates).
func HasOrdersWith(preds ...predicate.Order) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newOrdersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
