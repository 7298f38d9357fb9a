// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldCompanyDescription holds the string denoting the company_description field in the database.
	FieldCompanyDescription = "company_description"
	// FieldTone holds the string denoting the tone field in the database.
	FieldTone = "tone"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldGreetingMessage holds the string denoting the greeting_message field in the database.
	FieldGreetingMessage = "greeting_message"
	// FieldSalesStrategy holds the string denoting the sales_strategy field in the database.
	FieldSalesStrategy = "sales_strategy"
	// FieldProducts holds the string denoting the products field in the database.
	FieldProducts = "products"
	// FieldIndexNamespace holds the string denoting the index_namespace field in the database.
	FieldIndexNamespace = "index_namespace"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCatalog holds the string denoting the catalog edge name in mutations.
	EdgeCatalog = "catalog"
	// EdgeConversations holds the string denoting the conversations edge name in mutations.
	EdgeConversations = "conversations"
	// EdgeTrainingData holds the string denoting the training_data edge name in mutations.
	EdgeTrainingData = "training_data"
	// EdgeOrders holds the string denoting the orders edge name in mutations.
	EdgeOrders = "orders"
	// ProductFieldID holds the string denoting the ID field of the Product.
	ProductFieldID = "product_id"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// TrainingDataFieldID holds the string denoting the ID field of the TrainingData.
	TrainingDataFieldID = "training_data_id"
	// OrderFieldID holds the string denoting the ID field of the Order.
	OrderFieldID = "order_id"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// CatalogTable is the table that holds the catalog relation/edge.
	CatalogTable = "products"
	// CatalogInverseTable is the table name for the Product entity.
	// It exists in this package in order to avoid circular dependency with the "product" package.
	CatalogInverseTable = "products"
	// CatalogColumn is the table column denoting the catalog relation/edge.
	CatalogColumn = "agent_id"
	// ConversationsTable is the table that holds the conversations relation/edge.
	ConversationsTable = "conversations"
	// ConversationsInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationsInverseTable = "conversations"
	// ConversationsColumn is the table column denoting the conversations relation/edge.
	ConversationsColumn = "agent_id"
	// TrainingDataTable is the table that holds the training_data relation/edge.
	TrainingDataTable = "training_data"
	// TrainingDataInverseTable is the table name for the TrainingData entity.
	// It exists in this package in order to avoid circular dependency with the "trainingdata" package.
	TrainingDataInverseTable = "training_data"
	// TrainingDataColumn is the table column denoting the training_data relation/edge.
	TrainingDataColumn = "agent_id"
	// OrdersTable is the table that holds the orders relation/edge.
	OrdersTable = "orders"
	// OrdersInverseTable is the table name for the Order entity.
	// It exists in this package in order to avoid circular dependency with the "order" package.
	OrdersInverseTable = "orders"
	// OrdersColumn is the table column denoting the orders relation/edge.
	OrdersColumn = "agent_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldName,
	FieldCompanyName,
	FieldCompanyDescription,
	FieldTone,
	FieldLanguage,
	FieldGreetingMessage,
	FieldSalesStrategy,
	FieldProducts,
	FieldIndexNamespace,
	FieldIsActive,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Tone defines the type for the "tone" enum field.
type Tone string

// ToneFriendly is the default value of the Tone enum.
const DefaultTone = ToneFriendly

// Tone values.
const (
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneFormal       Tone = "formal"
)

func (t Tone) String() string {
	return string(t)
}

// ToneValidator is a validator for the "tone" field enum values. It is called by the builders before save.
func ToneValidator(t Tone) error {
	switch t {
	case ToneFriendly, ToneProfessional, ToneCasual, ToneFormal:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for tone field: %q", t)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByCompanyDescription orders the results by the company_description field.
func ByCompanyDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyDescription, opts...).ToFunc()
}

// ByTone orders the results by the tone field.
func ByTone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTone, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByGreetingMessage orders the results by the greeting_message field.
func ByGreetingMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGreetingMessage, opts...).ToFunc()
}

// BySalesStrategy orders the results by the sales_strategy field.
func BySalesStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalesStrategy, opts...).ToFunc()
}

// ByIndexNamespace orders the results by the index_namespace field.
func ByIndexNamespace(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndexNamespace, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCatalogCount orders the results by catalog count.
func ByCatalogCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCatalogStep(), opts...)
	}
}

// ByCatalog orders the results by catalog terms.
func ByCatalog(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCatalogStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConversationsCount orders the results by conversations count.
func ByConversationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConversationsStep(), opts...)
	}
}

// ByConversations orders the results by conversations terms.
func ByConversations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTrainingDataCount orders the results by training_data count.
func ByTrainingDataCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrainingDataStep(), opts...)
	}
}

// ByTrainingData orders the results by training_data terms.
func ByTrainingData(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrainingDataStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOrdersCount orders the results by orders count.
func ByOrdersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOrdersStep(), opts...)
	}
}

// ByOrders orders the results by orders terms.
func ByOrders(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrdersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCatalogStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CatalogInverseTable, ProductFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CatalogTable, CatalogColumn),
	)
}
func newConversationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationsInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
	)
}
func newTrainingDataStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrainingDataInverseTable, TrainingDataFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrainingDataTable, TrainingDataColumn),
	)
}
func newOrdersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrdersInverseTable, OrderFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OrdersTable, OrdersColumn),
	)
}
