// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/pkg/models"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant id from the identity provider
	OwnerID string `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// CompanyDescription holds the value of the "company_description" field.
	CompanyDescription string `json:"company_description,omitempty"`
	// Tone holds the value of the "tone" field.
	Tone agent.Tone `json:"tone,omitempty"`
	// BCP-47 tag
	Language string `json:"language,omitempty"`
	// GreetingMessage holds the value of the "greeting_message" field.
	GreetingMessage string `json:"greeting_message,omitempty"`
	// SalesStrategy holds the value of the "sales_strategy" field.
	SalesStrategy string `json:"sales_strategy,omitempty"`
	// Configured product list; entries are plain names or structured specs
	Products []models.ProductRef `json:"products,omitempty"`
	// Vector index filter key, assigned at creation and never reused
	IndexNamespace string `json:"index_namespace,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentQuery when eager-loading is set.
	Edges        AgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEdges holds the relations/edges for other nodes in the graph.
type AgentEdges struct {
	// Catalog holds the value of the catalog edge.
	Catalog []*Product `json:"catalog,omitempty"`
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// TrainingData holds the value of the training_data edge.
	TrainingData []*TrainingData `json:"training_data,omitempty"`
	// Orders holds the value of the orders edge.
	Orders []*Order `json:"orders,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// CatalogOrErr returns the Catalog value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) CatalogOrErr() ([]*Product, error) {
	if e.loadedTypes[0] {
		return e.Catalog, nil
	}
	return nil, &NotLoadedError{edge: "catalog"}
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[1] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// TrainingDataOrErr returns the TrainingData value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) TrainingDataOrErr() ([]*TrainingData, error) {
	if e.loadedTypes[2] {
		return e.TrainingData, nil
	}
	return nil, &NotLoadedError{edge: "training_data"}
}

// OrdersOrErr returns the Orders value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) OrdersOrErr() ([]*Order, error) {
	if e.loadedTypes[3] {
		return e.Orders, nil
	}
	return nil, &NotLoadedError{edge: "orders"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldProducts:
			values[i] = new([]byte)
		case agent.FieldIsActive:
			values[i] = new(sql.NullBool)
		case agent.FieldID, agent.FieldOwnerID, agent.FieldName, agent.FieldCompanyName, agent.FieldCompanyDescription, agent.FieldTone, agent.FieldLanguage, agent.FieldGreetingMessage, agent.FieldSalesStrategy, agent.FieldIndexNamespace:
			values[i] = new(sql.NullString)
		case agent.FieldCreatedAt, agent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agent.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case agent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agent.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case agent.FieldCompanyDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_description", values[i])
			} else if value.Valid {
				_m.CompanyDescription = value.String
			}
		case agent.FieldTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tone", values[i])
			} else if value.Valid {
				_m.Tone = agent.Tone(value.String)
			}
		case agent.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case agent.FieldGreetingMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field greeting_message", values[i])
			} else if value.Valid {
				_m.GreetingMessage = value.String
			}
		case agent.FieldSalesStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sales_strategy", values[i])
			} else if value.Valid {
				_m.SalesStrategy = value.String
			}
		case agent.FieldProducts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field products", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Products); err != nil {
					return fmt.Errorf("unmarshal field products: %w", err)
				}
			}
		case agent.FieldIndexNamespace:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field index_namespace", values[i])
			} else if value.Valid {
				_m.IndexNamespace = value.String
			}
		case agent.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case agent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCatalog queries the "catalog" edge of the Agent entity.
func (_m *Agent) QueryCatalog() *ProductQuery {
	return NewAgentClient(_m.config).QueryCatalog(_m)
}

// QueryConversations queries the "conversations" edge of the Agent entity.
func (_m *Agent) QueryConversations() *ConversationQuery {
	return NewAgentClient(_m.config).QueryConversations(_m)
}

// QueryTrainingData queries the "training_data" edge of the Agent entity.
func (_m *Agent) QueryTrainingData() *TrainingDataQuery {
	return NewAgentClient(_m.config).QueryTrainingData(_m)
}

// QueryOrders queries the "orders" edge of the Agent entity.
func (_m *Agent) QueryOrders() *OrderQuery {
	return NewAgentClient(_m.config).QueryOrders(_m)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("company_description=")
	builder.WriteString(_m.CompanyDescription)
	builder.WriteString(", ")
	builder.WriteString("tone=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tone))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("greeting_message=")
	builder.WriteString(_m.GreetingMessage)
	builder.WriteString(", ")
	builder.WriteString("sales_strategy=")
	builder.WriteString(_m.SalesStrategy)
	builder.WriteString(", ")
	builder.WriteString("products=")
	builder.WriteString(fmt.Sprintf("%v", _m.Products))
	builder.WriteString(", ")
	builder.WriteString("index_namespace=")
	builder.WriteString(_m.IndexNamespace)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
