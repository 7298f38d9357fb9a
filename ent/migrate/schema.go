// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString},
		{Name: "company_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tone", Type: field.TypeEnum, Enums: []string{"friendly", "professional", "casual", "formal"}, Default: "friendly"},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "greeting_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sales_strategy", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "products", Type: field.TypeJSON, Nullable: true},
		{Name: "index_namespace", Type: field.TypeString, Unique: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_owner_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1]},
			},
			{
				Name:    "agent_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[12]},
			},
			{
				Name:    "agent_is_active",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[11]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "messages", Type: field.TypeJSON, Nullable: true},
		{Name: "lead_info", Type: field.TypeJSON, Nullable: true},
		{Name: "channel", Type: field.TypeString, Default: "web"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_agents_conversations",
				Columns:    []*schema.Column{ConversationsColumns[7]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_agent_id_session_id",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[7], ConversationsColumns[1]},
			},
			{
				Name:    "conversation_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[7], ConversationsColumns[5]},
			},
			{
				Name:    "conversation_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[5]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "order_id", Type: field.TypeString, Unique: true},
		{Name: "order_number", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "customer_email", Type: field.TypeString, Nullable: true},
		{Name: "customer_phone", Type: field.TypeString, Nullable: true},
		{Name: "shipping_address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "items", Type: field.TypeJSON},
		{Name: "total_amount", Type: field.TypeFloat64, Default: 0},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "processing", "packaged", "shipped", "delivered", "cancelled"}, Default: "pending"},
		{Name: "status_history", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "orders_agents_orders",
				Columns:    []*schema.Column{OrdersColumns[15]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "order_agent_id",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[15]},
			},
			{
				Name:    "order_agent_id_session_id",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[15], OrdersColumns[2]},
			},
			{
				Name:    "order_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[15], OrdersColumns[13]},
			},
			{
				Name:    "order_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[10]},
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "product_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "detailed_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "price", Type: field.TypeFloat64, Default: 0},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "specifications", Type: field.TypeJSON, Nullable: true},
		{Name: "stock_status", Type: field.TypeEnum, Enums: []string{"in_stock", "low_stock", "out_of_stock", "pre_order", "discontinued"}, Default: "in_stock"},
		{Name: "sku", Type: field.TypeString, Nullable: true},
		{Name: "is_featured", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "products_agents_catalog",
				Columns:    []*schema.Column{ProductsColumns[16]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "product_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[16]},
			},
			{
				Name:    "product_agent_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[16], ProductsColumns[13]},
			},
			{
				Name:    "product_agent_id_category",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[16], ProductsColumns[7]},
			},
		},
	}
	// TrainingDataColumns holds the columns for the "training_data" table.
	TrainingDataColumns = []*schema.Column{
		{Name: "training_data_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"pdf", "url", "faq", "text"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"processing", "completed", "failed"}, Default: "processing"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// TrainingDataTable holds the schema information for the "training_data" table.
	TrainingDataTable = &schema.Table{
		Name:       "training_data",
		Columns:    TrainingDataColumns,
		PrimaryKey: []*schema.Column{TrainingDataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "training_data_agents_training_data",
				Columns:    []*schema.Column{TrainingDataColumns[6]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trainingdata_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TrainingDataColumns[6]},
			},
			{
				Name:    "trainingdata_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{TrainingDataColumns[6], TrainingDataColumns[2]},
			},
			{
				Name:    "trainingdata_status",
				Unique:  false,
				Columns: []*schema.Column{TrainingDataColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		ConversationsTable,
		OrdersTable,
		ProductsTable,
		TrainingDataTable,
	}
)

func init() {
	AgentsTable.Annotation = &entsql.Annotation{
		Table: "agents",
	}
	ConversationsTable.ForeignKeys[0].RefTable = AgentsTable
	ConversationsTable.Annotation = &entsql.Annotation{
		Table: "conversations",
	}
	OrdersTable.ForeignKeys[0].RefTable = AgentsTable
	OrdersTable.Annotation = &entsql.Annotation{
		Table: "orders",
	}
	ProductsTable.ForeignKeys[0].RefTable = AgentsTable
	ProductsTable.Annotation = &entsql.Annotation{
		Table: "products",
	}
	TrainingDataTable.ForeignKeys[0].RefTable = AgentsTable
	TrainingDataTable.Annotation = &entsql.Annotation{
		Table: "training_data",
	}
}
