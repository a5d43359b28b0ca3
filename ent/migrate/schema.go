// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "size", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeInt},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "accounts_organizations_accounts",
				Columns:    []*schema.Column{AccountsColumns[7]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "account_organization_id_name",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[7], AccountsColumns[1]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeInt, Nullable: true},
		{Name: "organization_id", Type: field.TypeInt},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contacts_accounts_contacts",
				Columns:    []*schema.Column{ContactsColumns[6]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "contacts_organizations_contacts",
				Columns:    []*schema.Column{ContactsColumns[7]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contact_organization_id_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[7], ContactsColumns[2]},
			},
			{
				Name:    "contact_account_id",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[6]},
			},
		},
	}
	// InteractionLogsColumns holds the columns for the "interaction_logs" table.
	InteractionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"call", "email", "meeting", "note"}},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "contact_id", Type: field.TypeInt, Nullable: true},
		{Name: "lead_id", Type: field.TypeInt, Nullable: true},
		{Name: "opportunity_id", Type: field.TypeInt, Nullable: true},
		{Name: "organization_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// InteractionLogsTable holds the schema information for the "interaction_logs" table.
	InteractionLogsTable = &schema.Table{
		Name:       "interaction_logs",
		Columns:    InteractionLogsColumns,
		PrimaryKey: []*schema.Column{InteractionLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interaction_logs_contacts_interactions",
				Columns:    []*schema.Column{InteractionLogsColumns[4]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "interaction_logs_leads_interactions",
				Columns:    []*schema.Column{InteractionLogsColumns[5]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "interaction_logs_opportunities_interactions",
				Columns:    []*schema.Column{InteractionLogsColumns[6]},
				RefColumns: []*schema.Column{OpportunitiesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "interaction_logs_organizations_interactions",
				Columns:    []*schema.Column{InteractionLogsColumns[7]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "interaction_logs_users_interactions",
				Columns:    []*schema.Column{InteractionLogsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_interaction_log_org_time",
				Unique:  false,
				Columns: []*schema.Column{InteractionLogsColumns[7], InteractionLogsColumns[3]},
			},
			{
				Name:    "idx_interaction_log_user_time",
				Unique:  false,
				Columns: []*schema.Column{InteractionLogsColumns[8], InteractionLogsColumns[3]},
			},
			{
				Name:    "interactionlog_lead_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionLogsColumns[5]},
			},
			{
				Name:    "interactionlog_contact_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionLogsColumns[4]},
			},
			{
				Name:    "interactionlog_opportunity_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionLogsColumns[6]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "qualified", "converted", "disqualified"}, Default: "new"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeInt},
		{Name: "assigned_to_id", Type: field.TypeInt, Nullable: true},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_organizations_leads",
				Columns:    []*schema.Column{LeadsColumns[9]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "leads_users_assigned_leads",
				Columns:    []*schema.Column{LeadsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_organization_id_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9], LeadsColumns[6]},
			},
			{
				Name:    "lead_organization_id_email",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9], LeadsColumns[2]},
			},
			{
				Name:    "lead_assigned_to_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[10]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[7]},
			},
		},
	}
	// OpportunitiesColumns holds the columns for the "opportunities" table.
	OpportunitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, Default: 0},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"qualification", "proposal", "negotiation", "won", "lost"}, Default: "qualification"},
		{Name: "close_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeInt},
		{Name: "contact_id", Type: field.TypeInt, Nullable: true},
		{Name: "organization_id", Type: field.TypeInt},
		{Name: "owner_id", Type: field.TypeInt, Nullable: true},
	}
	// OpportunitiesTable holds the schema information for the "opportunities" table.
	OpportunitiesTable = &schema.Table{
		Name:       "opportunities",
		Columns:    OpportunitiesColumns,
		PrimaryKey: []*schema.Column{OpportunitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "opportunities_accounts_opportunities",
				Columns:    []*schema.Column{OpportunitiesColumns[7]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "opportunities_contacts_opportunities",
				Columns:    []*schema.Column{OpportunitiesColumns[8]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "opportunities_organizations_opportunities",
				Columns:    []*schema.Column{OpportunitiesColumns[9]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "opportunities_users_opportunities",
				Columns:    []*schema.Column{OpportunitiesColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "opportunity_organization_id_stage",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[9], OpportunitiesColumns[3]},
			},
			{
				Name:    "opportunity_account_id",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[7]},
			},
			{
				Name:    "opportunity_owner_id",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[10]},
			},
			{
				Name:    "opportunity_created_at",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[5]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "USD"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeInt},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "products_organizations_products",
				Columns:    []*schema.Column{ProductsColumns[7]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "product_organization_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[7], ProductsColumns[5]},
			},
		},
	}
	// QuotesColumns holds the columns for the "quotes" table.
	QuotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "total_price", Type: field.TypeFloat64, Default: 0},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "opportunity_id", Type: field.TypeInt},
		{Name: "organization_id", Type: field.TypeInt},
		{Name: "created_by_id", Type: field.TypeInt},
	}
	// QuotesTable holds the schema information for the "quotes" table.
	QuotesTable = &schema.Table{
		Name:       "quotes",
		Columns:    QuotesColumns,
		PrimaryKey: []*schema.Column{QuotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quotes_opportunities_quotes",
				Columns:    []*schema.Column{QuotesColumns[5]},
				RefColumns: []*schema.Column{OpportunitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "quotes_organizations_quotes",
				Columns:    []*schema.Column{QuotesColumns[6]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "quotes_users_quotes",
				Columns:    []*schema.Column{QuotesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quote_organization_id",
				Unique:  false,
				Columns: []*schema.Column{QuotesColumns[6]},
			},
			{
				Name:    "quote_opportunity_id",
				Unique:  false,
				Columns: []*schema.Column{QuotesColumns[5]},
			},
		},
	}
	// QuoteLineItemsColumns holds the columns for the "quote_line_items" table.
	QuoteLineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "unit_price", Type: field.TypeFloat64},
		{Name: "organization_id", Type: field.TypeInt},
		{Name: "product_id", Type: field.TypeInt, Nullable: true},
		{Name: "quote_id", Type: field.TypeInt},
	}
	// QuoteLineItemsTable holds the schema information for the "quote_line_items" table.
	QuoteLineItemsTable = &schema.Table{
		Name:       "quote_line_items",
		Columns:    QuoteLineItemsColumns,
		PrimaryKey: []*schema.Column{QuoteLineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quote_line_items_organizations_line_items",
				Columns:    []*schema.Column{QuoteLineItemsColumns[3]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "quote_line_items_products_line_items",
				Columns:    []*schema.Column{QuoteLineItemsColumns[4]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "quote_line_items_quotes_line_items",
				Columns:    []*schema.Column{QuoteLineItemsColumns[5]},
				RefColumns: []*schema.Column{QuotesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quotelineitem_quote_id",
				Unique:  false,
				Columns: []*schema.Column{QuoteLineItemsColumns[5]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"call", "email", "meeting", "demo"}},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "overdue"}, Default: "pending"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt, Nullable: true},
		{Name: "opportunity_id", Type: field.TypeInt, Nullable: true},
		{Name: "organization_id", Type: field.TypeInt},
		{Name: "owner_id", Type: field.TypeInt},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_leads_tasks",
				Columns:    []*schema.Column{TasksColumns[7]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "tasks_opportunities_tasks",
				Columns:    []*schema.Column{TasksColumns[8]},
				RefColumns: []*schema.Column{OpportunitiesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "tasks_organizations_tasks",
				Columns:    []*schema.Column{TasksColumns[9]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tasks_users_tasks",
				Columns:    []*schema.Column{TasksColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_organization_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9], TasksColumns[4]},
			},
			{
				Name:    "task_organization_id_due_date",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9], TasksColumns[3]},
			},
			{
				Name:    "task_owner_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "manager", "sales_rep"}, Default: "sales_rep"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeInt, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_organizations_users",
				Columns:    []*schema.Column{UsersColumns[9]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_organization_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		ContactsTable,
		InteractionLogsTable,
		LeadsTable,
		OpportunitiesTable,
		OrganizationsTable,
		ProductsTable,
		QuotesTable,
		QuoteLineItemsTable,
		TasksTable,
		UsersTable,
	}
)

func init() {
	AccountsTable.ForeignKeys[0].RefTable = OrganizationsTable
	ContactsTable.ForeignKeys[0].RefTable = AccountsTable
	ContactsTable.ForeignKeys[1].RefTable = OrganizationsTable
	InteractionLogsTable.ForeignKeys[0].RefTable = ContactsTable
	InteractionLogsTable.ForeignKeys[1].RefTable = LeadsTable
	InteractionLogsTable.ForeignKeys[2].RefTable = OpportunitiesTable
	InteractionLogsTable.ForeignKeys[3].RefTable = OrganizationsTable
	InteractionLogsTable.ForeignKeys[4].RefTable = UsersTable
	LeadsTable.ForeignKeys[0].RefTable = OrganizationsTable
	LeadsTable.ForeignKeys[1].RefTable = UsersTable
	OpportunitiesTable.ForeignKeys[0].RefTable = AccountsTable
	OpportunitiesTable.ForeignKeys[1].RefTable = ContactsTable
	OpportunitiesTable.ForeignKeys[2].RefTable = OrganizationsTable
	OpportunitiesTable.ForeignKeys[3].RefTable = UsersTable
	ProductsTable.ForeignKeys[0].RefTable = OrganizationsTable
	QuotesTable.ForeignKeys[0].RefTable = OpportunitiesTable
	QuotesTable.ForeignKeys[1].RefTable = OrganizationsTable
	QuotesTable.ForeignKeys[2].RefTable = UsersTable
	QuoteLineItemsTable.ForeignKeys[0].RefTable = OrganizationsTable
	QuoteLineItemsTable.ForeignKeys[1].RefTable = ProductsTable
	QuoteLineItemsTable.ForeignKeys[2].RefTable = QuotesTable
	TasksTable.ForeignKeys[0].RefTable = LeadsTable
	TasksTable.ForeignKeys[1].RefTable = OpportunitiesTable
	TasksTable.ForeignKeys[2].RefTable = OrganizationsTable
	TasksTable.ForeignKeys[3].RefTable = UsersTable
	UsersTable.ForeignKeys[0].RefTable = OrganizationsTable
}
