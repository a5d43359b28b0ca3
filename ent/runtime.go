// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sannty/salescrm/ent/account"
	"github.com/sannty/salescrm/ent/contact"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/organization"
	"github.com/sannty/salescrm/ent/product"
	"github.com/sannty/salescrm/ent/quote"
	"github.com/sannty/salescrm/ent/quotelineitem"
	"github.com/sannty/salescrm/ent/schema"
	"github.com/sannty/salescrm/ent/task"
	"github.com/sannty/salescrm/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescName is the schema descriptor for name field.
	accountDescName := accountFields[0].Descriptor()
	// account.NameValidator is a validator for the "name" field. It is called by the builders before save.
	account.NameValidator = accountDescName.Validators[0].(func(string) error)
	// accountDescOrganizationID is the schema descriptor for organization_id field.
	accountDescOrganizationID := accountFields[5].Descriptor()
	// account.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	account.OrganizationIDValidator = accountDescOrganizationID.Validators[0].(func(int) error)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[6].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescName is the schema descriptor for name field.
	contactDescName := contactFields[0].Descriptor()
	// contact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contact.NameValidator = contactDescName.Validators[0].(func(string) error)
	// contactDescEmail is the schema descriptor for email field.
	contactDescEmail := contactFields[1].Descriptor()
	// contact.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	contact.EmailValidator = contactDescEmail.Validators[0].(func(string) error)
	// contactDescOrganizationID is the schema descriptor for organization_id field.
	contactDescOrganizationID := contactFields[5].Descriptor()
	// contact.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	contact.OrganizationIDValidator = contactDescOrganizationID.Validators[0].(func(int) error)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[6].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	interactionlogFields := schema.InteractionLog{}.Fields()
	_ = interactionlogFields
	// interactionlogDescUserID is the schema descriptor for user_id field.
	interactionlogDescUserID := interactionlogFields[0].Descriptor()
	// interactionlog.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interactionlog.UserIDValidator = interactionlogDescUserID.Validators[0].(func(int) error)
	// interactionlogDescSummary is the schema descriptor for summary field.
	interactionlogDescSummary := interactionlogFields[5].Descriptor()
	// interactionlog.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	interactionlog.SummaryValidator = interactionlogDescSummary.Validators[0].(func(string) error)
	// interactionlogDescOrganizationID is the schema descriptor for organization_id field.
	interactionlogDescOrganizationID := interactionlogFields[6].Descriptor()
	// interactionlog.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	interactionlog.OrganizationIDValidator = interactionlogDescOrganizationID.Validators[0].(func(int) error)
	// interactionlogDescTimestamp is the schema descriptor for timestamp field.
	interactionlogDescTimestamp := interactionlogFields[7].Descriptor()
	// interactionlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	interactionlog.DefaultTimestamp = interactionlogDescTimestamp.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[0].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescEmail is the schema descriptor for email field.
	leadDescEmail := leadFields[1].Descriptor()
	// lead.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	lead.EmailValidator = leadDescEmail.Validators[0].(func(string) error)
	// leadDescOrganizationID is the schema descriptor for organization_id field.
	leadDescOrganizationID := leadFields[7].Descriptor()
	// lead.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	lead.OrganizationIDValidator = leadDescOrganizationID.Validators[0].(func(int) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[8].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[9].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	opportunityFields := schema.Opportunity{}.Fields()
	_ = opportunityFields
	// opportunityDescName is the schema descriptor for name field.
	opportunityDescName := opportunityFields[0].Descriptor()
	// opportunity.NameValidator is a validator for the "name" field. It is called by the builders before save.
	opportunity.NameValidator = opportunityDescName.Validators[0].(func(string) error)
	// opportunityDescAccountID is the schema descriptor for account_id field.
	opportunityDescAccountID := opportunityFields[1].Descriptor()
	// opportunity.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	opportunity.AccountIDValidator = opportunityDescAccountID.Validators[0].(func(int) error)
	// opportunityDescAmount is the schema descriptor for amount field.
	opportunityDescAmount := opportunityFields[3].Descriptor()
	// opportunity.DefaultAmount holds the default value on creation for the amount field.
	opportunity.DefaultAmount = opportunityDescAmount.Default.(float64)
	// opportunityDescOrganizationID is the schema descriptor for organization_id field.
	opportunityDescOrganizationID := opportunityFields[7].Descriptor()
	// opportunity.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	opportunity.OrganizationIDValidator = opportunityDescOrganizationID.Validators[0].(func(int) error)
	// opportunityDescCreatedAt is the schema descriptor for created_at field.
	opportunityDescCreatedAt := opportunityFields[8].Descriptor()
	// opportunity.DefaultCreatedAt holds the default value on creation for the created_at field.
	opportunity.DefaultCreatedAt = opportunityDescCreatedAt.Default.(func() time.Time)
	// opportunityDescUpdatedAt is the schema descriptor for updated_at field.
	opportunityDescUpdatedAt := opportunityFields[9].Descriptor()
	// opportunity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	opportunity.DefaultUpdatedAt = opportunityDescUpdatedAt.Default.(func() time.Time)
	// opportunity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	opportunity.UpdateDefaultUpdatedAt = opportunityDescUpdatedAt.UpdateDefault.(func() time.Time)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[0].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = organizationDescName.Validators[0].(func(string) error)
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[2].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationFields[3].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescName is the schema descriptor for name field.
	productDescName := productFields[0].Descriptor()
	// product.NameValidator is a validator for the "name" field. It is called by the builders before save.
	product.NameValidator = productDescName.Validators[0].(func(string) error)
	// productDescPrice is the schema descriptor for price field.
	productDescPrice := productFields[2].Descriptor()
	// product.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	product.PriceValidator = productDescPrice.Validators[0].(func(float64) error)
	// productDescCurrency is the schema descriptor for currency field.
	productDescCurrency := productFields[3].Descriptor()
	// product.DefaultCurrency holds the default value on creation for the currency field.
	product.DefaultCurrency = productDescCurrency.Default.(string)
	// product.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	product.CurrencyValidator = productDescCurrency.Validators[0].(func(string) error)
	// productDescIsActive is the schema descriptor for is_active field.
	productDescIsActive := productFields[4].Descriptor()
	// product.DefaultIsActive holds the default value on creation for the is_active field.
	product.DefaultIsActive = productDescIsActive.Default.(bool)
	// productDescOrganizationID is the schema descriptor for organization_id field.
	productDescOrganizationID := productFields[5].Descriptor()
	// product.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	product.OrganizationIDValidator = productDescOrganizationID.Validators[0].(func(int) error)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[6].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	quoteFields := schema.Quote{}.Fields()
	_ = quoteFields
	// quoteDescOpportunityID is the schema descriptor for opportunity_id field.
	quoteDescOpportunityID := quoteFields[0].Descriptor()
	// quote.OpportunityIDValidator is a validator for the "opportunity_id" field. It is called by the builders before save.
	quote.OpportunityIDValidator = quoteDescOpportunityID.Validators[0].(func(int) error)
	// quoteDescTitle is the schema descriptor for title field.
	quoteDescTitle := quoteFields[1].Descriptor()
	// quote.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	quote.TitleValidator = quoteDescTitle.Validators[0].(func(string) error)
	// quoteDescTotalPrice is the schema descriptor for total_price field.
	quoteDescTotalPrice := quoteFields[2].Descriptor()
	// quote.DefaultTotalPrice holds the default value on creation for the total_price field.
	quote.DefaultTotalPrice = quoteDescTotalPrice.Default.(float64)
	// quoteDescCreatedByID is the schema descriptor for created_by_id field.
	quoteDescCreatedByID := quoteFields[3].Descriptor()
	// quote.CreatedByIDValidator is a validator for the "created_by_id" field. It is called by the builders before save.
	quote.CreatedByIDValidator = quoteDescCreatedByID.Validators[0].(func(int) error)
	// quoteDescOrganizationID is the schema descriptor for organization_id field.
	quoteDescOrganizationID := quoteFields[5].Descriptor()
	// quote.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	quote.OrganizationIDValidator = quoteDescOrganizationID.Validators[0].(func(int) error)
	// quoteDescCreatedAt is the schema descriptor for created_at field.
	quoteDescCreatedAt := quoteFields[6].Descriptor()
	// quote.DefaultCreatedAt holds the default value on creation for the created_at field.
	quote.DefaultCreatedAt = quoteDescCreatedAt.Default.(func() time.Time)
	quotelineitemFields := schema.QuoteLineItem{}.Fields()
	_ = quotelineitemFields
	// quotelineitemDescQuoteID is the schema descriptor for quote_id field.
	quotelineitemDescQuoteID := quotelineitemFields[0].Descriptor()
	// quotelineitem.QuoteIDValidator is a validator for the "quote_id" field. It is called by the builders before save.
	quotelineitem.QuoteIDValidator = quotelineitemDescQuoteID.Validators[0].(func(int) error)
	// quotelineitemDescQuantity is the schema descriptor for quantity field.
	quotelineitemDescQuantity := quotelineitemFields[2].Descriptor()
	// quotelineitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	quotelineitem.QuantityValidator = quotelineitemDescQuantity.Validators[0].(func(int) error)
	// quotelineitemDescUnitPrice is the schema descriptor for unit_price field.
	quotelineitemDescUnitPrice := quotelineitemFields[3].Descriptor()
	// quotelineitem.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	quotelineitem.UnitPriceValidator = quotelineitemDescUnitPrice.Validators[0].(func(float64) error)
	// quotelineitemDescOrganizationID is the schema descriptor for organization_id field.
	quotelineitemDescOrganizationID := quotelineitemFields[4].Descriptor()
	// quotelineitem.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	quotelineitem.OrganizationIDValidator = quotelineitemDescOrganizationID.Validators[0].(func(int) error)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[0].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescOwnerID is the schema descriptor for owner_id field.
	taskDescOwnerID := taskFields[6].Descriptor()
	// task.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	task.OwnerIDValidator = taskDescOwnerID.Validators[0].(func(int) error)
	// taskDescOrganizationID is the schema descriptor for organization_id field.
	taskDescOrganizationID := taskFields[8].Descriptor()
	// task.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	task.OrganizationIDValidator = taskDescOrganizationID.Validators[0].(func(int) error)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[9].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[4].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[8].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
