// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/ent/conversation"
	"github.com/merxlab/merx/ent/order"
	"github.com/merxlab/merx/ent/product"
	"github.com/merxlab/merx/ent/schema"
	"github.com/merxlab/merx/ent/trainingdata"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescLanguage is the schema descriptor for language field.
	agentDescLanguage := agentFields[6].Descriptor()
	// agent.DefaultLanguage holds the default value on creation for the language field.
	agent.DefaultLanguage = agentDescLanguage.Default.(string)
	// agentDescIsActive is the schema descriptor for is_active field.
	agentDescIsActive := agentFields[11].Descriptor()
	// agent.DefaultIsActive holds the default value on creation for the is_active field.
	agent.DefaultIsActive = agentDescIsActive.Default.(bool)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[12].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[13].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescChannel is the schema descriptor for channel field.
	conversationDescChannel := conversationFields[5].Descriptor()
	// conversation.DefaultChannel holds the default value on creation for the channel field.
	conversation.DefaultChannel = conversationDescChannel.Default.(string)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[6].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[7].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescTotalAmount is the schema descriptor for total_amount field.
	orderDescTotalAmount := orderFields[9].Descriptor()
	// order.DefaultTotalAmount holds the default value on creation for the total_amount field.
	order.DefaultTotalAmount = orderDescTotalAmount.Default.(float64)
	// order.TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	order.TotalAmountValidator = orderDescTotalAmount.Validators[0].(func(float64) error)
	// orderDescCurrency is the schema descriptor for currency field.
	orderDescCurrency := orderFields[10].Descriptor()
	// order.DefaultCurrency holds the default value on creation for the currency field.
	order.DefaultCurrency = orderDescCurrency.Default.(string)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[14].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[15].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescPrice is the schema descriptor for price field.
	productDescPrice := productFields[5].Descriptor()
	// product.DefaultPrice holds the default value on creation for the price field.
	product.DefaultPrice = productDescPrice.Default.(float64)
	// product.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	product.PriceValidator = productDescPrice.Validators[0].(func(float64) error)
	// productDescCurrency is the schema descriptor for currency field.
	productDescCurrency := productFields[6].Descriptor()
	// product.DefaultCurrency holds the default value on creation for the currency field.
	product.DefaultCurrency = productDescCurrency.Default.(string)
	// productDescIsFeatured is the schema descriptor for is_featured field.
	productDescIsFeatured := productFields[13].Descriptor()
	// product.DefaultIsFeatured holds the default value on creation for the is_featured field.
	product.DefaultIsFeatured = productDescIsFeatured.Default.(bool)
	// productDescIsActive is the schema descriptor for is_active field.
	productDescIsActive := productFields[14].Descriptor()
	// product.DefaultIsActive holds the default value on creation for the is_active field.
	product.DefaultIsActive = productDescIsActive.Default.(bool)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[15].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[16].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	trainingdataFields := schema.TrainingData{}.Fields()
	_ = trainingdataFields
	// trainingdataDescCreatedAt is the schema descriptor for created_at field.
	trainingdataDescCreatedAt := trainingdataFields[5].Descriptor()
	// trainingdata.DefaultCreatedAt holds the default value on creation for the created_at field.
	trainingdata.DefaultCreatedAt = trainingdataDescCreatedAt.Default.(func() time.Time)
	// trainingdataDescUpdatedAt is the schema descriptor for updated_at field.
	trainingdataDescUpdatedAt := trainingdataFields[6].Descriptor()
	// trainingdata.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	trainingdata.DefaultUpdatedAt = trainingdataDescUpdatedAt.Default.(func() time.Time)
	// trainingdata.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	trainingdata.UpdateDefaultUpdatedAt = trainingdataDescUpdatedAt.UpdateDefault.(func() time.Time)
}
