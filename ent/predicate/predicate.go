// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// InteractionLog is the predicate function for interactionlog builders.
type InteractionLog func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Opportunity is the predicate function for opportunity builders.
type Opportunity func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// Quote is the predicate function for quote builders.
type Quote func(*sql.Selector)

// QuoteLineItem is the predicate function for quotelineitem builders.
type QuoteLineItem func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
