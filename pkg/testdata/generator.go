package testdata

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/task"
	"github.com/sannty/salescrm/pkg/auth"
)

// Generator seeds a database with realistic demo data for local
// development.
type Generator struct {
	db *ent.Client
}

// NewGenerator creates a new test data generator
func NewGenerator(db *ent.Client) *Generator {
	return &Generator{db: db}
}

// Seed creates a demo organization with users, leads, accounts, contacts,
// opportunities, tasks and products. Returns the organization ID.
func (g *Generator) Seed(ctx context.Context) (int, error) {
	gofakeit.Seed(0)

	org, err := g.db.Organization.Create().
		SetName(gofakeit.Company()).
		SetDescription(gofakeit.BuzzWord()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to create organization: %w", err)
	}

	hash, err := auth.HashPassword("demo-password")
	if err != nil {
		return 0, err
	}

	var userIDs []int
	for i := 0; i < 5; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		u, err := g.db.User.Create().
			SetEmail(fmt.Sprintf("%s.%s%d@example.com", first, last, i)).
			SetUsername(fmt.Sprintf("%s%d", gofakeit.Username(), i)).
			SetFirstName(first).
			SetLastName(last).
			SetPasswordHash(hash).
			SetOrganizationID(org.ID).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to create user: %w", err)
		}
		userIDs = append(userIDs, u.ID)
	}

	for i := 0; i < 10; i++ {
		a, err := g.db.Account.Create().
			SetOrganizationID(org.ID).
			SetName(gofakeit.Company()).
			SetIndustry(gofakeit.BuzzWord()).
			SetWebsite(gofakeit.URL()).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to create account: %w", err)
		}

		for j := 0; j < 2; j++ {
			if _, err := g.db.Contact.Create().
				SetOrganizationID(org.ID).
				SetAccountID(a.ID).
				SetName(gofakeit.Name()).
				SetEmail(gofakeit.Email()).
				SetPhone(gofakeit.Phone()).
				SetTitle(gofakeit.JobTitle()).
				Save(ctx); err != nil {
				return 0, fmt.Errorf("failed to create contact: %w", err)
			}
		}

		opp, err := g.db.Opportunity.Create().
			SetOrganizationID(org.ID).
			SetAccountID(a.ID).
			SetName(fmt.Sprintf("%s expansion", a.Name)).
			SetAmount(gofakeit.Price(5000, 250000)).
			SetStage(opportunity.Stage(gofakeit.RandomString([]string{
				"qualification", "proposal", "negotiation",
			}))).
			SetOwnerID(userIDs[i%len(userIDs)]).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to create opportunity: %w", err)
		}

		if _, err := g.db.Task.Create().
			SetOrganizationID(org.ID).
			SetTitle(fmt.Sprintf("Follow up with %s", a.Name)).
			SetType(task.Type(gofakeit.RandomString([]string{"call", "email", "meeting", "demo"}))).
			SetDueDate(time.Now().AddDate(0, 0, gofakeit.Number(-3, 14))).
			SetOpportunityID(opp.ID).
			SetOwnerID(userIDs[i%len(userIDs)]).
			SetNotes(gofakeit.Sentence(12)).
			Save(ctx); err != nil {
			return 0, fmt.Errorf("failed to create task: %w", err)
		}
	}

	for i := 0; i < 25; i++ {
		if _, err := g.db.Lead.Create().
			SetOrganizationID(org.ID).
			SetName(gofakeit.Name()).
			SetEmail(gofakeit.Email()).
			SetPhone(gofakeit.Phone()).
			SetCompany(gofakeit.Company()).
			SetSource(gofakeit.RandomString([]string{"website", "referral", "event", "cold_call"})).
			SetStatus(lead.Status(gofakeit.RandomString([]string{
				"new", "contacted", "qualified",
			}))).
			SetAssignedToID(userIDs[i%len(userIDs)]).
			Save(ctx); err != nil {
			return 0, fmt.Errorf("failed to create lead: %w", err)
		}
	}

	for i := 0; i < 6; i++ {
		if _, err := g.db.Product.Create().
			SetOrganizationID(org.ID).
			SetName(gofakeit.ProductName()).
			SetDescription(gofakeit.Sentence(8)).
			SetPrice(gofakeit.Price(50, 5000)).
			Save(ctx); err != nil {
			return 0, fmt.Errorf("failed to create product: %w", err)
		}
	}

	return org.ID, nil
}
