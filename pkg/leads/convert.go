package leads

import (
	"context"
	"errors"
	"fmt"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/account"
	"github.com/sannty/salescrm/ent/contact"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/pkg/metrics"
)

// ErrNotQualified is returned when a lead is not in the qualified status and
// therefore cannot be converted.
var ErrNotQualified = errors.New("only qualified leads can be converted")

// ConversionResult holds the records produced by a lead conversion.
type ConversionResult struct {
	Lead        *ent.Lead        `json:"lead"`
	Account     *ent.Account     `json:"account"`
	Contact     *ent.Contact     `json:"contact"`
	Opportunity *ent.Opportunity `json:"opportunity"`
}

// Convert turns a qualified lead into an account, contact and opportunity.
// All writes, including the conversion activity entry, happen in a single
// transaction: either everything lands or nothing does. The lead ends up in
// the converted status, so a second call fails the qualification check.
func (s *Service) Convert(ctx context.Context, orgID, actorID, leadID int) (*ConversionResult, error) {
	l, err := s.Get(ctx, orgID, leadID)
	if err != nil {
		return nil, err
	}
	if l.Status != lead.StatusQualified {
		return nil, ErrNotQualified
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	accountName := l.Company
	if accountName == "" {
		accountName = fmt.Sprintf("%s Company", l.Name)
	}

	acc, err := tx.Account.Query().
		Where(account.OrganizationIDEQ(orgID), account.NameEQ(accountName)).
		First(ctx)
	if ent.IsNotFound(err) {
		acc, err = tx.Account.Create().
			SetOrganizationID(orgID).
			SetName(accountName).
			Save(ctx)
	}
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	ct, err := tx.Contact.Query().
		Where(contact.OrganizationIDEQ(orgID), contact.EmailEQ(l.Email)).
		First(ctx)
	if ent.IsNotFound(err) {
		ct, err = tx.Contact.Create().
			SetOrganizationID(orgID).
			SetAccountID(acc.ID).
			SetName(l.Name).
			SetEmail(l.Email).
			SetPhone(l.Phone).
			Save(ctx)
	}
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to resolve contact: %w", err)
	}

	ownerID := actorID
	if l.AssignedToID != nil {
		ownerID = *l.AssignedToID
	}

	opp, err := tx.Opportunity.Create().
		SetOrganizationID(orgID).
		SetAccountID(acc.ID).
		SetContactID(ct.ID).
		SetName(fmt.Sprintf("Opportunity for %s", l.Name)).
		SetAmount(0).
		SetOwnerID(ownerID).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	converted, err := tx.Lead.UpdateOneID(l.ID).
		SetStatus(lead.StatusConverted).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to mark lead converted: %w", err)
	}

	s.observer.WithTx(tx).LeadConverted(ctx, converted, opp, actorID)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit conversion: %w", err)
	}

	metrics.LeadConverted()

	return &ConversionResult{
		Lead:        converted,
		Account:     acc,
		Contact:     ct,
		Opportunity: opp,
	}, nil
}
