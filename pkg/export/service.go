package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/ent/opportunity"
)

// Service produces XLSX exports of an organization's data.
type Service struct {
	db *ent.Client
}

// NewService creates a new export service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Leads writes an organization's leads to a spreadsheet and returns the
// serialized file.
func (s *Service) Leads(ctx context.Context, orgID int) ([]byte, error) {
	leads, err := s.db.Lead.Query().
		Where(lead.OrganizationIDEQ(orgID)).
		Order(ent.Desc(lead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Leads"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Email", "Phone", "Company", "Source", "Status", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, l := range leads {
		values := []interface{}{
			l.ID, l.Name, l.Email, l.Phone, l.Company, l.Source,
			string(l.Status), l.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Pipeline writes an organization's opportunities to a spreadsheet, one row
// per deal with its account and stage.
func (s *Service) Pipeline(ctx context.Context, orgID int) ([]byte, error) {
	opps, err := s.db.Opportunity.Query().
		Where(opportunity.OrganizationIDEQ(orgID)).
		WithAccount().
		Order(ent.Desc(opportunity.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query opportunities: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Pipeline"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Account", "Stage", "Amount", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, opp := range opps {
		accountName := ""
		if opp.Edges.Account != nil {
			accountName = opp.Edges.Account.Name
		}
		values := []interface{}{
			opp.ID, opp.Name, accountName, string(opp.Stage), opp.Amount,
			opp.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
