package service

import (
	"context"
	"errors"
	"fmt"

	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportService builds the public progress report of a deal
type ReportService struct {
	deals repository.DealRepositoryInterface
}

var _ ReportServiceInterface = (*ReportService)(nil)

// NewReportService creates a new report service
func NewReportService(deals repository.DealRepositoryInterface) *ReportService {
	return &ReportService{deals: deals}
}

// ReportResponse is the partner-facing view of a deal
type ReportResponse struct {
	DealID       uuid.UUID             `json:"deal_id"`
	PartnerName  string                `json:"partner_name"`
	StartDate    string                `json:"start_date,omitempty"`
	Status       models.DealStatus     `json:"status"`
	Total        int                   `json:"total"`
	Completed    int                   `json:"completed"`
	Progress     int                   `json:"progress"`
	Deliverables []DeliverableResponse `json:"deliverables"`
}

// GetReport returns a deal's deliverables with completion progress.
// The report is public; it exposes no notes and no values.
func (s *ReportService) GetReport(ctx context.Context, dealID uuid.UUID) (*ReportResponse, error) {
	deal, err := s.deals.GetForReport(ctx, dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	resp := &ReportResponse{
		DealID:       deal.ID,
		PartnerName:  deal.PartnerName(),
		Status:       deal.Status,
		Total:        len(deal.Deliverables),
		Deliverables: make([]DeliverableResponse, len(deal.Deliverables)),
	}
	if !deal.StartDate.IsZero() {
		resp.StartDate = deal.StartDate.String()
	}
	for i := range deal.Deliverables {
		d := &deal.Deliverables[i]
		if d.IsPosted() {
			resp.Completed++
		}
		resp.Deliverables[i] = *toDeliverableResponse(d)
		resp.Deliverables[i].PartnerName = ""
	}
	resp.Progress = ProgressPercent(resp.Completed, resp.Total)
	return resp, nil
}

// ProgressPercent returns completed/total as a rounded percentage; an empty deal is 0%
func ProgressPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return (completed*100 + total/2) / total
}
