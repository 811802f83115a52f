package service

import (
	"context"

	"publiflow-backend/internal/board"
	"publiflow-backend/internal/calendar"
	"publiflow-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PartnerServiceInterface defines the interface for partner service
type PartnerServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]PartnerResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *CreatePartnerRequest) (*PartnerResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DealServiceInterface defines the interface for deal service
type DealServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]DealResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *CreateDealRequest) (*DealResponse, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*DealResponse, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, req *UpdateDealStatusRequest) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DeliverableServiceInterface defines the interface for deliverable service
type DeliverableServiceInterface interface {
	Create(ctx context.Context, userID, dealID uuid.UUID, req *CreateDeliverableRequest) (*DeliverableResponse, error)
	Toggle(ctx context.Context, userID, id uuid.UUID) (*DeliverableResponse, error)
	SetStatus(ctx context.Context, userID, id uuid.UUID, req *UpdateDeliverableStatusRequest) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListMonth(ctx context.Context, userID uuid.UUID, month string) ([]DeliverableResponse, error)
}

// IdeaServiceInterface defines the interface for idea service
type IdeaServiceInterface interface {
	Scheme() models.IdeaStageScheme
	List(ctx context.Context, userID uuid.UUID) ([]IdeaResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *CreateIdeaRequest) (*IdeaResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *UpdateIdeaRequest) (*IdeaResponse, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, req *UpdateIdeaStatusRequest) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Board(ctx context.Context, userID uuid.UUID) (*board.View, error)
	MoveOnBoard(ctx context.Context, userID uuid.UUID, req *BoardMoveRequest) (*BoardMoveResponse, error)
}

// ExpenseServiceInterface defines the interface for expense service
type ExpenseServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]ExpenseResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *CreateExpenseRequest) (*ExpenseResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Overview(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error)
	Finance(ctx context.Context, userID uuid.UUID) (*FinanceResponse, error)
}

// ReportServiceInterface defines the interface for the public report service
type ReportServiceInterface interface {
	GetReport(ctx context.Context, dealID uuid.UUID) (*ReportResponse, error)
}

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	Get(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error)
	Subscription(ctx context.Context, userID uuid.UUID) (*SubscriptionResponse, error)
}

// CalendarConnectionServiceInterface defines the interface for calendar connection service
type CalendarConnectionServiceInterface interface {
	ConnectURL(ctx context.Context, userID uuid.UUID) (*ConnectURLResponse, error)
	HandleCallback(ctx context.Context, state, code string) (uuid.UUID, error)
	Status(ctx context.Context, userID uuid.UUID) (*CalendarStatusResponse, error)
	Disconnect(ctx context.Context, userID uuid.UUID) error
}

// CalendarSyncServiceInterface defines the interface for calendar sync service
type CalendarSyncServiceInterface interface {
	SyncDeliverables(ctx context.Context, session SyncSession) SyncResult
	SyncForUser(ctx context.Context, userID uuid.UUID) SyncResult
}

// CalendarClientInterface creates events in the external calendar
type CalendarClientInterface interface {
	InsertEvent(ctx context.Context, accessToken string, event *calendar.Event) error
}

// TokenRefresherInterface exchanges a refresh token for a new access token
type TokenRefresherInterface interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// CalendarOAuthInterface runs the provider consent flow
type CalendarOAuthInterface interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

// StateSignerInterface binds an OAuth state value to a user
type StateSignerInterface interface {
	Sign(userID uuid.UUID) (string, error)
	Verify(state string) (uuid.UUID, error)
}
