package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"publiflow-backend/internal/calendar"
	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/logger"
	"publiflow-backend/internal/metrics"
	"publiflow-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerPlaceholder names the partner of a deliverable whose deal or partner is missing
const PartnerPlaceholder = "Parceiro não encontrado"

// NoPendingMessage is the summary of a run with nothing to push
const NoPendingMessage = "Nenhuma entrega pendente para sincronizar"

// SyncSession carries the caller identity and provider tokens for one sync run.
// It is passed explicitly so the worker never reads ambient session state.
type SyncSession struct {
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
}

// SyncResult describes the outcome of a sync run
type SyncResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count"`
	Failed  int    `json:"failed"`
	Error   string `json:"error,omitempty"`

	// RefreshedAccessToken is set when the run obtained a new access token
	RefreshedAccessToken string `json:"-"`
}

// CalendarSyncService pushes pending deliverables into the user's calendar
type CalendarSyncService struct {
	deliverables repository.DeliverableRepositoryInterface
	connections  repository.CalendarConnectionRepositoryInterface
	calendar     CalendarClientInterface
	tokens       TokenRefresherInterface
}

var _ CalendarSyncServiceInterface = (*CalendarSyncService)(nil)

// NewCalendarSyncService creates a new calendar sync service
func NewCalendarSyncService(
	deliverables repository.DeliverableRepositoryInterface,
	connections repository.CalendarConnectionRepositoryInterface,
	calendarClient CalendarClientInterface,
	tokens TokenRefresherInterface,
) *CalendarSyncService {
	return &CalendarSyncService{
		deliverables: deliverables,
		connections:  connections,
		calendar:     calendarClient,
		tokens:       tokens,
	}
}

// syncRun is the mutable token state of a single run
type syncRun struct {
	accessToken  string
	refreshToken string
	refreshed    bool
}

// SyncDeliverables pushes every pending, dated deliverable of session.UserID as an all-day event.
// Items are processed one at a time; a failing item never aborts the batch. The run only fails
// when the access token is missing, the deliverables cannot be fetched or something panics.
func (s *CalendarSyncService) SyncDeliverables(ctx context.Context, session SyncSession) (result SyncResult) {
	ctx = logger.ContextWithUserID(ctx, session.UserID.String())
	log := logger.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", fmt.Sprint(r)).Error("Calendar sync aborted")
			metrics.SyncRunsTotal.WithLabelValues("error").Inc()
			result = SyncResult{Success: false, Error: apperrors.ErrUnexpected.Error()}
		}
	}()

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.SyncDuration)

	if session.AccessToken == "" {
		log.Warn("Calendar sync requested without access token")
		metrics.SyncRunsTotal.WithLabelValues("reauth").Inc()
		return SyncResult{Success: false, Error: apperrors.ErrReauthenticationRequired.Error()}
	}

	items, err := s.deliverables.ListPendingDated(ctx, session.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch pending deliverables")
		metrics.SyncRunsTotal.WithLabelValues("fetch_error").Inc()
		return SyncResult{Success: false, Error: apperrors.ErrDeliverableFetch.Error()}
	}

	if len(items) == 0 {
		metrics.SyncRunsTotal.WithLabelValues("success").Inc()
		return SyncResult{Success: true, Message: NoPendingMessage}
	}

	run := &syncRun{accessToken: session.AccessToken, refreshToken: session.RefreshToken}
	synced, failed := 0, 0
	for i := range items {
		if err := s.pushDeliverable(ctx, run, &items[i]); err != nil {
			failed++
			metrics.SyncEventsTotal.WithLabelValues("failed").Inc()
			log.WithError(err).WithField("deliverable_id", items[i].ID.String()).Error("Failed to create calendar event")
			continue
		}
		synced++
		metrics.SyncEventsTotal.WithLabelValues("success").Inc()
	}

	log.WithFields(map[string]interface{}{"synced": synced, "failed": failed}).Info("Calendar sync finished")
	metrics.SyncRunsTotal.WithLabelValues("success").Inc()

	result = SyncResult{
		Success: true,
		Message: SyncSummary(synced, failed),
		Count:   synced,
		Failed:  failed,
	}
	if run.refreshed && run.accessToken != session.AccessToken {
		result.RefreshedAccessToken = run.accessToken
	}
	return result
}

// pushDeliverable posts one event, refreshing the access token at most once per run on 401
func (s *CalendarSyncService) pushDeliverable(ctx context.Context, run *syncRun, d *models.Deliverable) error {
	event, err := BuildCalendarEvent(d)
	if err != nil {
		return err
	}

	err = s.calendar.InsertEvent(ctx, run.accessToken, event)
	if err == nil {
		return nil
	}

	var apiErr *calendar.APIError
	if !errors.As(err, &apiErr) || !apiErr.IsUnauthorized() || run.refreshToken == "" || run.refreshed {
		return err
	}

	run.refreshed = true
	newToken, refreshErr := s.tokens.Refresh(ctx, run.refreshToken)
	if refreshErr != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failed").Inc()
		logger.WithContext(ctx).WithError(refreshErr).Warn("Calendar token refresh failed")
		return err
	}
	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	run.accessToken = newToken

	return s.calendar.InsertEvent(ctx, run.accessToken, event)
}

// SyncForUser runs the sync with the user's stored calendar connection.
// A token refreshed during the run is written back to the connection.
func (s *CalendarSyncService) SyncForUser(ctx context.Context, userID uuid.UUID) SyncResult {
	conn, err := s.connections.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Never connected: the run fails fast asking for a new grant
		conn = &models.CalendarConnection{}
	case err != nil:
		logger.WithContext(logger.ContextWithUserID(ctx, userID.String())).
			WithError(err).Error("Failed to load calendar connection")
		metrics.SyncRunsTotal.WithLabelValues("fetch_error").Inc()
		return SyncResult{Success: false, Error: apperrors.ErrDeliverableFetch.Error()}
	}

	result := s.SyncDeliverables(ctx, SyncSession{
		UserID:       userID,
		AccessToken:  conn.AccessToken,
		RefreshToken: conn.RefreshToken,
	})

	if result.RefreshedAccessToken != "" {
		if err := s.connections.UpdateAccessToken(ctx, userID, result.RefreshedAccessToken); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Failed to store refreshed calendar token")
		}
	}
	return result
}

// SyncSummary renders the user-facing summary of a completed run
func SyncSummary(synced, failed int) string {
	if failed == 0 {
		return fmt.Sprintf("%d entrega(s) sincronizada(s) com sucesso!", synced)
	}
	return fmt.Sprintf("%d sincronizada(s), %d com erro", synced, failed)
}

// BuildCalendarEvent derives the all-day event for a deliverable.
// The event is never persisted.
func BuildCalendarEvent(d *models.Deliverable) (*calendar.Event, error) {
	if d.DueDate == nil || d.DueDate.IsZero() {
		return nil, fmt.Errorf("deliverable %s has no due date", d.ID)
	}

	label := d.Type.Label()
	partner := d.Deal.PartnerName()
	if partner == "" {
		partner = PartnerPlaceholder
	}
	notes := ""
	if d.Deal != nil {
		notes = strings.TrimSpace(d.Deal.Notes)
	}

	description := fmt.Sprintf("Entrega para %s\nTipo: %s", partner, label)
	if notes != "" {
		description += "\n\n" + notes
	}

	date := d.DueDate.String()
	return &calendar.Event{
		Summary:     fmt.Sprintf("%s - %s", label, partner),
		Description: description,
		Start:       calendar.EventDate{Date: date},
		End:         calendar.EventDate{Date: date},
		ColorID:     calendar.DefaultColorID,
	}, nil
}
