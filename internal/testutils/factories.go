package testutils

import (
	"time"

	"publiflow-backend/internal/database/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newBase(userID uuid.UUID) models.BaseModel {
	now := time.Now()
	return models.BaseModel{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PartnerFactory provides methods to create test Partner data
type PartnerFactory struct{}

// NewPartnerFactory creates a new PartnerFactory
func NewPartnerFactory() *PartnerFactory {
	return &PartnerFactory{}
}

// Create creates a test Partner owned by userID
func (f *PartnerFactory) Create(userID uuid.UUID) *models.Partner {
	return &models.Partner{
		BaseModel:   newBase(userID),
		Name:        gofakeit.Company(),
		ContactInfo: gofakeit.Email(),
		Niche:       gofakeit.RandomString([]string{"beleza", "games", "fitness", "moda", "tecnologia"}),
	}
}

// WithName sets a custom name for the partner
func (f *PartnerFactory) WithName(userID uuid.UUID, name string) *models.Partner {
	partner := f.Create(userID)
	partner.Name = name
	return partner
}

// DealFactory provides methods to create test Deal data
type DealFactory struct{}

// NewDealFactory creates a new DealFactory
func NewDealFactory() *DealFactory {
	return &DealFactory{}
}

// Create creates an active test Deal with partner
func (f *DealFactory) Create(userID, partnerID uuid.UUID) *models.Deal {
	return &models.Deal{
		BaseModel:      newBase(userID),
		PartnerID:      partnerID,
		PaymentType:    models.PaymentTypeCash,
		EstimatedValue: decimal.NewFromFloat(gofakeit.Price(100, 5000)).Round(2),
		Notes:          gofakeit.Sentence(6),
		StartDate:      models.DateOf(time.Now()),
		Status:         models.DealStatusActive,
	}
}

// WithStatus sets a custom status for the deal
func (f *DealFactory) WithStatus(userID, partnerID uuid.UUID, status models.DealStatus) *models.Deal {
	deal := f.Create(userID, partnerID)
	deal.Status = status
	return deal
}

// WithValue sets a custom estimated value for the deal
func (f *DealFactory) WithValue(userID, partnerID uuid.UUID, value string) *models.Deal {
	deal := f.Create(userID, partnerID)
	deal.EstimatedValue = decimal.RequireFromString(value)
	return deal
}

// DeliverableFactory provides methods to create test Deliverable data
type DeliverableFactory struct{}

// NewDeliverableFactory creates a new DeliverableFactory
func NewDeliverableFactory() *DeliverableFactory {
	return &DeliverableFactory{}
}

// Create creates a pending test Deliverable without a due date
func (f *DeliverableFactory) Create(userID, dealID uuid.UUID) *models.Deliverable {
	types := []models.DeliverableType{
		models.DeliverableTypeStory,
		models.DeliverableTypeReel,
		models.DeliverableTypeFeedPost,
		models.DeliverableTypeShortVideo,
	}
	return &models.Deliverable{
		BaseModel: newBase(userID),
		DealID:    dealID,
		Type:      types[gofakeit.Number(0, len(types)-1)],
		Status:    models.DeliverableStatusPending,
	}
}

// Due creates a pending test Deliverable due on date
func (f *DeliverableFactory) Due(userID, dealID uuid.UUID, date models.Date) *models.Deliverable {
	deliverable := f.Create(userID, dealID)
	deliverable.DueDate = &date
	return deliverable
}

// Posted creates a posted test Deliverable due on date
func (f *DeliverableFactory) Posted(userID, dealID uuid.UUID, date models.Date) *models.Deliverable {
	deliverable := f.Due(userID, dealID, date)
	deliverable.Status = models.DeliverableStatusPosted
	return deliverable
}

// IdeaFactory provides methods to create test Idea data
type IdeaFactory struct{}

// NewIdeaFactory creates a new IdeaFactory
func NewIdeaFactory() *IdeaFactory {
	return &IdeaFactory{}
}

// Create creates a test Idea in the given stage
func (f *IdeaFactory) Create(userID uuid.UUID, status models.IdeaStatus) *models.Idea {
	return &models.Idea{
		BaseModel:   newBase(userID),
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		Status:      status,
	}
}

// ExpenseFactory provides methods to create test Expense data
type ExpenseFactory struct{}

// NewExpenseFactory creates a new ExpenseFactory
func NewExpenseFactory() *ExpenseFactory {
	return &ExpenseFactory{}
}

// Create creates a test Expense dated today
func (f *ExpenseFactory) Create(userID uuid.UUID) *models.Expense {
	return &models.Expense{
		BaseModel:   newBase(userID),
		Description: gofakeit.ProductName(),
		Amount:      decimal.NewFromFloat(gofakeit.Price(10, 500)).Round(2),
		Category:    models.ExpenseCategoryEquipment,
		Date:        models.DateOf(time.Now()),
	}
}

// WithAmount sets a custom amount for the expense
func (f *ExpenseFactory) WithAmount(userID uuid.UUID, amount string) *models.Expense {
	expense := f.Create(userID)
	expense.Amount = decimal.RequireFromString(amount)
	return expense
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a trial test Profile ending in a week
func (f *ProfileFactory) Create(userID uuid.UUID) *models.Profile {
	trialEnds := time.Now().Add(7 * 24 * time.Hour)
	profile := &models.Profile{
		FullName:           gofakeit.Name(),
		Bio:                gofakeit.Sentence(10),
		SubscriptionStatus: models.SubscriptionStatusTrial,
		TrialEndsAt:        &trialEnds,
	}
	profile.BaseModel = newBase(userID)
	return profile
}

// CalendarConnectionFactory provides methods to create test CalendarConnection data
type CalendarConnectionFactory struct{}

// NewCalendarConnectionFactory creates a new CalendarConnectionFactory
func NewCalendarConnectionFactory() *CalendarConnectionFactory {
	return &CalendarConnectionFactory{}
}

// Create creates a refreshable test CalendarConnection
func (f *CalendarConnectionFactory) Create(userID uuid.UUID) *models.CalendarConnection {
	conn := &models.CalendarConnection{
		Provider:     "google",
		AccessToken:  "ya29." + gofakeit.LetterN(24),
		RefreshToken: "1//" + gofakeit.LetterN(24),
		TokenExpiry:  time.Now().Add(time.Hour),
	}
	conn.BaseModel = newBase(userID)
	return conn
}

// FactorySet provides access to all factories
type FactorySet struct {
	Partner            *PartnerFactory
	Deal               *DealFactory
	Deliverable        *DeliverableFactory
	Idea               *IdeaFactory
	Expense            *ExpenseFactory
	Profile            *ProfileFactory
	CalendarConnection *CalendarConnectionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Partner:            NewPartnerFactory(),
		Deal:               NewDealFactory(),
		Deliverable:        NewDeliverableFactory(),
		Idea:               NewIdeaFactory(),
		Expense:            NewExpenseFactory(),
		Profile:            NewProfileFactory(),
		CalendarConnection: NewCalendarConnectionFactory(),
	}
}

// CreateDealHierarchy builds a partner with one active deal for userID; nothing is persisted
func (fs *FactorySet) CreateDealHierarchy(userID uuid.UUID) (*models.Partner, *models.Deal) {
	partner := fs.Partner.Create(userID)
	deal := fs.Deal.Create(userID, partner.ID)
	return partner, deal
}
