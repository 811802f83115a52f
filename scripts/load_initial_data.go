package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"publiflow-backend/internal/config"
	"publiflow-backend/internal/database"
	"publiflow-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SeedFile is one YAML file of demo data owned by a single user
type SeedFile struct {
	UserID   string        `yaml:"user_id"`
	Partners []PartnerData `yaml:"partners"`
	Ideas    []IdeaData    `yaml:"ideas"`
	Expenses []ExpenseData `yaml:"expenses"`
}

type PartnerData struct {
	Name        string     `yaml:"name"`
	ContactInfo string     `yaml:"contact_info"`
	Niche       string     `yaml:"niche"`
	Deals       []DealData `yaml:"deals,omitempty"`
}

type DealData struct {
	PaymentType    string            `yaml:"payment_type"`
	EstimatedValue string            `yaml:"estimated_value"`
	Notes          string            `yaml:"notes"`
	StartDate      string            `yaml:"start_date"`
	Status         string            `yaml:"status"`
	Deliverables   []DeliverableData `yaml:"deliverables,omitempty"`
}

type DeliverableData struct {
	Type    string `yaml:"type"`
	DueDate string `yaml:"due_date,omitempty"`
	Status  string `yaml:"status"`
}

type IdeaData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Platform    string `yaml:"platform,omitempty"`
	Priority    string `yaml:"priority,omitempty"`
}

type ExpenseData struct {
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Category    string `yaml:"category"`
	Date        string `yaml:"date"`
}

// seedCounts tallies what a run inserted
type seedCounts struct {
	partners, deals, deliverables, ideas, expenses int
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Suppress GORM logs including "record not found" during loading
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:       logger.Silent,
		ConnectTimeout: time.Minute,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	files, err := loadSeedFiles(dataDir)
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}

	var total seedCounts
	for path, file := range files {
		counts, err := seedUser(db, cfg.StageScheme(), file)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", path, err)
		}
		log.Printf("📦 %s: %d partners, %d deals, %d deliverables, %d ideas, %d expenses",
			path, counts.partners, counts.deals, counts.deliverables, counts.ideas, counts.expenses)
		total.partners += counts.partners
		total.deals += counts.deals
		total.deliverables += counts.deliverables
		total.ideas += counts.ideas
		total.expenses += counts.expenses
	}

	log.Printf("✅ Initial data loaded successfully! (%d partners, %d deals, %d deliverables, %d ideas, %d expenses)",
		total.partners, total.deals, total.deliverables, total.ideas, total.expenses)
}

func loadSeedFiles(dataDir string) (map[string]SeedFile, error) {
	files := make(map[string]SeedFile)

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		files[path] = file
		return nil
	})

	return files, err
}

// seedUser inserts one file's data in a transaction. Partners are matched by name,
// and the deals of an existing partner are left untouched so reruns do not duplicate them.
func seedUser(db *gorm.DB, scheme models.IdeaStageScheme, file SeedFile) (seedCounts, error) {
	var counts seedCounts

	userID, err := uuid.Parse(file.UserID)
	if err != nil {
		return counts, fmt.Errorf("invalid user_id %q: %w", file.UserID, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, partnerData := range file.Partners {
			partner, created, err := createPartner(tx, userID, partnerData)
			if err != nil {
				return err
			}
			if !created {
				continue
			}
			counts.partners++

			for _, dealData := range partnerData.Deals {
				deliverables, err := createDeal(tx, userID, partner.ID, dealData)
				if err != nil {
					return fmt.Errorf("partner %q: %w", partnerData.Name, err)
				}
				counts.deals++
				counts.deliverables += deliverables
			}
		}

		for _, ideaData := range file.Ideas {
			created, err := createIdea(tx, userID, scheme, ideaData)
			if err != nil {
				return err
			}
			if created {
				counts.ideas++
			}
		}

		for _, expenseData := range file.Expenses {
			created, err := createExpense(tx, userID, expenseData)
			if err != nil {
				return err
			}
			if created {
				counts.expenses++
			}
		}
		return nil
	})

	return counts, err
}

func createPartner(tx *gorm.DB, userID uuid.UUID, data PartnerData) (*models.Partner, bool, error) {
	var partner models.Partner
	err := tx.Where("user_id = ? AND name = ?", userID, data.Name).First(&partner).Error
	if err == nil {
		return &partner, false, nil // existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query partner: %w", err)
	}

	partner = models.Partner{
		Name:        data.Name,
		ContactInfo: data.ContactInfo,
		Niche:       data.Niche,
	}
	partner.UserID = userID
	if err := tx.Create(&partner).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create partner: %w", err)
	}
	return &partner, true, nil
}

func createDeal(tx *gorm.DB, userID, partnerID uuid.UUID, data DealData) (int, error) {
	paymentType := models.PaymentType(data.PaymentType)
	if !paymentType.IsValid() {
		return 0, fmt.Errorf("unknown payment type %q", data.PaymentType)
	}
	status := models.DealStatusActive
	if data.Status != "" {
		status = models.DealStatus(data.Status)
		if !status.IsValid() {
			return 0, fmt.Errorf("unknown deal status %q", data.Status)
		}
	}
	value := decimal.Zero
	if data.EstimatedValue != "" {
		v, err := decimal.NewFromString(data.EstimatedValue)
		if err != nil {
			return 0, fmt.Errorf("invalid estimated value %q: %w", data.EstimatedValue, err)
		}
		value = v
	}
	startDate := models.DateOf(time.Now())
	if data.StartDate != "" {
		d, err := models.ParseDate(data.StartDate)
		if err != nil {
			return 0, err
		}
		startDate = d
	}

	deal := models.Deal{
		PartnerID:      partnerID,
		PaymentType:    paymentType,
		EstimatedValue: value,
		Notes:          data.Notes,
		StartDate:      startDate,
		Status:         status,
	}
	deal.UserID = userID
	if err := tx.Create(&deal).Error; err != nil {
		return 0, fmt.Errorf("failed to create deal: %w", err)
	}

	for _, d := range data.Deliverables {
		deliverable := models.Deliverable{
			DealID: deal.ID,
			Type:   models.DeliverableType(d.Type),
			Status: models.DeliverableStatusPending,
		}
		if !deliverable.Type.IsValid() {
			return 0, fmt.Errorf("unknown deliverable type %q", d.Type)
		}
		if d.Status != "" {
			deliverable.Status = models.DeliverableStatus(d.Status)
			if !deliverable.Status.IsValid() {
				return 0, fmt.Errorf("unknown deliverable status %q", d.Status)
			}
		}
		if d.DueDate != "" {
			due, err := models.ParseDate(d.DueDate)
			if err != nil {
				return 0, err
			}
			deliverable.DueDate = &due
		}
		deliverable.UserID = userID
		if err := tx.Create(&deliverable).Error; err != nil {
			return 0, fmt.Errorf("failed to create deliverable: %w", err)
		}
	}
	return len(data.Deliverables), nil
}

func createIdea(tx *gorm.DB, userID uuid.UUID, scheme models.IdeaStageScheme, data IdeaData) (bool, error) {
	status := scheme.DefaultStage()
	if data.Status != "" {
		status = models.IdeaStatus(data.Status)
	}
	if !scheme.Contains(status) {
		// Seeds written for the other scheme are skipped
		log.Printf("Skipping idea %q: %q is not a stage of the %s board", data.Title, status, scheme)
		return false, nil
	}

	var existing int64
	if err := tx.Model(&models.Idea{}).Where("user_id = ? AND title = ?", userID, data.Title).Count(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to query idea: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	idea := models.Idea{
		Title:       data.Title,
		Description: data.Description,
		Status:      status,
	}
	if scheme.SupportsPlatformAndPriority() {
		if data.Platform != "" {
			platform := models.IdeaPlatform(data.Platform)
			idea.Platform = &platform
		}
		if data.Priority != "" {
			priority := models.IdeaPriority(data.Priority)
			idea.Priority = &priority
		}
	}
	idea.UserID = userID
	if err := tx.Create(&idea).Error; err != nil {
		return false, fmt.Errorf("failed to create idea: %w", err)
	}
	return true, nil
}

func createExpense(tx *gorm.DB, userID uuid.UUID, data ExpenseData) (bool, error) {
	amount, err := decimal.NewFromString(data.Amount)
	if err != nil {
		return false, fmt.Errorf("invalid amount %q: %w", data.Amount, err)
	}
	category := models.ExpenseCategory(data.Category)
	if !category.IsValid() {
		return false, fmt.Errorf("unknown expense category %q", data.Category)
	}
	date, err := models.ParseDate(data.Date)
	if err != nil {
		return false, err
	}

	expense := models.Expense{
		Description: data.Description,
		Amount:      amount,
		Category:    category,
		Date:        date,
	}
	expense.UserID = userID
	// Expenses have no natural key; skip exact duplicates of a previous run
	var existing int64
	if err := tx.Model(&models.Expense{}).
		Where("user_id = ? AND description = ? AND date = ?", userID, expense.Description, expense.Date).
		Count(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to query expense: %w", err)
	}
	if existing > 0 {
		return false, nil
	}
	if err := tx.Create(&expense).Error; err != nil {
		return false, fmt.Errorf("failed to create expense: %w", err)
	}
	return true, nil
}
