package models

// DeliverableType defines the kinds of content owed to a partner
type DeliverableType string

const (
	DeliverableTypeStory      DeliverableType = "story"
	DeliverableTypeReel       DeliverableType = "reel"
	DeliverableTypeFeedPost   DeliverableType = "feed"
	DeliverableTypeShortVideo DeliverableType = "tiktok"
)

// DeliverableStatus defines the completion state of a deliverable
type DeliverableStatus string

const (
	DeliverableStatusPending DeliverableStatus = "pending"
	DeliverableStatusPosted  DeliverableStatus = "posted"
)

// DealStatus defines the lifecycle of a partnership deal
type DealStatus string

const (
	DealStatusActive    DealStatus = "active"
	DealStatusCompleted DealStatus = "completed"
	DealStatusCancelled DealStatus = "cancelled"
)

// PaymentType defines how a deal is paid
type PaymentType string

const (
	PaymentTypeBarter PaymentType = "Permuta"
	PaymentTypeCash   PaymentType = "Dinheiro"
	PaymentTypeHybrid PaymentType = "Hibrido"
)

// ExpenseCategory defines the buckets expenses are filed under
type ExpenseCategory string

const (
	ExpenseCategoryEquipment ExpenseCategory = "Equipamento"
	ExpenseCategoryTransport ExpenseCategory = "Transporte"
	ExpenseCategorySoftware  ExpenseCategory = "Software"
	ExpenseCategoryOther     ExpenseCategory = "Outros"
)

// IdeaPlatform defines where an idea is meant to be published
type IdeaPlatform string

const (
	IdeaPlatformInstagram IdeaPlatform = "Instagram"
	IdeaPlatformTikTok    IdeaPlatform = "TikTok"
	IdeaPlatformYouTube   IdeaPlatform = "YouTube"
)

// IdeaPriority defines the urgency of an idea
type IdeaPriority string

const (
	IdeaPriorityLow    IdeaPriority = "low"
	IdeaPriorityMedium IdeaPriority = "medium"
	IdeaPriorityHigh   IdeaPriority = "high"
)

// SubscriptionStatus defines the billing state of a profile
type SubscriptionStatus string

const (
	SubscriptionStatusTrial    SubscriptionStatus = "trial"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
)

// Label returns the display label of a deliverable type.
// Unknown types fall back to the raw value.
func (t DeliverableType) Label() string {
	switch t {
	case DeliverableTypeStory:
		return "📸 Story"
	case DeliverableTypeReel:
		return "🎬 Reels"
	case DeliverableTypeFeedPost:
		return "🖼️ Feed"
	case DeliverableTypeShortVideo:
		return "🎵 TikTok"
	}
	return string(t)
}

// IsValid checks if the DeliverableType is valid
func (t DeliverableType) IsValid() bool {
	switch t {
	case DeliverableTypeStory, DeliverableTypeReel, DeliverableTypeFeedPost, DeliverableTypeShortVideo:
		return true
	}
	return false
}

// IsValid checks if the DeliverableStatus is valid
func (s DeliverableStatus) IsValid() bool {
	switch s {
	case DeliverableStatusPending, DeliverableStatusPosted:
		return true
	}
	return false
}

// Toggled flips pending and posted
func (s DeliverableStatus) Toggled() DeliverableStatus {
	if s == DeliverableStatusPosted {
		return DeliverableStatusPending
	}
	return DeliverableStatusPosted
}

// IsValid checks if the DealStatus is valid
func (s DealStatus) IsValid() bool {
	switch s {
	case DealStatusActive, DealStatusCompleted, DealStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the PaymentType is valid
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentTypeBarter, PaymentTypeCash, PaymentTypeHybrid:
		return true
	}
	return false
}

// IsValid checks if the ExpenseCategory is valid
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryEquipment, ExpenseCategoryTransport, ExpenseCategorySoftware, ExpenseCategoryOther:
		return true
	}
	return false
}

// IsValid checks if the IdeaPlatform is valid
func (p IdeaPlatform) IsValid() bool {
	switch p {
	case IdeaPlatformInstagram, IdeaPlatformTikTok, IdeaPlatformYouTube:
		return true
	}
	return false
}

// IsValid checks if the IdeaPriority is valid
func (p IdeaPriority) IsValid() bool {
	switch p {
	case IdeaPriorityLow, IdeaPriorityMedium, IdeaPriorityHigh:
		return true
	}
	return false
}

// IsValid checks if the SubscriptionStatus is valid
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusTrial, SubscriptionStatusActive, SubscriptionStatusCanceled, SubscriptionStatusPastDue:
		return true
	}
	return false
}
