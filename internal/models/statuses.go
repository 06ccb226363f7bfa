package models

type UserRole string
type GigStatus string
type BudgetType string
type DifficultyLevel string
type ApplicationStatus string

const (
	UserRoleStudent    UserRole = "student"
	UserRoleFreelancer UserRole = "freelancer"
	UserRoleEmployer   UserRole = "employer"

	GigStatusOpen       GigStatus = "open"
	GigStatusInProgress GigStatus = "in_progress"
	GigStatusCompleted  GigStatus = "completed"
	GigStatusCancelled  GigStatus = "cancelled"

	BudgetTypeFixed  BudgetType = "fixed"
	BudgetTypeHourly BudgetType = "hourly"

	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyExpert       DifficultyLevel = "expert"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)
