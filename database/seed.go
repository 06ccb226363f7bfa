package database

import (
	"gorm.io/gorm"

	"bitskill_backend/internal/logger"
	"bitskill_backend/internal/models"
	"bitskill_backend/internal/repositories"
)

// SeedCategories наполняет справочник категорий при первом запуске.
// Если категории уже есть, ничего не делает.
func SeedCategories(db *gorm.DB) error {
	categoryRepo := repositories.NewCategoryRepository()

	count, err := categoryRepo.CountAll(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Web Development", Description: "Websites, web apps, and everything in between", Icon: "code", Color: "#3B82F6"},
		{Name: "Mobile App Development", Description: "iOS, Android, and cross-platform apps", Icon: "smartphone", Color: "#8B5CF6"},
		{Name: "Graphic Design", Description: "Logos, branding, and visual identity", Icon: "palette", Color: "#EC4899"},
		{Name: "Content Writing", Description: "Articles, blogs, and copywriting", Icon: "pen-tool", Color: "#F59E0B"},
		{Name: "Digital Marketing", Description: "SEO, social media, and ad campaigns", Icon: "trending-up", Color: "#10B981"},
		{Name: "Data Analysis", Description: "Data cleaning, visualization, and insights", Icon: "bar-chart", Color: "#6366F1"},
		{Name: "Video Editing", Description: "Editing, motion graphics, and post-production", Icon: "video", Color: "#EF4444"},
		{Name: "UI/UX Design", Description: "Interfaces, prototypes, and user research", Icon: "layout", Color: "#14B8A6"},
		{Name: "Translation", Description: "Translation and localization services", Icon: "globe", Color: "#F97316"},
		{Name: "Virtual Assistant", Description: "Admin support and task management", Icon: "headphones", Color: "#64748B"},
	}

	for i := range categories {
		categories[i].IsActive = true
		if err := categoryRepo.Create(db, &categories[i]); err != nil {
			return err
		}
	}

	logger.Info("Categories seeded", "count", len(categories))
	return nil
}
