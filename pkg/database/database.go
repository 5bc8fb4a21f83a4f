package database

import (
	"encoding/json"
	"fmt"
	"log"

	"vendor_risk_backend/internal/config"
	"vendor_risk_backend/internal/model"
	"vendor_risk_backend/internal/riskscoring"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Company{},
		&model.User{},
		&model.Vendor{},
		&model.AssessmentTemplate{},
		&model.Assessment{},
		&model.AssessmentDocument{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedBuiltinTemplates(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedBuiltinTemplates inserts the shipped General, Cybersecurity and
// Financial templates once, on an empty templates table. Their question
// IDs line up with riskscoring.DefaultRules, so the rows must stay
// byte-compatible with the package data.
func seedBuiltinTemplates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.AssessmentTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, builtin := range riskscoring.BuiltinTemplates() {
		questions, err := json.Marshal(builtin.Template)
		if err != nil {
			return err
		}
		weights, err := json.Marshal(builtin.Weights)
		if err != nil {
			return err
		}

		tpl := &model.AssessmentTemplate{
			Name:        builtin.Name,
			Description: builtin.Description,
			Category:    model.AssessmentCategory(builtin.Category),
			Questions:   questions,
			RiskWeights: weights,
			IsActive:    true,
			IsDefault:   true,
		}
		if err := db.Create(tpl).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded built-in assessment templates")
	return nil
}
