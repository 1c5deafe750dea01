// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/danielhkuo/explore-registration/models"
)

// ListRegistrations returns every registration, newest first.
// id breaks ties between rows created in the same instant.
func ListRegistrations(ctx context.Context, db *gorm.DB) ([]models.Registration, error) {
	var regs []models.Registration
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&regs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return regs, nil
}
