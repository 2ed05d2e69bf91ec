package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/beautyplaza/beautyplaza-api/booking"
	"github.com/beautyplaza/beautyplaza-api/models"
)

// Directory implements booking.DirectoryLookup over the relational store.
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

func (d *Directory) FindCustomer(id string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.NewNotFound("Customer", "id", id)
		}
		return nil, err
	}
	return &user, nil
}

func (d *Directory) FindService(id uint) (*models.BeautyService, error) {
	var service models.BeautyService
	if err := d.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.NewNotFound("Service", "id", id)
		}
		return nil, err
	}
	return &service, nil
}

func (d *Directory) FindTechnician(id uint) (*models.Technician, error) {
	var technician models.Technician
	if err := d.db.First(&technician, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.NewNotFound("Technician", "id", id)
		}
		return nil, err
	}
	return &technician, nil
}
