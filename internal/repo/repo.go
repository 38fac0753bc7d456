// Package repo is the data-access layer: thin context-aware wrappers around
// parameterized GORM queries. It owns no business rules; services translate
// gorm.ErrRecordNotFound and uniqueness checks into domain errors.
package repo

import "gorm.io/gorm"

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
