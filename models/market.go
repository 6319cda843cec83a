package models

import (
	"time"

	"gorm.io/gorm"
)

// Market is a fixed-number game (Gali, Disawar, ...) whose 0-99 result is
// published manually by an admin once per day rather than drawn by the
// round scheduler.
type Market struct {
	gorm.Model

	Name       string `gorm:"uniqueIndex;size:64" json:"name"`
	ResultTime string `gorm:"size:16" json:"result_time"` // display only, e.g. "12:30 PM"
	IsActive   bool   `gorm:"default:true" json:"is_active"`
}

// MarketResult is the published number for one market on one day.
// ResultDay carries the same YYYYMMDD key market stakes use as round id;
// the unique index makes one-result-per-market-per-day a database
// guarantee, not just a transactional check.
type MarketResult struct {
	gorm.Model

	MarketID   uint      `gorm:"index:idx_market_result_day,unique" json:"market_id"`
	MarketName string    `gorm:"size:64;index" json:"market_name"`
	Number     int       `json:"number"`
	ResultDay  int64     `gorm:"index:idx_market_result_day,unique" json:"result_day"`
	ResultDate time.Time `json:"result_date"`
}
