package services

import (
	"errors"
	"os"
	"strconv"
	"time"

	"matka/database"
	"matka/game"
	"matka/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultMarkets are seeded on boot when the markets table is empty.
var DefaultMarkets = []models.Market{
	{Name: "DELHI BAZAAR", ResultTime: "3:00 PM"},
	{Name: "DHAN KUBER", ResultTime: "3:00 PM"},
	{Name: "DISAWAR", ResultTime: "1:00 PM"},
	{Name: "FARIDABAD", ResultTime: "6:00 PM"},
	{Name: "GALI", ResultTime: "12:30 PM"},
	{Name: "SHREE GANESH", ResultTime: "4:30 PM"},
}

func SeedMarkets() error {
	var count int64
	if err := database.DB.Model(&models.Market{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return database.DB.Create(&DefaultMarkets).Error
}

// marketMultiplier is the fixed-number payout rate, configurable because
// operators tune it per deployment.
func marketMultiplier() int64 {
	if v, err := strconv.ParseInt(os.Getenv("MARKET_PAYOUT_MULTIPLIER"), 10, 64); err == nil && v > 0 {
		return v
	}
	return 90
}

// marketDayID keys market stakes by calendar day, playing the role a
// round id plays for the clock-driven games.
func marketDayID(t time.Time) int64 {
	y, m, d := t.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

func marketGameKey(name string) string {
	return "market:" + name
}

// PlaceMarketStake records a 0-99 bet on a market for today's result,
// debiting the spendable balance atomically with the insert.
func PlaceMarketStake(userID, marketID uint, number int, amount decimal.Decimal) (*models.Stake, error) {
	if number < 0 || number > 99 {
		return nil, ErrInvalidSelection
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	amount = amount.Round(2)

	var stake models.Stake
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// The market row lock serializes bet placement against result
		// publication: a stake either commits before the publish reads
		// pending stakes or sees today's result and is rejected.
		var market models.Market
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_active = true", marketID).First(&market).Error; err != nil {
			return ErrMarketNotFound
		}

		today := marketDayID(time.Now())
		var published int64
		if err := tx.Model(&models.MarketResult{}).
			Where("market_id = ? AND result_day = ?", market.ID, today).
			Count(&published).Error; err != nil {
			return err
		}
		if published > 0 {
			return ErrRoundClosed
		}

		user, err := debitBalance(tx, userID, amount,
			"Stake on "+market.Name+" ("+strconv.Itoa(number)+")")
		if err != nil {
			return err
		}

		stake = models.Stake{
			UserID:    user.ID,
			Game:      marketGameKey(market.Name),
			RoundID:   today,
			Selection: number,
			Amount:    amount,
			Status:    models.StakePending,
			RefID:     uuid.New().String(),
		}
		return tx.Create(&stake).Error
	})
	if err != nil {
		return nil, err
	}
	return &stake, nil
}

// PublishMarketResult records the market's number for today and settles
// every pending stake on today's play in the same transaction. Matching
// stakes win at the configured market multiplier; credits go through the
// pending-approval winner queue. Publishing twice for the same day fails.
func PublishMarketResult(marketID uint, number int) (*models.MarketResult, error) {
	if number < 0 || number > 99 {
		return nil, ErrInvalidSelection
	}

	var result models.MarketResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the market row so only one publication can settle the day;
		// the unique (market_id, result_day) index backs this up if the
		// lock is ever bypassed.
		var market models.Market
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&market, marketID).Error; err != nil {
			return ErrMarketNotFound
		}

		now := time.Now()
		today := marketDayID(now)
		var existing models.MarketResult
		err := tx.Where("market_id = ? AND result_day = ?", market.ID, today).
			First(&existing).Error
		if err == nil {
			return ErrDuplicateResult
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		result = models.MarketResult{
			MarketID:   market.ID,
			MarketName: market.Name,
			Number:     number,
			ResultDay:  today,
			ResultDate: now,
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		var stakes []models.Stake
		if err := tx.Where("game = ? AND round_id = ? AND status = ?",
			marketGameKey(market.Name), today, models.StakePending).
			Find(&stakes).Error; err != nil {
			return err
		}

		credits := game.Distribute(stakes, number, marketMultiplier())
		for i := range stakes {
			res := tx.Model(&stakes[i]).
				Where("status = ?", models.StakePending).
				Updates(map[string]any{
					"status": stakes[i].Status,
					"payout": stakes[i].Payout,
				})
			if res.Error != nil {
				return res.Error
			}
		}

		for userID, prize := range credits {
			winner := models.Winner{
				UserID:   userID,
				GameName: market.Name,
				RoundID:  today,
				Prize:    prize,
				Status:   models.WinnerPendingApproval,
			}
			if err := tx.Create(&winner).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
