package routes

import (
	"matka/controllers/admin"
	"matka/controllers/game"
	"matka/controllers/user"
	"matka/controllers/wallet"
	"matka/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/register", user.Register)
	app.Post("/auth/login", user.Login)

	// games
	gameroutes := app.Group("/games", middlewares.UserAuthMiddleware)
	gameroutes.Get("/:game/state", game.RoundState)
	gameroutes.Get("/:game/results", game.RoundResults)
	gameroutes.Post("/wingame/bet", game.PlaceWinGameBet)
	gameroutes.Post("/haruf/bets", game.PlaceHarufBets)

	marketroutes := app.Group("/markets", middlewares.UserAuthMiddleware)
	marketroutes.Get("/", game.ListMarkets)
	marketroutes.Post("/:id/bet", game.PlaceMarketBet)
	marketroutes.Get("/:id/results", game.MarketResults)

	rouletteroutes := app.Group("/roulette", middlewares.UserAuthMiddleware)
	rouletteroutes.Post("/spin", game.Spin)
	rouletteroutes.Get("/recent", game.RecentRouletteOutcomes)

	// wallet
	walletroutes := app.Group("/wallet", middlewares.UserAuthMiddleware)
	walletroutes.Get("/", wallet.Balance)
	walletroutes.Post("/topup", wallet.RequestTopUp)
	walletroutes.Get("/topups", wallet.MyTopUps)
	walletroutes.Post("/withdraw", wallet.RequestWithdrawal)
	walletroutes.Get("/withdrawals", wallet.MyWithdrawals)

	meroutes := app.Group("/me", middlewares.UserAuthMiddleware)
	meroutes.Get("/stakes", game.MyStakes)

	// admin console
	adminroutes := app.Group("/admin", middlewares.AdminAuth())
	adminroutes.Get("/users", admin.ListUsers)
	adminroutes.Get("/stakes", admin.ListRoundStakes)
	adminroutes.Get("/topups", admin.ListTopUps)
	adminroutes.Post("/topups/:id/resolve", admin.ResolveTopUp)
	adminroutes.Get("/withdrawals", admin.ListWithdrawals)
	adminroutes.Post("/withdrawals/:id/resolve", admin.ResolveWithdrawal)
	adminroutes.Get("/winners", admin.ListWinners)
	adminroutes.Post("/winners/:id/announce", admin.AnnounceWinner)
	adminroutes.Post("/markets/:id/result", admin.PublishMarketResult)
}
