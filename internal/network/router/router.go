package router

import (
	"github.com/ebarbosa87/pixmart/internal/cache"
	"github.com/ebarbosa87/pixmart/internal/client"
	"github.com/ebarbosa87/pixmart/internal/config"
	"github.com/ebarbosa87/pixmart/internal/feed"
	"github.com/ebarbosa87/pixmart/internal/network/handlers"
	"github.com/ebarbosa87/pixmart/internal/network/middleware"
	"github.com/ebarbosa87/pixmart/internal/services"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config        config.Config
	Identity      services.IdentityService
	Listings      services.ListingsService
	Orders        services.OrdersService
	Finance       services.FinanceService
	Payments      services.PaymentsService
	Disputes      services.DisputesService
	Tickets       services.TicketsService
	Notifications services.NotificationsService
	Broker        *feed.Broker
}

func NewRouter(config config.Config, storage storage.Storage, gateway client.GatewayService, objects client.ObjectStore, cache *cache.Cache, broker *feed.Broker) *Router {
	notifications := services.NewNotifications(storage.Notifications)
	return &Router{
		Config:        config,
		Identity:      services.NewIdentity(config, storage.Users),
		Listings:      services.NewListings(storage.Listings, objects, config.Store.ObjectStoreBucket),
		Orders:        services.NewOrders(storage.Orders, storage.Listings),
		Finance:       services.NewFinance(storage.Orders, storage.Withdrawals, storage.Financials, cache, notifications),
		Payments:      services.NewPayments(storage.Orders, storage.Listings, gateway, cache, notifications),
		Disputes:      services.NewDisputes(storage.Disputes, storage.Orders, cache, notifications),
		Tickets:       services.NewTickets(storage.Tickets, notifications),
		Notifications: notifications,
		Broker:        broker,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Get("/health", handlers.HealthHandler())
		// gateway calls back without a user token
		r.Post("/payments/webhook", handlers.WebhookHandler(router.Payments))
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandler(router.Identity))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Get("/balance", handlers.GetBalanceHandler(router.Finance))
				r.Post("/balance/withdraw", handlers.RequestWithdrawalHandler(router.Finance))
				r.Get("/withdrawals", handlers.GetWithdrawalsHandler(router.Finance))
				r.Put("/financials", handlers.SaveFinancialsHandler(router.Finance))
				r.Get("/financials", handlers.GetFinancialsHandler(router.Finance))
				r.Get("/notifications", handlers.GetNotificationsHandler(router.Notifications))
				r.Post("/notifications/read", handlers.MarkReadHandler(router.Notifications))
				r.Get("/notifications/feed", handlers.FeedHandler(router.Broker))
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Route("/listings", func(r chi.Router) {
				r.Post("/", handlers.CreateListingHandler(router.Listings))
				r.Get("/", handlers.GetListingsHandler(router.Listings))
				r.Post("/{id}/status", handlers.UpdateListingStatusHandler(router.Listings))
				r.Post("/{id}/image", handlers.UploadListingImageHandler(router.Listings))
			})
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", handlers.CreateOrderHandler(router.Orders))
				r.Get("/", handlers.GetPurchasesHandler(router.Orders))
				r.Post("/{id}/checkout", handlers.CheckoutHandler(router.Payments))
				r.Post("/{id}/dispute", handlers.OpenDisputeHandler(router.Disputes))
			})
			r.Get("/sales", handlers.GetSalesHandler(router.Orders))
			r.Route("/tickets", func(r chi.Router) {
				r.Post("/", handlers.CreateTicketHandler(router.Tickets))
				r.Get("/", handlers.GetTicketsHandler(router.Tickets))
				r.Post("/{id}/close", handlers.CloseTicketHandler(router.Tickets))
			})
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/withdrawals", handlers.GetPendingWithdrawalsHandler(router.Finance))
				r.Post("/withdrawals/{id}/approve", handlers.ApproveWithdrawalHandler(router.Finance))
				r.Post("/withdrawals/{id}/reject", handlers.RejectWithdrawalHandler(router.Finance))
				r.Get("/disputes", handlers.GetOpenDisputesHandler(router.Disputes))
				r.Post("/disputes/{id}/resolve", handlers.ResolveDisputeHandler(router.Disputes))
				r.Get("/tickets", handlers.GetOpenTicketsHandler(router.Tickets))
				r.Post("/tickets/{id}/reply", handlers.ReplyTicketHandler(router.Tickets))
			})
		})
	})
	return r
}
