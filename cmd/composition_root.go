package cmd

import (
	"log/slog"

	httpadapter "agromarket/internal/adapters/in/http"
	"agromarket/internal/adapters/out/brevo"
	"agromarket/internal/adapters/out/postgres"
	"agromarket/internal/adapters/out/postgres/userrepo"
	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/ports"
	"agromarket/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	mailer     *brevo.Mailer
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		mailer:     brevo.NewMailer(configs.BrevoAPIKey, configs.MailSenderEmail, configs.MailSenderName),
		logger:     logger,
	}
}

// CreateHTTPServer wires every command and query handler into the REST API.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.configs.JWTSecret,
		userrepo.NewGormUserRepository(c.gormDB),
		c.createCommandHandlers(),
		c.createQueryHandlers(),
	)
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchNotificationsCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	return commands.NewDispatchNotificationsCommandHandler(c.notificationUoWFactory(), c.mailer)
}

func (c *CompositionRoot) createCommandHandlers() httpadapter.CommandHandlers {
	return httpadapter.CommandHandlers{
		RegisterUser:         commands.NewRegisterUserCommandHandler(c.userUoWFactory()),
		UpdateProfile:        commands.NewUpdateProfileCommandHandler(c.userUoWFactory()),
		VerifyUser:           commands.NewVerifyUserCommandHandler(c.userUoWFactory()),
		SetUserRole:          commands.NewSetUserRoleCommandHandler(c.userUoWFactory()),
		SetUserStatus:        commands.NewSetUserStatusCommandHandler(c.userUoWFactory()),
		DeleteUser:           commands.NewDeleteUserCommandHandler(c.userUoWFactory()),
		CreateListing:        commands.NewCreateListingCommandHandler(c.listingUoWFactory()),
		UpdateListing:        commands.NewUpdateListingCommandHandler(c.listingUoWFactory()),
		DeleteListing:        commands.NewDeleteListingCommandHandler(c.listingUoWFactory()),
		ModerateListing:      commands.NewModerateListingCommandHandler(c.listingUoWFactory()),
		RecordListingView:    commands.NewRecordListingViewCommandHandler(c.listingUoWFactory()),
		CreateOrder:          commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		ChangeOrderStatus:    commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory()),
		WithdrawOrder:        commands.NewWithdrawOrderCommandHandler(c.orderUoWFactory()),
		SendMessage:          commands.NewSendMessageCommandHandler(c.messageUoWFactory()),
		MarkConversationRead: commands.NewMarkConversationReadCommandHandler(c.messageUoWFactory()),
		DeleteMessage:        commands.NewDeleteMessageCommandHandler(c.messageUoWFactory()),
		SpendPoints:          commands.NewSpendPointsCommandHandler(c.loyaltyUoWFactory()),
		CreateForumPost:      commands.NewCreateForumPostCommandHandler(c.forumUoWFactory()),
		EditForumPost:        commands.NewEditForumPostCommandHandler(c.forumUoWFactory()),
		DeleteForumPost:      commands.NewDeleteForumPostCommandHandler(c.forumUoWFactory()),
		AddForumComment:      commands.NewAddForumCommentCommandHandler(c.forumUoWFactory()),
		ToggleForumLike:      commands.NewToggleForumLikeCommandHandler(c.forumUoWFactory()),
		RecordPostView:       commands.NewRecordPostViewCommandHandler(c.forumUoWFactory()),
	}
}

func (c *CompositionRoot) createQueryHandlers() httpadapter.QueryHandlers {
	return httpadapter.QueryHandlers{
		GetListings:             queries.NewGetListingsQueryHandler(c.gormDB),
		GetListing:              queries.NewGetListingQueryHandler(c.gormDB),
		GetFarmerListings:       queries.NewGetFarmerListingsQueryHandler(c.gormDB),
		GetBuyerOrders:          queries.NewGetBuyerOrdersQueryHandler(c.gormDB),
		GetFarmerOrders:         queries.NewGetFarmerOrdersQueryHandler(c.gormDB),
		GetOrder:                queries.NewGetOrderQueryHandler(c.gormDB),
		GetConversations:        queries.NewGetConversationsQueryHandler(c.gormDB),
		GetConversationMessages: queries.NewGetConversationMessagesQueryHandler(c.gormDB),
		GetUnreadCount:          queries.NewGetUnreadCountQueryHandler(c.gormDB),
		GetLoyaltyAccount:       queries.NewGetLoyaltyAccountQueryHandler(c.gormDB),
		GetForumPosts:           queries.NewGetForumPostsQueryHandler(c.gormDB),
		GetForumPost:            queries.NewGetForumPostQueryHandler(c.gormDB),
		GetPlatformStats:        queries.NewGetPlatformStatsQueryHandler(c.gormDB),
		GetUsers:                queries.NewGetUsersQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) createUnitOfWork() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW { return c.createUnitOfWork() })
}

func (c *CompositionRoot) listingUoWFactory() commands.ListingUoWFactory {
	return FuncListingUoWFactory(func() commands.ListingUoW { return c.createUnitOfWork() })
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.createUnitOfWork() })
}

func (c *CompositionRoot) messageUoWFactory() commands.MessageUoWFactory {
	return FuncMessageUoWFactory(func() commands.MessageUoW { return c.createUnitOfWork() })
}

func (c *CompositionRoot) loyaltyUoWFactory() commands.LoyaltyUoWFactory {
	return FuncLoyaltyUoWFactory(func() commands.LoyaltyUoW { return c.createUnitOfWork() })
}

func (c *CompositionRoot) forumUoWFactory() commands.ForumUoWFactory {
	return FuncForumUoWFactory(func() commands.ForumUoW { return c.createUnitOfWork() })
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW { return c.createUnitOfWork() })
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMessageUoWFactory func() commands.MessageUoW

func (f FuncMessageUoWFactory) Create() commands.MessageUoW {
	return f()
}

type FuncLoyaltyUoWFactory func() commands.LoyaltyUoW

func (f FuncLoyaltyUoWFactory) Create() commands.LoyaltyUoW {
	return f()
}

type FuncForumUoWFactory func() commands.ForumUoW

func (f FuncForumUoWFactory) Create() commands.ForumUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
