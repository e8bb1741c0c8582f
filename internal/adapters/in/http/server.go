// Package http exposes the marketplace over a REST API built on Echo. The
// handlers translate between wire DTOs and the application's commands and
// queries; no business rules live here.
package http

import (
	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles every write operation the API exposes.
type CommandHandlers struct {
	RegisterUser         commands.RegisterUserCommandHandler
	UpdateProfile        commands.UpdateProfileCommandHandler
	VerifyUser           commands.VerifyUserCommandHandler
	SetUserRole          commands.SetUserRoleCommandHandler
	SetUserStatus        commands.SetUserStatusCommandHandler
	DeleteUser           commands.DeleteUserCommandHandler
	CreateListing        commands.CreateListingCommandHandler
	UpdateListing        commands.UpdateListingCommandHandler
	DeleteListing        commands.DeleteListingCommandHandler
	ModerateListing      commands.ModerateListingCommandHandler
	RecordListingView    commands.RecordListingViewCommandHandler
	CreateOrder          commands.CreateOrderCommandHandler
	ChangeOrderStatus    commands.ChangeOrderStatusCommandHandler
	WithdrawOrder        commands.WithdrawOrderCommandHandler
	SendMessage          commands.SendMessageCommandHandler
	MarkConversationRead commands.MarkConversationReadCommandHandler
	DeleteMessage        commands.DeleteMessageCommandHandler
	SpendPoints          commands.SpendPointsCommandHandler
	CreateForumPost      commands.CreateForumPostCommandHandler
	EditForumPost        commands.EditForumPostCommandHandler
	DeleteForumPost      commands.DeleteForumPostCommandHandler
	AddForumComment      commands.AddForumCommentCommandHandler
	ToggleForumLike      commands.ToggleForumLikeCommandHandler
	RecordPostView       commands.RecordPostViewCommandHandler
}

// QueryHandlers bundles every read operation the API exposes.
type QueryHandlers struct {
	GetListings             queries.GetListingsQueryHandler
	GetListing              queries.GetListingQueryHandler
	GetFarmerListings       queries.GetFarmerListingsQueryHandler
	GetBuyerOrders          queries.GetBuyerOrdersQueryHandler
	GetFarmerOrders         queries.GetFarmerOrdersQueryHandler
	GetOrder                queries.GetOrderQueryHandler
	GetConversations        queries.GetConversationsQueryHandler
	GetConversationMessages queries.GetConversationMessagesQueryHandler
	GetUnreadCount          queries.GetUnreadCountQueryHandler
	GetLoyaltyAccount       queries.GetLoyaltyAccountQueryHandler
	GetForumPosts           queries.GetForumPostsQueryHandler
	GetForumPost            queries.GetForumPostQueryHandler
	GetPlatformStats        queries.GetPlatformStatsQueryHandler
	GetUsers                queries.GetUsersQueryHandler
}

// Server wires HTTP routes to command and query handlers.
type Server struct {
	jwtSecret string
	users     ports.UserRepository
	commands  CommandHandlers
	queries   QueryHandlers
}

// NewServer creates the HTTP server. The user repository serves login and
// profile reads; everything else goes through commands and queries.
func NewServer(
	jwtSecret string,
	users ports.UserRepository,
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
) *Server {
	return &Server{
		jwtSecret: jwtSecret,
		users:     users,
		commands:  commandHandlers,
		queries:   queryHandlers,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Public surface. Tokens are honored when present so the forum can tell
	// whether the reader liked a post.
	public := api.Group("", optionalAuth(s.jwtSecret))
	public.POST("/auth/register", s.Register)
	public.POST("/auth/login", s.Login)
	public.GET("/listings", s.GetListings)
	public.GET("/listings/:id", s.GetListing)
	public.POST("/listings/:id/view", s.RecordListingView)
	public.GET("/forum/posts", s.GetForumPosts)
	public.GET("/forum/posts/:id", s.GetForumPost)

	authed := api.Group("", requireAuth(s.jwtSecret))
	authed.GET("/auth/profile", s.GetProfile)
	authed.PUT("/auth/profile", s.UpdateProfile)
	authed.POST("/auth/verify", s.VerifySelf)

	authed.POST("/listings", s.CreateListing, requireRole(user.RoleFarmer))
	authed.GET("/listings/my/listings", s.GetMyListings, requireRole(user.RoleFarmer))
	authed.PUT("/listings/:id", s.UpdateListing, requireRole(user.RoleFarmer))
	authed.DELETE("/listings/:id", s.DeleteListing)

	authed.POST("/orders", s.CreateOrder, requireRole(user.RoleBuyer))
	authed.GET("/orders/buyer", s.GetBuyerOrders, requireRole(user.RoleBuyer))
	authed.GET("/orders/farmer", s.GetFarmerOrders, requireRole(user.RoleFarmer))
	authed.GET("/orders/:id", s.GetOrder)
	authed.PUT("/orders/:id/status", s.ChangeOrderStatus)
	authed.DELETE("/orders/:id", s.CancelOrder, requireRole(user.RoleBuyer))

	authed.POST("/messages", s.SendMessage)
	authed.GET("/messages/conversations", s.GetConversations)
	authed.GET("/messages/conversation/:id", s.GetConversationMessages)
	authed.GET("/messages/unread/count", s.GetUnreadCount)
	authed.DELETE("/messages/:id", s.DeleteMessage)

	authed.GET("/loyalty", s.GetLoyaltyAccount)
	authed.POST("/loyalty/spend", s.SpendPoints)

	authed.POST("/forum/posts", s.CreateForumPost)
	authed.PUT("/forum/posts/:id", s.EditForumPost)
	authed.DELETE("/forum/posts/:id", s.DeleteForumPost)
	authed.POST("/forum/posts/:id/comments", s.AddForumComment)
	authed.POST("/forum/posts/:id/like", s.ToggleForumLike)

	admin := api.Group("/admin", requireAuth(s.jwtSecret), requireRole(user.RoleAdmin))
	admin.GET("/users", s.GetUsers)
	admin.POST("/users/:id/verify", s.VerifyUser)
	admin.PUT("/users/:id/role", s.SetUserRole)
	admin.PUT("/users/:id/status", s.SetUserStatus)
	admin.DELETE("/users/:id", s.DeleteUser)
	admin.PUT("/listings/:id/moderate", s.ModerateListing)
	admin.GET("/stats", s.GetPlatformStats)
}
