package http

import (
	"time"

	"agromarket/internal/core/application/usecases/queries"
)

// Wire representations of the read models. Enum fields carry their lowercase
// wire strings, identifiers their canonical UUID form.

type listingResponse struct {
	ID          string    `json:"id"`
	FarmerID    string    `json:"farmerId"`
	FarmerName  string    `json:"farmerName"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ProduceType string    `json:"produceType"`
	Price       float64   `json:"price"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	State       string    `json:"state"`
	LGA         string    `json:"lga"`
	Address     string    `json:"address"`
	ImageURLs   []string  `json:"imageUrls"`
	Status      string    `json:"status"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toListingResponse(item queries.ListingQueryResponse) listingResponse {
	return listingResponse{
		ID:          item.ID.String(),
		FarmerID:    item.FarmerID.String(),
		FarmerName:  item.FarmerName,
		Title:       item.Title,
		Description: item.Description,
		ProduceType: item.ProduceType,
		Price:       item.Price,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		State:       item.Location.State,
		LGA:         item.Location.LGA,
		Address:     item.Location.Address,
		ImageURLs:   item.ImageURLs,
		Status:      item.Status.String(),
		Views:       item.Views,
		CreatedAt:   item.CreatedAt,
	}
}

func toListingResponses(items []queries.ListingQueryResponse) []listingResponse {
	responses := make([]listingResponse, len(items))
	for i, item := range items {
		responses[i] = toListingResponse(item)
	}
	return responses
}

type orderResponse struct {
	ID              string    `json:"id"`
	ListingID       string    `json:"listingId"`
	BuyerID         string    `json:"buyerId"`
	FarmerID        string    `json:"farmerId"`
	ListingTitle    string    `json:"listingTitle"`
	Quantity        float64   `json:"quantity"`
	UnitPrice       float64   `json:"unitPrice"`
	TotalPrice      float64   `json:"totalPrice"`
	Status          string    `json:"status"`
	BuyerName       string    `json:"buyerName"`
	BuyerPhone      string    `json:"buyerPhone"`
	FarmerName      string    `json:"farmerName"`
	FarmerPhone     string    `json:"farmerPhone"`
	DeliveryAddress string    `json:"deliveryAddress"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toOrderResponse(item queries.OrderQueryResponse) orderResponse {
	return orderResponse{
		ID:              item.ID.String(),
		ListingID:       item.ListingID.String(),
		BuyerID:         item.BuyerID.String(),
		FarmerID:        item.FarmerID.String(),
		ListingTitle:    item.ListingTitle,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
		TotalPrice:      item.TotalPrice,
		Status:          item.Status.String(),
		BuyerName:       item.BuyerName,
		BuyerPhone:      item.BuyerPhone,
		FarmerName:      item.FarmerName,
		FarmerPhone:     item.FarmerPhone,
		DeliveryAddress: item.DeliveryAddress,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func toOrderResponses(items []queries.OrderQueryResponse) []orderResponse {
	responses := make([]orderResponse, len(items))
	for i, item := range items {
		responses[i] = toOrderResponse(item)
	}
	return responses
}

type conversationResponse struct {
	ID              string    `json:"id"`
	CounterpartID   string    `json:"counterpartId"`
	CounterpartName string    `json:"counterpartName"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageAt   time.Time `json:"lastMessageAt"`
	UnreadCount     int64     `json:"unreadCount"`
}

type messageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

type forumPostResponse struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toForumPostResponse(item queries.ForumPostQueryResponse) forumPostResponse {
	return forumPostResponse{
		ID:           item.ID.String(),
		AuthorID:     item.AuthorID.String(),
		AuthorName:   item.AuthorName,
		Title:        item.Title,
		Content:      item.Content,
		Category:     item.Category,
		LikeCount:    item.LikeCount,
		CommentCount: item.CommentCount,
		Views:        item.Views,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

type forumCommentResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	State     string    `json:"state"`
	LGA       string    `json:"lga"`
	Address   string    `json:"address"`
	Bio       string    `json:"bio"`
	Verified  bool      `json:"verified"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(item queries.UserQueryResponse) userResponse {
	return userResponse{
		ID:        item.ID.String(),
		Email:     item.Email,
		Name:      item.Name,
		Phone:     item.Phone,
		Role:      item.Role.String(),
		State:     item.Location.State,
		LGA:       item.Location.LGA,
		Address:   item.Location.Address,
		Bio:       item.Bio,
		Verified:  item.Verified,
		Active:    item.Active,
		CreatedAt: item.CreatedAt,
	}
}
