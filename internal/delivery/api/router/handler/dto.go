package handler

import (
	"time"

	"kampuskart/internal/domain/entity"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const imagePathPrefix = "/api/images/"

// imageURL maps a blob reference to the route that serves it.
func imageURL(ref string) string {
	if ref == "" {
		return ""
	}

	return imagePathPrefix + ref
}

func imageURLs(refs []string) []string {
	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		urls = append(urls, imageURL(ref))
	}

	return urls
}

// UserResponse is the public view of an account. The password hash never leaves the server.
type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	SellerStatus    string     `json:"sellerStatus,omitempty"`
	IsVerified      bool       `json:"isVerified"`
	StudentIDNumber string     `json:"studentIdNumber,omitempty"`
	StudentIDImage  string     `json:"studentIdPicture,omitempty"`
	ApplicationDate *time.Time `json:"applicationDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		Role:            user.Role.String(),
		SellerStatus:    user.SellerStatus.String(),
		IsVerified:      user.IsVerified,
		StudentIDNumber: user.StudentIDNumber,
		StudentIDImage:  imageURL(user.VerificationImageRef),
		ApplicationDate: user.ApplicationDate,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

// AuthResponse carries a fresh token pair and the account it belongs to.
type AuthResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresIn    int64         `json:"expiresIn"` // seconds
	User         *UserResponse `json:"user"`
}

func toAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    int64(out.ExpiresIn.Seconds()),
		User:         toUserResponse(out.User),
	}
}

// ApplicationResponse is a buyer's view of their seller application.
type ApplicationResponse struct {
	Status          string     `json:"status"`
	StudentIDNumber string     `json:"studentIdNumber,omitempty"`
	ApplicationDate *time.Time `json:"applicationDate,omitempty"`
	IsVerified      bool       `json:"isVerified"`
	Role            string     `json:"role"`
}

func toApplicationResponse(user *entity.User) *ApplicationResponse {
	return &ApplicationResponse{
		Status:          user.SellerStatus.String(),
		StudentIDNumber: user.StudentIDNumber,
		ApplicationDate: user.ApplicationDate,
		IsVerified:      user.IsVerified,
		Role:            user.Role.String(),
	}
}

// Pagination describes the page a listing returned.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func toPagination(page entity.Page, total int64, totalPages int) Pagination {
	return Pagination{
		Page:       page.Number,
		Limit:      page.Size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// UserListResponse is a page of accounts.
type UserListResponse struct {
	Users      []*UserResponse `json:"users"`
	Pagination Pagination      `json:"pagination"`
}

func toUserListResponse(page *usecase.UserPage) *UserListResponse {
	return &UserListResponse{
		Users:      toUserResponses(page.Users),
		Pagination: toPagination(page.Page, page.Total, page.TotalPages),
	}
}

// ShopResponse is the public view of a shop.
type ShopResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Logo        string    `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toShopResponse(shop *entity.Shop) *ShopResponse {
	if shop == nil {
		return nil
	}

	return &ShopResponse{
		ID:          shop.ID,
		OwnerID:     shop.OwnerID,
		Name:        shop.Name,
		Description: shop.Description,
		Logo:        imageURL(shop.LogoRef),
		CreatedAt:   shop.CreatedAt,
		UpdatedAt:   shop.UpdatedAt,
	}
}

func toShopResponses(shops []*entity.Shop) []*ShopResponse {
	out := make([]*ShopResponse, 0, len(shops))
	for _, shop := range shops {
		out = append(out, toShopResponse(shop))
	}

	return out
}

// ProductResponse is the public view of a product, with its shop when known.
type ProductResponse struct {
	ID                 uuid.UUID       `json:"id"`
	ShopID             uuid.UUID       `json:"shopId"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	Stock              int             `json:"stock"`
	Images             []string        `json:"images"`
	FeaturedImageIndex int             `json:"featuredImageIndex"`
	FeaturedImage      string          `json:"featuredImage,omitempty"`
	Shop               *ShopResponse   `json:"shop,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func toProductResponse(product *entity.Product, shop *entity.Shop) *ProductResponse {
	return &ProductResponse{
		ID:                 product.ID,
		ShopID:             product.ShopID,
		Name:               product.Name,
		Description:        product.Description,
		Price:              product.Price,
		Stock:              product.Stock,
		Images:             imageURLs(product.ImageRefs),
		FeaturedImageIndex: product.FeaturedImageIndex,
		FeaturedImage:      imageURL(product.FeaturedImage()),
		Shop:               toShopResponse(shop),
		CreatedAt:          product.CreatedAt,
		UpdatedAt:          product.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product, nil))
	}

	return out
}

// ProductListResponse is a page of the marketplace.
type ProductListResponse struct {
	Products   []*ProductResponse `json:"products"`
	Pagination Pagination         `json:"pagination"`
}

func toProductListResponse(page *usecase.ProductPage) *ProductListResponse {
	products := make([]*ProductResponse, 0, len(page.Items))
	for _, listing := range page.Items {
		products = append(products, toProductResponse(listing.Product, listing.Shop))
	}

	return &ProductListResponse{
		Products:   products,
		Pagination: toPagination(page.Page, page.Total, page.TotalPages),
	}
}

// CartLineResponse is one cart item joined with its live product state.
type CartLineResponse struct {
	ItemID        uuid.UUID       `json:"itemId"`
	ProductID     uuid.UUID       `json:"productId"`
	ShopID        uuid.UUID       `json:"shopId"`
	ProductName   string          `json:"productName"`
	Price         decimal.Decimal `json:"price"`
	Images        []string        `json:"images"`
	FeaturedImage int             `json:"featuredImageIndex"`
	Quantity      int             `json:"quantity"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	Stock         int             `json:"stock"`
	Available     bool            `json:"available"`
	Selected      bool            `json:"selected"`
	ShopName      string          `json:"shopName"`
	ShopLogo      string          `json:"shopLogo,omitempty"`
	AddedAt       time.Time       `json:"addedAt"`
}

// ShopGroupResponse holds one shop's lines and subtotals.
type ShopGroupResponse struct {
	ShopID           uuid.UUID           `json:"shopId"`
	ShopName         string              `json:"shopName"`
	ShopLogo         string              `json:"shopLogo,omitempty"`
	Items            []*CartLineResponse `json:"items"`
	Subtotal         decimal.Decimal     `json:"subtotal"`
	SelectedSubtotal decimal.Decimal     `json:"selectedSubtotal"`
	SelectedCount    int                 `json:"selectedCount"`
	AllSelected      bool                `json:"allSelected"`
}

// CartResponse is the recomputed cart view returned by every cart endpoint.
type CartResponse struct {
	CartID        uuid.UUID            `json:"cartId"`
	BuyerID       uuid.UUID            `json:"buyerId"`
	Items         []*CartLineResponse  `json:"items"`
	Shops         []*ShopGroupResponse `json:"shops"`
	TotalItems    int                  `json:"totalItems"`
	CartTotal     decimal.Decimal      `json:"cartTotal"`
	SelectedItems int                  `json:"selectedItems"`
	SelectedTotal decimal.Decimal      `json:"selectedTotal"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func toCartLineResponses(lines []entity.CartLine) []*CartLineResponse {
	out := make([]*CartLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, &CartLineResponse{
			ItemID:        line.ItemID,
			ProductID:     line.ProductID,
			ShopID:        line.ShopID,
			ProductName:   line.ProductName,
			Price:         line.Price,
			Images:        imageURLs(line.Images),
			FeaturedImage: line.FeaturedIdx,
			Quantity:      line.Quantity,
			LineTotal:     line.LineTotal,
			Stock:         line.Stock,
			Available:     line.Available,
			Selected:      line.Selected,
			ShopName:      line.ShopName,
			ShopLogo:      imageURL(line.ShopLogo),
			AddedAt:       line.AddedAt,
		})
	}

	return out
}

func toCartResponse(view *entity.CartView) *CartResponse {
	shops := make([]*ShopGroupResponse, 0, len(view.Shops))
	for _, group := range view.Shops {
		shops = append(shops, &ShopGroupResponse{
			ShopID:           group.ShopID,
			ShopName:         group.ShopName,
			ShopLogo:         imageURL(group.ShopLogo),
			Items:            toCartLineResponses(group.Items),
			Subtotal:         group.Subtotal,
			SelectedSubtotal: group.SelectedSubtotal,
			SelectedCount:    group.SelectedCount,
			AllSelected:      group.AllSelected,
		})
	}

	return &CartResponse{
		CartID:        view.CartID,
		BuyerID:       view.BuyerID,
		Items:         toCartLineResponses(view.Items),
		Shops:         shops,
		TotalItems:    view.TotalItems,
		CartTotal:     view.CartTotal,
		SelectedItems: view.SelectedItems,
		SelectedTotal: view.SelectedTotal,
		UpdatedAt:     view.UpdatedAt,
	}
}
