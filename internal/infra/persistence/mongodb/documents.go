package mongodb

import (
	"context"
	"slices"
	"time"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Ids are stored as their canonical string form in _id.

type userDocument struct {
	ID                   string     `bson:"_id"`
	FirstName            string     `bson:"first_name"`
	LastName             string     `bson:"last_name"`
	Email                string     `bson:"email"`
	PasswordHash         string     `bson:"password_hash"`
	Role                 string     `bson:"role"`
	SellerStatus         string     `bson:"seller_status"`
	IsVerified           bool       `bson:"is_verified"`
	StudentIDNumber      string     `bson:"student_id_number,omitempty"`
	VerificationImageRef string     `bson:"verification_image_ref,omitempty"`
	ApplicationDate      *time.Time `bson:"application_date,omitempty"`
	CreatedAt            time.Time  `bson:"created_at"`
	UpdatedAt            time.Time  `bson:"updated_at"`
}

type shopDocument struct {
	ID          string    `bson:"_id"`
	OwnerID     string    `bson:"owner_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	LogoRef     string    `bson:"logo_ref,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type productDocument struct {
	ID                 string               `bson:"_id"`
	ShopID             string               `bson:"shop_id"`
	Name               string               `bson:"name"`
	Description        string               `bson:"description"`
	Price              primitive.Decimal128 `bson:"price"`
	Stock              int                  `bson:"stock"`
	ImageRefs          []string             `bson:"image_refs"`
	FeaturedImageIndex int                  `bson:"featured_image_index"`
	CreatedAt          time.Time            `bson:"created_at"`
	UpdatedAt          time.Time            `bson:"updated_at"`
}

type cartDocument struct {
	ID        string              `bson:"_id"`
	BuyerID   string              `bson:"buyer_id"`
	Items     []*cartItemDocument `bson:"items"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

type cartItemDocument struct {
	ID            string               `bson:"_id"`
	ProductID     string               `bson:"product_id"`
	ShopID        string               `bson:"shop_id"`
	Quantity      int                  `bson:"quantity"`
	AddedAt       time.Time            `bson:"added_at"`
	ProductName   string               `bson:"product_name"`
	ProductPrice  primitive.Decimal128 `bson:"product_price"`
	ProductImages []string             `bson:"product_images"`
	ProductStock  int                  `bson:"product_stock"`
	ShopName      string               `bson:"shop_name"`
	ShopLogo      string               `bson:"shop_logo,omitempty"`
}

func bsonKeys(pairs ...any) bson.D {
	keys := make(bson.D, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		keys = append(keys, bson.E{Key: pairs[i].(string), Value: pairs[i+1]})
	}

	return keys
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

// parseID tolerates corrupt ids by returning uuid.Nil.
func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	dec, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, errors.Wrapf(err, "invalid decimal %s", d.String())
	}

	return dec, nil
}

func fromDecimal128(dec primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(dec.String())
	if err != nil {
		return decimal.Zero
	}

	return d
}

func nonNil(refs []string) []string {
	if refs == nil {
		return []string{}
	}

	return slices.Clone(refs)
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]*T, error) {
	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode documents")
	}

	return docs, nil
}

func toUserDocument(u *entity.User) *userDocument {
	return &userDocument{
		ID:                   u.ID.String(),
		FirstName:            u.FirstName,
		LastName:             u.LastName,
		Email:                u.Email,
		PasswordHash:         u.PasswordHash,
		Role:                 u.Role.String(),
		SellerStatus:         u.SellerStatus.String(),
		IsVerified:           u.IsVerified,
		StudentIDNumber:      u.StudentIDNumber,
		VerificationImageRef: u.VerificationImageRef,
		ApplicationDate:      u.ApplicationDate,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}

func (d *userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:                   parseID(d.ID),
		FirstName:            d.FirstName,
		LastName:             d.LastName,
		Email:                d.Email,
		PasswordHash:         d.PasswordHash,
		Role:                 entity.Role(d.Role),
		SellerStatus:         entity.SellerStatus(d.SellerStatus),
		IsVerified:           d.IsVerified,
		StudentIDNumber:      d.StudentIDNumber,
		VerificationImageRef: d.VerificationImageRef,
		ApplicationDate:      d.ApplicationDate,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

func toShopDocument(s *entity.Shop) *shopDocument {
	return &shopDocument{
		ID:          s.ID.String(),
		OwnerID:     s.OwnerID.String(),
		Name:        s.Name,
		Description: s.Description,
		LogoRef:     s.LogoRef,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (d *shopDocument) toEntity() *entity.Shop {
	return &entity.Shop{
		ID:          parseID(d.ID),
		OwnerID:     parseID(d.OwnerID),
		Name:        d.Name,
		Description: d.Description,
		LogoRef:     d.LogoRef,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toProductDocument(p *entity.Product) (*productDocument, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return nil, err
	}

	return &productDocument{
		ID:                 p.ID.String(),
		ShopID:             p.ShopID.String(),
		Name:               p.Name,
		Description:        p.Description,
		Price:              price,
		Stock:              p.Stock,
		ImageRefs:          nonNil(p.ImageRefs),
		FeaturedImageIndex: p.FeaturedImageIndex,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}, nil
}

func (d *productDocument) toEntity() *entity.Product {
	return &entity.Product{
		ID:                 parseID(d.ID),
		ShopID:             parseID(d.ShopID),
		Name:               d.Name,
		Description:        d.Description,
		Price:              fromDecimal128(d.Price),
		Stock:              d.Stock,
		ImageRefs:          nonNil(d.ImageRefs),
		FeaturedImageIndex: d.FeaturedImageIndex,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func toCartItemDocuments(items []*entity.CartItem) ([]*cartItemDocument, error) {
	docs := make([]*cartItemDocument, 0, len(items))
	for _, item := range items {
		price, err := toDecimal128(item.Snapshot.ProductPrice)
		if err != nil {
			return nil, err
		}

		docs = append(docs, &cartItemDocument{
			ID:            item.ID.String(),
			ProductID:     item.ProductID.String(),
			ShopID:        item.ShopID.String(),
			Quantity:      item.Quantity,
			AddedAt:       item.AddedAt,
			ProductName:   item.Snapshot.ProductName,
			ProductPrice:  price,
			ProductImages: nonNil(item.Snapshot.ProductImages),
			ProductStock:  item.Snapshot.ProductStock,
			ShopName:      item.Snapshot.ShopName,
			ShopLogo:      item.Snapshot.ShopLogo,
		})
	}

	return docs, nil
}

func toCartDocument(c *entity.Cart) (*cartDocument, error) {
	items, err := toCartItemDocuments(c.Items)
	if err != nil {
		return nil, err
	}

	return &cartDocument{
		ID:        c.ID.String(),
		BuyerID:   c.BuyerID.String(),
		Items:     items,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

func (d *cartDocument) toEntity() *entity.Cart {
	items := make([]*entity.CartItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, &entity.CartItem{
			ID:        parseID(item.ID),
			ProductID: parseID(item.ProductID),
			ShopID:    parseID(item.ShopID),
			Quantity:  item.Quantity,
			AddedAt:   item.AddedAt,
			Snapshot: entity.ProductSnapshot{
				ProductName:   item.ProductName,
				ProductPrice:  fromDecimal128(item.ProductPrice),
				ProductImages: nonNil(item.ProductImages),
				ProductStock:  item.ProductStock,
				ShopName:      item.ShopName,
				ShopLogo:      item.ShopLogo,
			},
		})
	}

	return &entity.Cart{
		ID:        parseID(d.ID),
		BuyerID:   parseID(d.BuyerID),
		Items:     items,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
