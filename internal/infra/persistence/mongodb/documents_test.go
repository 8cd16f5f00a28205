package mongodb

import (
	"testing"
	"time"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDecimal128RoundTrip(t *testing.T) {
	for _, raw := range []string{"0", "12.5", "1999.99", "0.01"} {
		t.Run(raw, func(t *testing.T) {
			original := decimal.RequireFromString(raw)

			dec, err := toDecimal128(original)
			require.NoError(t, err)
			assert.True(t, original.Equal(fromDecimal128(dec)))
		})
	}
}

func TestProductDocumentRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	product := &entity.Product{
		ID:                 uuid.New(),
		ShopID:             uuid.New(),
		Name:               "Notebook",
		Description:        "A5 dotted",
		Price:              decimal.RequireFromString("4.75"),
		Stock:              9,
		ImageRefs:          []string{"a.png", "b.png"},
		FeaturedImageIndex: 1,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
	}

	doc, err := toProductDocument(product)
	require.NoError(t, err)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var decoded productDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	got := decoded.toEntity()
	assert.Equal(t, product.ID, got.ID)
	assert.Equal(t, product.ShopID, got.ShopID)
	assert.True(t, product.Price.Equal(got.Price))
	assert.Equal(t, product.ImageRefs, got.ImageRefs)
	assert.Equal(t, 1, got.FeaturedImageIndex)
	assert.True(t, createdAt.Equal(got.CreatedAt))
}

func TestCartDocumentKeepsItemOrder(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	shop := &entity.Shop{ID: uuid.New(), Name: "Book Nook", LogoRef: "logo.png"}
	pen := &entity.Product{ID: uuid.New(), ShopID: shop.ID, Name: "Pen", Price: decimal.RequireFromString("1.20"), Stock: 5}
	ink := &entity.Product{ID: uuid.New(), ShopID: shop.ID, Name: "Ink", Price: decimal.RequireFromString("3"), Stock: 2}

	cart := entity.NewCart(uuid.New(), now)
	_, err := cart.AddItem(pen, shop, 2, now)
	require.NoError(t, err)
	_, err = cart.AddItem(ink, shop, 1, now)
	require.NoError(t, err)

	doc, err := toCartDocument(cart)
	require.NoError(t, err)

	got := doc.toEntity()
	require.Len(t, got.Items, 2)
	assert.Equal(t, pen.ID, got.Items[0].ProductID)
	assert.Equal(t, ink.ID, got.Items[1].ProductID)
	assert.Equal(t, "Book Nook", got.Items[0].Snapshot.ShopName)
	assert.True(t, pen.Price.Equal(got.Items[0].Snapshot.ProductPrice))
	assert.NotNil(t, got.Items[1].Snapshot.ProductImages)
}

func TestParseIDToleratesGarbage(t *testing.T) {
	assert.Equal(t, uuid.Nil, parseID("not-a-uuid"))

	id := uuid.New()
	assert.Equal(t, id, parseID(id.String()))
}

func TestBSONKeysKeepOrder(t *testing.T) {
	keys := bsonKeys("seller_status", 1, "created_at", -1)
	require.Len(t, keys, 2)
	assert.Equal(t, "seller_status", keys[0].Key)
	assert.Equal(t, -1, keys[1].Value)
}
