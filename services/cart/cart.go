// Package cart implements the persisted shopping cart. The cart is the
// only externally persisted state in the system: it round-trips as a JSON
// blob in redis under a fixed key prefix, one cart per client session,
// last writer wins.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"maison/models"
	"maison/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartService defines the cart operations.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*models.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// DefaultCartService implements CartService over redis.
type DefaultCartService struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewCartService constructs the cart service.
func NewCartService(client *redis.Client, ttl time.Duration) *DefaultCartService {
	return &DefaultCartService{Client: client, TTL: ttl}
}

// Get rehydrates the cart. A missing key or a stored value that does not
// decode as a cart yields a fresh empty cart rather than an error.
func (s *DefaultCartService) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := s.Client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return emptyCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		utils.GetLogger().Warn("discarding malformed stored cart",
			zap.String("sessionID", sessionID), zap.Error(err))
		return emptyCart(), nil
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	c.Recalculate()
	return &c, nil
}

// AddItem appends a line item, merging with an existing line when the
// product and its chosen options match. A missing quantity defaults to 1.
func (s *DefaultCartService) AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	merged := false
	for i := range c.Items {
		if sameLine(c.Items[i], item) {
			c.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		c.Items = append(c.Items, item)
	}

	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *DefaultCartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ID == itemID {
			found = true
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
		}
		items = append(items, item)
	}
	if !found {
		return nil, fmt.Errorf("cart item %s not found", itemID)
	}
	c.Items = items

	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem drops a line from the cart.
func (s *DefaultCartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*models.Cart, error) {
	return s.UpdateQuantity(ctx, sessionID, itemID, 0)
}

// Clear deletes the stored cart entirely.
func (s *DefaultCartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *DefaultCartService) save(ctx context.Context, sessionID string, c *models.Cart) error {
	c.Recalculate()
	c.UpdatedAt = time.Now()

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.Client.Set(ctx, cartKey(sessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}
	return nil
}

func sameLine(a, b models.CartItem) bool {
	return a.ProductID == b.ProductID &&
		a.Size == b.Size &&
		a.Material == b.Material &&
		a.Customization == b.Customization
}

func cartKey(sessionID string) string {
	return utils.CartCachePrefix + sessionID
}

func emptyCart() *models.Cart {
	return &models.Cart{Items: []models.CartItem{}}
}
