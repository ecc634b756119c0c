package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

// ClothingRepository is the persistence interface for ClothingItem.
// Every method is scoped to one owner; another owner's id behaves as absent.
type ClothingRepository interface {
	// Insert stores item and sets its ID.
	Insert(ctx context.Context, item *models.ClothingItem) error

	// List returns the owner's items matching filter.Category, Color and
	// Material, newest id first. Season and Occasion are not applied here.
	List(ctx context.Context, ownerID uuid.UUID, filter models.Filter) ([]*models.ClothingItem, error)

	GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*models.ClothingItem, error)

	// GetMany returns the items among ids that exist, in ascending id order.
	GetMany(ctx context.Context, ownerID uuid.UUID, ids []int64) ([]*models.ClothingItem, error)

	// Update replaces every editable field. Returns ErrClothingNotFound when absent.
	Update(ctx context.Context, item *models.ClothingItem) error

	// Delete removes the item. Returns ErrClothingNotFound when absent.
	Delete(ctx context.Context, ownerID uuid.UUID, id int64) error
}
