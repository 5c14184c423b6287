package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigflare/internal/models"
	"gigflare/internal/query"
)

type GigRepository struct {
	DB *sql.DB
}

var gigColumns = columnMap{
	query.FieldTitle:       "g.title",
	query.FieldDescription: "g.description",
	query.FieldTags:        "g.tags",
	query.FieldCategory:    "g.category",
	query.FieldSellerID:    "g.seller_id",
	query.FieldPrice:       "g.price",
	query.FieldGigActive:   "g.is_active",
	query.FieldOwnerBanned: "u.banned",
	query.FieldCreatedAt:   "g.created_at",
}

var gigOrders = map[query.OrderKey]string{
	query.OrderNewest:     "g.created_at DESC",
	query.OrderPriceAsc:   "g.price ASC",
	query.OrderPriceDesc:  "g.price DESC",
	query.OrderRatingDesc: "g.rating_avg DESC",
}

const gigSelect = `
        SELECT g.id, g.seller_id, g.title, g.slug, g.description, g.price, g.currency,
               g.delivery_days, g.revisions, g.images, g.thumbnail_url, g.tags, g.category,
               g.is_active, g.rating_avg, g.rating_count, g.created_at,
               u.id, u.username, u.avatar_url
          FROM gigs g
          JOIN users u ON u.id = g.seller_id
    `

func (r *GigRepository) ListGigs(ctx context.Context, pred query.Predicate, order query.OrderKey, limit, offset int) ([]models.Gig, error) {
	var args []interface{}
	where, err := renderPredicate(pred, gigColumns, &args)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("%s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		gigSelect, where, renderOrder(order, gigOrders, "g.created_at DESC"), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gigs := []models.Gig{}
	for rows.Next() {
		g, err := scanGig(rows)
		if err != nil {
			return nil, err
		}
		gigs = append(gigs, g)
	}
	return gigs, rows.Err()
}

func (r *GigRepository) CountGigs(ctx context.Context, pred query.Predicate) (int, error) {
	var args []interface{}
	where, err := renderPredicate(pred, gigColumns, &args)
	if err != nil {
		return 0, err
	}

	q := fmt.Sprintf("SELECT COUNT(*) FROM gigs g JOIN users u ON u.id = g.seller_id WHERE %s", where)

	var total int
	if err := r.DB.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GigRepository) CreateGig(ctx context.Context, gig models.Gig) (models.Gig, error) {
	imagesJSON, err := jsonStrings(gig.Images)
	if err != nil {
		return models.Gig{}, err
	}
	tagsJSON, err := jsonStrings(gig.Tags)
	if err != nil {
		return models.Gig{}, err
	}

	q := `
        INSERT INTO gigs (id, seller_id, title, slug, description, price, currency,
                          delivery_days, revisions, images, thumbnail_url, tags, category,
                          is_active, rating_avg, rating_count, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
    `
	_, err = r.DB.ExecContext(ctx, q,
		gig.ID,
		gig.SellerID,
		gig.Title,
		gig.Slug,
		gig.Description,
		gig.Price,
		gig.Currency,
		gig.DeliveryDays,
		gig.Revisions,
		imagesJSON,
		gig.ThumbnailURL,
		tagsJSON,
		gig.Category,
		gig.IsActive,
		gig.RatingAvg,
		gig.RatingCount,
		gig.CreatedAt,
	)
	if err != nil {
		if uniqueViolation(err, "gigs_slug_key") {
			return models.Gig{}, models.ErrSlugTaken
		}
		return models.Gig{}, err
	}
	return gig, nil
}

// SlugExists is the allocator's collision probe. It is intentionally not
// atomic with the insert; a losing race surfaces as ErrSlugTaken from
// CreateGig instead.
func (r *GigRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM gigs WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// CountActiveBySeller backs the unverified-seller quota check.
func (r *GigRepository) CountActiveBySeller(ctx context.Context, sellerID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM gigs WHERE seller_id = $1 AND is_active", sellerID).Scan(&count)
	return count, err
}

func (r *GigRepository) GetGigBySlug(ctx context.Context, slug string) (models.Gig, error) {
	row := r.DB.QueryRowContext(ctx, gigSelect+" WHERE g.slug = $1", slug)
	g, err := scanGig(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Gig{}, models.ErrGigNotFound
	}
	if err != nil {
		return models.Gig{}, err
	}
	return g, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGig(row rowScanner) (models.Gig, error) {
	var g models.Gig
	var imagesJSON, tagsJSON []byte

	err := row.Scan(
		&g.ID, &g.SellerID, &g.Title, &g.Slug, &g.Description, &g.Price, &g.Currency,
		&g.DeliveryDays, &g.Revisions, &imagesJSON, &g.ThumbnailURL, &tagsJSON, &g.Category,
		&g.IsActive, &g.RatingAvg, &g.RatingCount, &g.CreatedAt,
		&g.Seller.ID, &g.Seller.Username, &g.Seller.AvatarURL,
	)
	if err != nil {
		return models.Gig{}, err
	}

	if g.Images, err = scanJSONStrings(imagesJSON); err != nil {
		return models.Gig{}, err
	}
	if g.Tags, err = scanJSONStrings(tagsJSON); err != nil {
		return models.Gig{}, err
	}
	return g, nil
}
