package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigflare/internal/models"
	"gigflare/internal/query"
)

type RequestRepository struct {
	DB *sql.DB
}

var requestColumns = columnMap{
	query.FieldTitle:       "r.title",
	query.FieldDescription: "r.description",
	query.FieldTags:        "r.tags",
	query.FieldCategory:    "r.category",
	query.FieldClientID:    "r.client_id",
	query.FieldBudgetMin:   "r.budget_min",
	query.FieldBudgetMax:   "r.budget_max",
	query.FieldDeadline:    "r.deadline",
	query.FieldStatus:      "r.status",
	query.FieldCreatedAt:   "r.created_at",
}

var requestOrders = map[query.OrderKey]string{
	query.OrderNewest:     "r.created_at DESC",
	query.OrderBudgetAsc:  "r.budget_max ASC",
	query.OrderBudgetDesc: "r.budget_max DESC",
}

const requestSelect = `
        SELECT r.id, r.client_id, r.title, r.description, r.budget_min, r.budget_max,
               r.currency, r.deadline, r.tags, r.category, r.attachments, r.status, r.created_at,
               u.id, u.username, u.avatar_url
          FROM requests r
          JOIN users u ON u.id = r.client_id
    `

func (r *RequestRepository) ListRequests(ctx context.Context, pred query.Predicate, order query.OrderKey, limit, offset int) ([]models.WorkRequest, error) {
	var args []interface{}
	where, err := renderPredicate(pred, requestColumns, &args)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("%s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		requestSelect, where, renderOrder(order, requestOrders, "r.created_at DESC"), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []models.WorkRequest{}
	for rows.Next() {
		wr, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, wr)
	}
	return reqs, rows.Err()
}

func (r *RequestRepository) CountRequests(ctx context.Context, pred query.Predicate) (int, error) {
	var args []interface{}
	where, err := renderPredicate(pred, requestColumns, &args)
	if err != nil {
		return 0, err
	}

	q := fmt.Sprintf("SELECT COUNT(*) FROM requests r JOIN users u ON u.id = r.client_id WHERE %s", where)

	var total int
	if err := r.DB.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req models.WorkRequest) (models.WorkRequest, error) {
	tagsJSON, err := jsonStrings(req.Tags)
	if err != nil {
		return models.WorkRequest{}, err
	}
	attachmentsJSON, err := jsonStrings(req.Attachments)
	if err != nil {
		return models.WorkRequest{}, err
	}

	q := `
        INSERT INTO requests (id, client_id, title, description, budget_min, budget_max,
                              currency, deadline, tags, category, attachments, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	_, err = r.DB.ExecContext(ctx, q,
		req.ID,
		req.ClientID,
		req.Title,
		req.Description,
		req.BudgetMin,
		req.BudgetMax,
		req.Currency,
		req.Deadline,
		tagsJSON,
		req.Category,
		attachmentsJSON,
		req.Status,
		req.CreatedAt,
	)
	if err != nil {
		return models.WorkRequest{}, err
	}
	return req, nil
}

func (r *RequestRepository) GetRequestByID(ctx context.Context, id string) (models.WorkRequest, error) {
	row := r.DB.QueryRowContext(ctx, requestSelect+" WHERE r.id = $1", id)
	wr, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WorkRequest{}, models.ErrRequestNotFound
	}
	if err != nil {
		return models.WorkRequest{}, err
	}
	return wr, nil
}

// CountOpenByClient backs the unverified-client quota check.
func (r *RequestRepository) CountOpenByClient(ctx context.Context, clientID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM requests WHERE client_id = $1 AND status = $2",
		clientID, models.RequestStatusOpen).Scan(&count)
	return count, err
}

func scanRequest(row rowScanner) (models.WorkRequest, error) {
	var wr models.WorkRequest
	var tagsJSON, attachmentsJSON []byte

	err := row.Scan(
		&wr.ID, &wr.ClientID, &wr.Title, &wr.Description, &wr.BudgetMin, &wr.BudgetMax,
		&wr.Currency, &wr.Deadline, &tagsJSON, &wr.Category, &attachmentsJSON, &wr.Status, &wr.CreatedAt,
		&wr.Client.ID, &wr.Client.Username, &wr.Client.AvatarURL,
	)
	if err != nil {
		return models.WorkRequest{}, err
	}

	if wr.Tags, err = scanJSONStrings(tagsJSON); err != nil {
		return models.WorkRequest{}, err
	}
	if wr.Attachments, err = scanJSONStrings(attachmentsJSON); err != nil {
		return models.WorkRequest{}, err
	}
	return wr, nil
}
