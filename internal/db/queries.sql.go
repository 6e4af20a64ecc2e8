package db

import (
	"context"
	"database/sql"
	"time"
)

const createProduct = `
INSERT INTO products (id, name, url, description, value_props, target_audience, keywords, default_tone, competitors, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateProductParams struct {
	ID             string
	Name           string
	Url            sql.NullString
	Description    string
	ValueProps     string
	TargetAudience sql.NullString
	Keywords       string
	DefaultTone    sql.NullString
	Competitors    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) error {
	_, err := q.db.ExecContext(ctx, createProduct,
		arg.ID,
		arg.Name,
		arg.Url,
		arg.Description,
		arg.ValueProps,
		arg.TargetAudience,
		arg.Keywords,
		arg.DefaultTone,
		arg.Competitors,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const productColumns = `id, name, url, description, value_props, target_audience, keywords, default_tone, competitors, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (Product, error) {
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Url,
		&i.Description,
		&i.ValueProps,
		&i.TargetAudience,
		&i.Keywords,
		&i.DefaultTone,
		&i.Competitors,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getProduct = `SELECT ` + productColumns + ` FROM products WHERE id = ?`

func (q *Queries) GetProduct(ctx context.Context, id string) (Product, error) {
	return scanProduct(q.db.QueryRowContext(ctx, getProduct, id))
}

const getProductByName = `SELECT ` + productColumns + ` FROM products WHERE name = ? COLLATE NOCASE`

func (q *Queries) GetProductByName(ctx context.Context, name string) (Product, error) {
	return scanProduct(q.db.QueryRowContext(ctx, getProductByName, name))
}

const listProducts = `SELECT ` + productColumns + ` FROM products ORDER BY name`

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.QueryContext(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Product
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countProducts = `SELECT COUNT(*) FROM products`

func (q *Queries) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countProducts).Scan(&count)
	return count, err
}

const createContent = `
INSERT INTO contents (id, product_id, title, body, platform, hashtags, tone, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateContentParams struct {
	ID        string
	ProductID sql.NullString
	Title     string
	Body      string
	Platform  string
	Hashtags  string
	Tone      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) CreateContent(ctx context.Context, arg CreateContentParams) error {
	_, err := q.db.ExecContext(ctx, createContent,
		arg.ID,
		arg.ProductID,
		arg.Title,
		arg.Body,
		arg.Platform,
		arg.Hashtags,
		arg.Tone,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const contentColumns = `id, product_id, title, body, platform, hashtags, tone, status, created_at, updated_at`

func scanContent(row interface{ Scan(...any) error }) (Content, error) {
	var i Content
	err := row.Scan(
		&i.ID,
		&i.ProductID,
		&i.Title,
		&i.Body,
		&i.Platform,
		&i.Hashtags,
		&i.Tone,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getContent = `SELECT ` + contentColumns + ` FROM contents WHERE id = ?`

func (q *Queries) GetContent(ctx context.Context, id string) (Content, error) {
	return scanContent(q.db.QueryRowContext(ctx, getContent, id))
}

const listContents = `SELECT ` + contentColumns + ` FROM contents
WHERE (? = '' OR status = ?)
  AND (? = '' OR product_id = ?)
  AND (? = '' OR platform = ?)
ORDER BY created_at DESC, id
LIMIT ?`

type ListContentsParams struct {
	Status    string
	ProductID string
	Platform  string
	Limit     int64
}

func (q *Queries) ListContents(ctx context.Context, arg ListContentsParams) ([]Content, error) {
	rows, err := q.db.QueryContext(ctx, listContents,
		arg.Status, arg.Status,
		arg.ProductID, arg.ProductID,
		arg.Platform, arg.Platform,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Content
	for rows.Next() {
		i, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateContentStatus = `
UPDATE contents SET status = ?, updated_at = ?
WHERE id = ? AND status = ?
`

type UpdateContentStatusParams struct {
	Status     string
	UpdatedAt  time.Time
	ID         string
	FromStatus string
}

// UpdateContentStatus only applies when the row is still in FromStatus.
// It returns the number of rows changed.
func (q *Queries) UpdateContentStatus(ctx context.Context, arg UpdateContentStatusParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateContentStatus,
		arg.Status,
		arg.UpdatedAt,
		arg.ID,
		arg.FromStatus,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const countContents = `SELECT COUNT(*) FROM contents`

func (q *Queries) CountContents(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countContents).Scan(&count)
	return count, err
}

const countContentsByStatus = `SELECT status, COUNT(*) AS count FROM contents GROUP BY status ORDER BY status`

func (q *Queries) CountContentsByStatus(ctx context.Context) ([]StatusCount, error) {
	rows, err := q.db.QueryContext(ctx, countContentsByStatus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []StatusCount
	for rows.Next() {
		var i StatusCount
		if err := rows.Scan(&i.Status, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
