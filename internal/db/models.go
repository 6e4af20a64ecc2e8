package db

import (
	"database/sql"
	"time"
)

// Product is a row of the products table. List columns hold JSON arrays.
type Product struct {
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

// Content is a row of the contents table.
type Content struct {
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

// StatusCount is one row of CountContentsByStatus.
type StatusCount struct {
	Status string
	Count  int64
}
