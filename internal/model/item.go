package model

import (
	"context"
	"errors"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

type ItemsRepository interface {
	ListItems(ctx context.Context) ([]RedeemableItem, error)
}

type RedeemableItem struct {
	ID             int
	Name           string
	PointsRequired int
}
