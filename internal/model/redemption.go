package model

import (
	"context"
	"fmt"
	"time"
)

// RedemptionRepository runs fn inside a single storage transaction. The
// transaction commits only when fn returns nil; any error rolls back every
// write made through tx.
type RedemptionRepository interface {
	WithinTx(
		ctx context.Context,
		fn func(ctx context.Context, tx RedemptionTx) error,
	) error
}

// RedemptionTx is the set of statements available to a redemption unit of
// work.
type RedemptionTx interface {
	GetItem(ctx context.Context, itemID int) (*RedeemableItem, error)
	// GetBalanceForUpdate locks the user's balance row until the
	// transaction ends.
	GetBalanceForUpdate(ctx context.Context, userID int) (*Balance, error)
	DebitBalance(
		ctx context.Context,
		balanceID int,
		points int,
		at time.Time,
	) (int, error)
	AddRedemption(ctx context.Context, r *Redemption) error
	AddPointHistory(ctx context.Context, e *PointHistoryEntry) error
}

type Redemption struct {
	ID          int
	UserID      int
	ItemID      int
	Date        time.Time
	PointsSpent int
}

type RedemptionKind int

const (
	// KindFixed debits the item's listed price.
	KindFixed RedemptionKind = iota
	// KindFlexible debits a caller supplied amount.
	KindFlexible
)

func (k RedemptionKind) String() string {
	if k == KindFlexible {
		return "flexible"
	}
	return "fixed"
}

type RedeemRequest struct {
	UserID int
	ItemID int
	Kind   RedemptionKind
	// Points is only read for KindFlexible.
	Points int
}

func (r RedeemRequest) DebitAmount(item *RedeemableItem) int {
	if r.Kind == KindFlexible {
		return r.Points
	}
	return item.PointsRequired
}

func RedemptionDescription(itemName string) string {
	return fmt.Sprintf("%s redeemed", itemName)
}

func RedemptionRemarks(itemName string) string {
	return fmt.Sprintf("Item redemption: %s", itemName)
}
