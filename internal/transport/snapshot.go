package transport

import (
	"fmt"

	"item-showcase/internal/domain"
	"item-showcase/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Snapshot identifies one of the independent versions of the API.
type Snapshot int

const (
	SnapshotOne Snapshot = iota + 1
	SnapshotTwo
	SnapshotThree
)

// Snapshots lists every snapshot in order.
func Snapshots() []Snapshot {
	return []Snapshot{SnapshotOne, SnapshotTwo, SnapshotThree}
}

// ParseSnapshot maps a configured snapshot number to a Snapshot.
func ParseSnapshot(n int) (Snapshot, error) {
	s := Snapshot(n)
	if s < SnapshotOne || s > SnapshotThree {
		return 0, fmt.Errorf("unknown snapshot %d: want 1, 2 or 3", n)
	}
	return s, nil
}

// Prefix is the path every snapshot is additionally mounted under, e.g. "/v2".
func (s Snapshot) Prefix() string {
	return fmt.Sprintf("/v%d", int(s))
}

// RegisterSnapshot registers the routes a snapshot exposes on r.
func RegisterSnapshot(r chi.Router, snapshot Snapshot, userService service.UserService, logger *zap.Logger) {
	NewHandler(logger).RegisterRoutes(r)

	switch snapshot {
	case SnapshotOne:
		NewItemHandler(logger, func() domain.Item { return domain.Item{} }, ItemRules{}).RegisterRoutes(r)
	case SnapshotTwo:
		NewItemHandler(logger, domain.NewDescribedItem, ItemRules{BoundedID: true, ResponseModel: true}).RegisterRoutes(r)
		NewUserHandler(userService, logger).RegisterRoutes(r)
	case SnapshotThree:
		NewItemHandler(logger, domain.NewNestedItem, ItemRules{BoundedID: true, ResponseModel: true}).RegisterRoutes(r)
		NewCollectionHandler(logger).RegisterRoutes(r)
	}
}
