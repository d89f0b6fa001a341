package repositories

import "github.com/vsinha/dockplan/pkg/domain/entities"

// DockSlotRepository provides access to dock capacity rows
type DockSlotRepository interface {
	GetDockRows() ([]*entities.DockRow, error)
	LoadDockRows(rows []*entities.DockRow) error
}
