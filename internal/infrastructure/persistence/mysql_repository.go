package persistence

import (
	"context"
	"database/sql"

	"netup-agent/internal/domain/entities"
	"netup-agent/internal/domain/errors"
	"netup-agent/internal/domain/interfaces"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

// MySQLRepository is a MySQL-backed NetworkInterfaceRepository
type MySQLRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewMySQLRepository creates a new MySQLRepository
func NewMySQLRepository(db *sql.DB, logger *logrus.Logger) interfaces.NetworkInterfaceRepository {
	return &MySQLRepository{
		db:     db,
		logger: logger,
	}
}

// GetPendingInterfaces returns the node's interfaces still waiting to be
// activated
func (r *MySQLRepository) GetPendingInterfaces(ctx context.Context, nodeName string) ([]entities.NetworkInterface, error) {
	query := `
		SELECT id, iface_name, macaddress, attached_node_name, activation_state
		FROM node_interface
		WHERE activation_state = 0
		AND attached_node_name = ?
		AND deleted_at IS NULL
		ORDER BY id
		LIMIT 10
	`
	return r.queryInterfaces(ctx, query, nodeName)
}

// GetAllNodeInterfaces returns every interface attached to the node
func (r *MySQLRepository) GetAllNodeInterfaces(ctx context.Context, nodeName string) ([]entities.NetworkInterface, error) {
	query := `
		SELECT id, iface_name, macaddress, attached_node_name, activation_state
		FROM node_interface
		WHERE attached_node_name = ?
		AND deleted_at IS NULL
		ORDER BY id
	`
	return r.queryInterfaces(ctx, query, nodeName)
}

// UpdateInterfaceStatus records the activation state of an interface
func (r *MySQLRepository) UpdateInterfaceStatus(ctx context.Context, interfaceID int, status entities.InterfaceStatus) error {
	query := `UPDATE node_interface SET activation_state = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, int(status), interfaceID)
	if err != nil {
		return errors.NewSystemError("failed to update interface status", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewSystemError("failed to read affected row count", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError("interface not found")
	}

	return nil
}

func (r *MySQLRepository) queryInterfaces(ctx context.Context, query string, args ...interface{}) ([]entities.NetworkInterface, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewSystemError("database query failed", err)
	}
	defer rows.Close()

	var result []entities.NetworkInterface

	for rows.Next() {
		var iface entities.NetworkInterface
		var state int
		var mac sql.NullString

		err := rows.Scan(
			&iface.ID,
			&iface.Name,
			&mac,
			&iface.AttachedNodeName,
			&state,
		)
		if err != nil {
			r.logger.WithError(err).Error("failed to scan interface row")
			continue
		}

		if mac.Valid {
			iface.MacAddress = mac.String
		}
		iface.Status = entities.InterfaceStatus(state)
		result = append(result, iface)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.NewSystemError("failed while iterating result rows", err)
	}

	return result, nil
}
