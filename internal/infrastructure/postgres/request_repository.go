package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dronify/warehouse-api/internal/domain"
	"github.com/dronify/warehouse-api/internal/domain/entity"
	"github.com/dronify/warehouse-api/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación de RequestRepository sobre PostgreSQL (usable
// con pool o tx). Las solicitudes nunca se borran.
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

// Create inserta una solicitud y devuelve el ID generado.
func (r *RequestRepo) Create(request *entity.Request) (int64, error) {
	query := `
		INSERT INTO requests (user_id, item_id, quantity, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		request.UserID, request.ItemID, request.Quantity,
		nullable(request.Message), string(request.Status),
		request.CreatedAt, request.UpdatedAt,
	).Scan(&request.ID)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	return request.ID, nil
}

// GetByID obtiene una solicitud por ID. Devuelve nil si no existe.
func (r *RequestRepo) GetByID(id int64) (*entity.Request, error) {
	query := `
		SELECT id, user_id, item_id, quantity, message, status, admin_note, created_at, updated_at
		FROM requests WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get request")
}

// GetForUpdate obtiene la solicitud y bloquea su fila (SELECT FOR UPDATE)
// para serializar aprobadores concurrentes.
func (r *RequestRepo) GetForUpdate(id int64) (*entity.Request, error) {
	query := `
		SELECT id, user_id, item_id, quantity, message, status, admin_note, created_at, updated_at
		FROM requests WHERE id = $1
		FOR UPDATE`
	req, err := r.scanOne(r.q.QueryRow(context.Background(), query, id), "get request for update")
	if err != nil {
		if isLockTimeout(err) {
			return nil, domain.ErrContention
		}
		return nil, err
	}
	return req, nil
}

// UpdateStatus fija estado y nota de admin. La cantidad y el resto de campos
// quedan fijos desde la creación.
func (r *RequestRepo) UpdateStatus(id int64, status entity.RequestStatus, adminNote string) error {
	query := `
		UPDATE requests SET status = $1, admin_note = $2, updated_at = now()
		WHERE id = $3`
	tag, err := r.q.Exec(context.Background(), query, string(status), nullable(adminNote), id)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll listado admin con usuario e ítem resueltos por JOIN. status vacío
// lista todos los estados; más recientes primero.
func (r *RequestRepo) ListAll(status entity.RequestStatus, limit int) ([]*entity.Request, error) {
	query := `
		SELECT r.id, r.user_id, r.item_id, r.quantity, r.message, r.status, r.admin_note,
		       r.created_at, r.updated_at,
		       u.first_name || ' ' || u.last_name AS user_name,
		       u.email AS user_email,
		       i.name AS item_name, i.type AS item_type, i.scan_code AS item_scan
		FROM requests r
		JOIN users u ON u.id = r.user_id
		JOIN items i ON i.id = r.item_id`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE r.status = $%d", pos)
		args = append(args, string(status))
		pos++
	}
	query += fmt.Sprintf(" ORDER BY r.created_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()
	var out []*entity.Request
	for rows.Next() {
		var req entity.Request
		var status, userName, userEmail, itemName, itemType string
		var message, adminNote, itemScan *string
		if err := rows.Scan(&req.ID, &req.UserID, &req.ItemID, &req.Quantity,
			&message, &status, &adminNote, &req.CreatedAt, &req.UpdatedAt,
			&userName, &userEmail, &itemName, &itemType, &itemScan); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		req.Status = entity.RequestStatus(status)
		req.UserName = userName
		req.UserEmail = userEmail
		req.ItemName = itemName
		req.ItemType = entity.ItemType(itemType)
		if message != nil {
			req.Message = *message
		}
		if adminNote != nil {
			req.AdminNote = *adminNote
		}
		if itemScan != nil {
			req.ItemScan = *itemScan
		}
		out = append(out, &req)
	}
	return out, rows.Err()
}

// ListByUser solicitudes propias de un usuario con ítem resuelto, más
// recientes primero.
func (r *RequestRepo) ListByUser(userID int64, limit int) ([]*entity.Request, error) {
	query := `
		SELECT r.id, r.user_id, r.item_id, r.quantity, r.message, r.status, r.admin_note,
		       r.created_at, r.updated_at,
		       i.name AS item_name, i.type AS item_type
		FROM requests r
		JOIN items i ON i.id = r.item_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list requests by user: %w", err)
	}
	defer rows.Close()
	var out []*entity.Request
	for rows.Next() {
		var req entity.Request
		var status, itemName, itemType string
		var message, adminNote *string
		if err := rows.Scan(&req.ID, &req.UserID, &req.ItemID, &req.Quantity,
			&message, &status, &adminNote, &req.CreatedAt, &req.UpdatedAt,
			&itemName, &itemType); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		req.Status = entity.RequestStatus(status)
		req.ItemName = itemName
		req.ItemType = entity.ItemType(itemType)
		if message != nil {
			req.Message = *message
		}
		if adminNote != nil {
			req.AdminNote = *adminNote
		}
		out = append(out, &req)
	}
	return out, rows.Err()
}

// CountPending solicitudes en PENDING.
func (r *RequestRepo) CountPending() (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM requests WHERE status = 'PENDING'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending requests: %w", err)
	}
	return count, nil
}

func (r *RequestRepo) scanOne(row pgx.Row, op string) (*entity.Request, error) {
	var req entity.Request
	var status string
	var message, adminNote *string
	err := row.Scan(&req.ID, &req.UserID, &req.ItemID, &req.Quantity,
		&message, &status, &adminNote, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isLockTimeout(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Status = entity.RequestStatus(status)
	if message != nil {
		req.Message = *message
	}
	if adminNote != nil {
		req.AdminNote = *adminNote
	}
	return &req, nil
}
