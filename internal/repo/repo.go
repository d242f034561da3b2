package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID           int    `json:"id"`
	Login        string `json:"login"`
	Email        string `json:"email"`
	PressureUnit string `json:"pressure_unit"`
}

type Calculation struct {
	ID        int             `json:"id"`
	Tool      string          `json:"tool"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, email, pressureUnit string) error
	SaveCalculation(ctx context.Context, userID int, tool string, input, result json.RawMessage) (int, error)
	ListCalculations(ctx context.Context, userID int, limit int) ([]Calculation, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(pressure_unit, 'kPa') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.PressureUnit)
	return p, err
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, email, pressureUnit string) error {
	query := "UPDATE users SET email=$2, pressure_unit=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, email, pressureUnit)
	return err
}

func (r *PostgresUserRepository) SaveCalculation(ctx context.Context, userID int, tool string, input, result json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO calculations (user_id, tool, input, result, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, tool, input, result).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListCalculations(ctx context.Context, userID int, limit int) ([]Calculation, error) {
	if limit <= 0 {
		limit = 50
	}
	query := "SELECT id, tool, input, result, created_at FROM calculations WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2"
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Calculation
	for rows.Next() {
		var c Calculation
		if err := rows.Scan(&c.ID, &c.Tool, &c.Input, &c.Result, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
