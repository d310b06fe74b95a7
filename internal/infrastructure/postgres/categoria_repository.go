package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lorebel/inventario-api/internal/domain"
	"github.com/lorebel/inventario-api/internal/domain/entity"
	"github.com/lorebel/inventario-api/internal/domain/repository"
	"github.com/lorebel/inventario-api/internal/listado"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// categoriaCampos columnas seleccionadas, con el usuario creador poblado
// (username, email) vía JOIN.
const categoriaCampos = `
	c.id, c.nombre, c.descripcion, c.icono, c.activo, c.created_by, c.created_at, c.updated_at,
	u.username, u.email`

const categoriaFrom = ` FROM categorias c JOIN users u ON u.id = c.created_by`

// Create persiste una categoría nueva. El índice único de nombre respalda
// la verificación previa del caso de uso.
func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, nombre, descripcion, icono, activo, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.Nombre, categoria.Descripcion, categoria.Icono,
		categoria.Activo, categoria.CreatedByID, categoria.CreatedAt, categoria.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNombreDuplicado
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID, con el creador poblado.
// Devuelve (nil, nil) si no existe o el ID está malformado.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	if !esUUID(id) {
		return nil, nil
	}
	query := `SELECT` + categoriaCampos + categoriaFrom + ` WHERE c.id = $1`
	return r.scanUna(r.q.QueryRow(context.Background(), query, id))
}

// GetByNombre obtiene una categoría por nombre exacto (chequeo de unicidad).
func (r *CategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	query := `SELECT` + categoriaCampos + categoriaFrom + ` WHERE c.nombre = $1`
	return r.scanUna(r.q.QueryRow(context.Background(), query, nombre))
}

// Update actualiza una categoría existente.
func (r *CategoriaRepo) Update(categoria *entity.Categoria) error {
	query := `
		UPDATE categorias SET nombre = $2, descripcion = $3, icono = $4, activo = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.Nombre, categoria.Descripcion, categoria.Icono,
		categoria.Activo, categoria.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNombreDuplicado
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una categoría por ID. La guardia referencial (productos
// asociados) corre en el caso de uso antes de llamar aquí.
func (r *CategoriaRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve la ventana de categorías que coinciden con el filtro y el
// total sin paginar.
func (r *CategoriaRepo) List(filtro repository.CategoriaFiltro) ([]*entity.Categoria, int64, error) {
	f := categoriaFiltroSQL(filtro)
	ctx := context.Background()

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+categoriaFrom+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categorias: %w", err)
	}

	orden := listado.Orden(filtro.Orden, categoriaColumnas, categoriaOrdenDefault)
	query := `SELECT` + categoriaCampos + categoriaFrom + f.where() +
		` ORDER BY ` + orden +
		` LIMIT ` + f.arg(filtro.Limit) + ` OFFSET ` + f.arg(filtro.Offset)

	rows, err := r.q.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var categorias []*entity.Categoria
	for rows.Next() {
		c, err := r.scanUna(rows)
		if err != nil {
			return nil, 0, err
		}
		categorias = append(categorias, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list categorias: %w", err)
	}
	return categorias, total, nil
}

func (r *CategoriaRepo) scanUna(row pgx.Row) (*entity.Categoria, error) {
	var c entity.Categoria
	var u entity.User
	err := row.Scan(
		&c.ID, &c.Nombre, &c.Descripcion, &c.Icono, &c.Activo, &c.CreatedByID, &c.CreatedAt, &c.UpdatedAt,
		&u.Username, &u.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan categoria: %w", err)
	}
	u.ID = c.CreatedByID
	c.CreatedBy = &u
	return &c, nil
}
