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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// productoCampos columnas seleccionadas, con la categoría (nombre, icono) y
// el usuario creador (username, email) poblados vía JOIN.
const productoCampos = `
	p.id, p.nombre, p.descripcion, p.precio, p.stock, p.categoria_id, p.imagen, p.activo,
	p.created_by, p.created_at, p.updated_at,
	c.nombre, c.icono, u.username, u.email`

const productoFrom = `
	FROM productos p
	JOIN categorias c ON c.id = p.categoria_id
	JOIN users u ON u.id = p.created_by`

// Create persiste un producto nuevo.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, descripcion, precio, stock, categoria_id, imagen, activo, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Precio, producto.Stock,
		producto.CategoriaID, producto.Imagen, producto.Activo, producto.CreatedByID,
		producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, con categoría y creador poblados.
// Devuelve (nil, nil) si no existe o el ID está malformado.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	if !esUUID(id) {
		return nil, nil
	}
	query := `SELECT` + productoCampos + productoFrom + ` WHERE p.id = $1`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza un producto existente (los campos ya vienen fusionados
// por el caso de uso: solo los enviados por el cliente cambiaron).
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, precio = $4, stock = $5,
			categoria_id = $6, imagen = $7, activo = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Precio, producto.Stock,
		producto.CategoriaID, producto.Imagen, producto.Activo, producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID (sin condiciones: nada referencia productos).
func (r *ProductoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve la ventana de productos que coinciden con el filtro y el
// total sin paginar. El conteo corre sobre el mismo WHERE que la ventana.
func (r *ProductoRepo) List(filtro repository.ProductoFiltro) ([]*entity.Producto, int64, error) {
	f := productoFiltroSQL(filtro)
	ctx := context.Background()

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+productoFrom+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	orden := listado.Orden(filtro.Orden, productoColumnas, productoOrdenDefault)
	query := `SELECT` + productoCampos + productoFrom + f.where() +
		` ORDER BY ` + orden +
		` LIMIT ` + f.arg(filtro.Limit) + ` OFFSET ` + f.arg(filtro.Offset)

	rows, err := r.q.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var productos []*entity.Producto
	for rows.Next() {
		p, err := r.scanUno(rows)
		if err != nil {
			return nil, 0, err
		}
		productos = append(productos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	return productos, total, nil
}

// CountByCategoria cuenta los productos que referencian una categoría.
func (r *ProductoRepo) CountByCategoria(categoriaID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE categoria_id = $1`, categoriaID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count productos por categoria: %w", err)
	}
	return total, nil
}

func (r *ProductoRepo) scanUno(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	var c entity.Categoria
	var u entity.User
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.CategoriaID, &p.Imagen, &p.Activo,
		&p.CreatedByID, &p.CreatedAt, &p.UpdatedAt,
		&c.Nombre, &c.Icono, &u.Username, &u.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	c.ID = p.CategoriaID
	u.ID = p.CreatedByID
	p.Categoria = &c
	p.CreatedBy = &u
	return &p, nil
}
