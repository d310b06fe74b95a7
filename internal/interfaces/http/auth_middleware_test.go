package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorebel/inventario-api/internal/domain/entity"
	apphttp "github.com/lorebel/inventario-api/internal/interfaces/http"
	pkgjwt "github.com/lorebel/inventario-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "lorebel-test"
)

// fakeUserRepo repositorio en memoria para resolver el usuario del token.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

// buildTestApp construye una app Fiber mínima con el middleware de auth y un
// handler que devuelve el usuario resuelto del contexto.
func buildTestApp(repo *fakeUserRepo) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		func(c *fiber.Ctx) error {
			user := apphttp.GetUser(c)
			return c.JSON(fiber.Map{
				"id":       user.ID,
				"username": user.Username,
				"hash":     user.PasswordHash,
			})
		})
	return app
}

func repoConUsuario() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{
		testUserID: {
			ID:           testUserID,
			Username:     "lorebel",
			Email:        "lorebel@example.com",
			PasswordHash: "$2a$10$hash-que-no-debe-viajar",
		},
	}}
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func tokenValido(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, 30)
	require.NoError(t, err, "debe generarse un token válido")
	return "Bearer " + tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido de un usuario existente → pasa y el usuario queda en
// el contexto, sin hash de password.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp(repoConUsuario())
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["id"])
	assert.Equal(t, "lorebel", body["username"])
	assert.Empty(t, body["hash"], "el hash no debe viajar aguas abajo del middleware")
}

// Caso 2: sin header Authorization → 401 con mensaje de token ausente.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(repoConUsuario())
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No autorizado, no hay token")
}

// Caso 2b: header presente pero sin esquema Bearer → mismo 401.
func TestAuthMiddleware_FormatoIncorrecto(t *testing.T) {
	app := buildTestApp(repoConUsuario())
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: token malformado → 401 "Token no válido".
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(repoConUsuario())
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Token no válido")
}

// Caso 3b: firma con otro secreto → también "Token no válido".
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp(repoConUsuario())
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, testIssuer, 30)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Token no válido")
}

// Caso 4: token vencido → 401 "Token expirado" (mensaje distinto del inválido).
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	now := time.Now()
	claims := pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testUserID,
			IssuedAt:  gojwt.NewNumericDate(now.Add(-48 * time.Hour)),
			ExpiresAt: gojwt.NewNumericDate(now.Add(-time.Hour)),
		},
		UserID: testUserID,
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	app := buildTestApp(repoConUsuario())
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Token expirado")
}

// Caso 5: token válido pero el usuario ya no existe → 401 "Usuario no encontrado".
func TestAuthMiddleware_UsuarioInexistente(t *testing.T) {
	app := buildTestApp(&fakeUserRepo{users: map[string]*entity.User{}})
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Usuario no encontrado")
}
