package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"vrs/src/db"
	"vrs/src/models"
	"vrs/src/types"
	"vrs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)
	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening the test database", err)
	}
	sqlDB, err := d.DB()
	if err != nil {
		t.Fatalf("Error accessing inner db instance: %s", err.Error())
	}
	sqlDB.SetMaxOpenConns(1)
	if err := d.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("error migration: %s", err.Error())
	}
	db.NewDB(d)
	return d
}

func authRouter() *gin.Engine {
	router := gin.New()
	router.GET("/me", AuthMiddleware, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"id":    ctx.GetUint("id"),
			"email": ctx.GetString("email"),
			"role":  ctx.GetString("role"),
		})
	})
	router.GET("/admin", AuthMiddleware, AdminOnly, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"data": "ok"})
	})
	router.GET("/users/:id", AuthMiddleware, OwnerOrAdmin, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"data": "ok"})
	})
	return router
}

func perform(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	setupAuthTest(t)
	router := authRouter()

	w := perform(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(router, "/me", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareUnknownUser(t *testing.T) {
	setupAuthTest(t)
	router := authRouter()

	token, err := utils.GenerateJWT("ghost@example.com", 42, types.ROLE_CUSTOMER)
	assert.NoError(t, err)

	w := perform(router, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	d := setupAuthTest(t)
	router := authRouter()

	user := models.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: types.ROLE_CUSTOMER}
	assert.NoError(t, d.Create(&user).Error)

	token, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	assert.NoError(t, err)

	w := perform(router, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
	assert.Contains(t, w.Body.String(), "customer")
}

func TestAdminOnly(t *testing.T) {
	d := setupAuthTest(t)
	router := authRouter()

	customer := models.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: types.ROLE_CUSTOMER}
	assert.NoError(t, d.Create(&customer).Error)
	admin := models.User{Name: "Root", Email: "root@example.com", Password: "x", Role: types.ROLE_ADMIN}
	assert.NoError(t, d.Create(&admin).Error)

	customerToken, _ := utils.GenerateJWT(customer.Email, customer.ID, customer.Role)
	adminToken, _ := utils.GenerateJWT(admin.Email, admin.ID, admin.Role)

	w := perform(router, "/admin", customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = perform(router, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOwnerOrAdmin(t *testing.T) {
	d := setupAuthTest(t)
	router := authRouter()

	alice := models.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: types.ROLE_CUSTOMER}
	assert.NoError(t, d.Create(&alice).Error)
	bob := models.User{Name: "Bob", Email: "bob@example.com", Password: "x", Role: types.ROLE_CUSTOMER}
	assert.NoError(t, d.Create(&bob).Error)
	admin := models.User{Name: "Root", Email: "root@example.com", Password: "x", Role: types.ROLE_ADMIN}
	assert.NoError(t, d.Create(&admin).Error)

	aliceToken, _ := utils.GenerateJWT(alice.Email, alice.ID, alice.Role)
	bobToken, _ := utils.GenerateJWT(bob.Email, bob.ID, bob.Role)
	adminToken, _ := utils.GenerateJWT(admin.Email, admin.ID, admin.Role)

	path := "/users/" + itoa(alice.ID)

	w := perform(router, path, aliceToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, path, bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = perform(router, path, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
