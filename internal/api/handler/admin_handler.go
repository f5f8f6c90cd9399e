package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
)

// AdminHandler serves the administrator surface: platform stats,
// provisioning, and filtered listings.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Platform statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.PlatformStats
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// AddUser handles POST /v1/admin/users. Unlike public signup it may assign
// any role and does not issue a token.
//
// @Summary      Provision a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/admin/users [post]
func (h *AdminHandler) AddUser(c echo.Context) error {
	var req addUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.AddUser(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// AddStore handles POST /v1/admin/stores.
//
// @Summary      Create a store
// @Description  owner_id, when given, must reference a user holding the owner role.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addStoreRequest  true  "Store details"
// @Success      201   {object}  ports.StoreListing
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/stores [post]
func (h *AdminHandler) AddStore(c echo.Context) error {
	var req addStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.service.AddStore(c.Request().Context(), ports.AddStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, listing)
}

// ListUsers handles GET /v1/admin/users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        name     query     string  false  "Filter by name (substring)"
// @Param        email    query     string  false  "Filter by email (substring)"
// @Param        address  query     string  false  "Filter by address (substring)"
// @Param        role     query     string  false  "Filter by role (exact)"
// @Param        sort_by  query     string  false  "Sort field: name, email, address, role, created_at"
// @Param        order    query     string  false  "asc (default) or desc"
// @Success      200      {object}  listUsersResponse
// @Failure      403      {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var q userListQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	users, err := h.service.ListUsers(c.Request().Context(), ports.UserFilter{
		Name:     q.Name,
		Email:    q.Email,
		Address:  q.Address,
		Role:     domain.Role(q.Role),
		SortBy:   q.SortBy,
		SortDesc: q.Order == "desc",
	})
	if err != nil {
		return err
	}
	if users == nil {
		users = []ports.UserListItem{}
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: users})
}

// ListStores handles GET /v1/admin/stores.
//
// @Summary      List stores
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        name     query     string  false  "Filter by name (substring)"
// @Param        email    query     string  false  "Filter by email (substring)"
// @Param        address  query     string  false  "Filter by address (substring)"
// @Param        sort_by  query     string  false  "Sort field: name, email, address, average_score, created_at"
// @Param        order    query     string  false  "asc (default) or desc"
// @Success      200      {object}  listStoresResponse
// @Failure      403      {object}  errorResponse
// @Router       /v1/admin/stores [get]
func (h *AdminHandler) ListStores(c echo.Context) error {
	var q storeListQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	stores, err := h.service.ListStores(c.Request().Context(), q.filter())
	if err != nil {
		return err
	}
	if stores == nil {
		stores = []ports.StoreListing{}
	}
	return c.JSON(http.StatusOK, listStoresResponse{Data: stores})
}

// UserDetail handles GET /v1/admin/users/:id.
//
// @Summary      User detail
// @Description  Owners additionally carry one aggregate per owned store.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  ports.UserDetail
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id} [get]
func (h *AdminHandler) UserDetail(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	detail, err := h.service.UserDetail(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}
