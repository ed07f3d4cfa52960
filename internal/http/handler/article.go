package handler

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/adevaproject/webapppro/internal/service"
)

var validate = validator.New()

// updateArticleRequest is the PUT body: the target slug plus the partial
// fields to apply.
type updateArticleRequest struct {
	Slug string `json:"slug" validate:"required"`
	service.UpdateArticleInput
}

// deleteArticleRequest is the DELETE body.
type deleteArticleRequest struct {
	Slug string `json:"slug" validate:"required"`
}

// ListArticles handles GET /api/articles.
//
// @Summary List published articles
// @Tags articles
// @Produce json
// @Param page query int false "page number (1-based)"
// @Param size query int false "page size"
// @Param category query string false "exact-match category filter"
// @Success 200 {object} listResponse
// @Router /api/articles [get]
func ListArticles(svc service.ArticleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := strconv.Atoi(c.Query("page", "1"))
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "invalid page")
		}
		size, err := strconv.Atoi(c.Query("size", "10"))
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "invalid size")
		}

		var category *string
		if v := c.Query("category"); v != "" {
			category = &v
		}

		res, err := svc.List(c.UserContext(), service.ListArticlesQuery{
			Page:     page,
			Size:     size,
			Category: category,
		})
		if err != nil {
			return translateServiceError(c, err)
		}

		return c.JSON(listResponse{
			Success:    true,
			Data:       res.Items,
			Pagination: res.Pagination,
		})
	}
}

// GetArticle handles GET /api/articles/:slug.
//
// @Summary Get a published article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "article slug"
// @Success 200 {object} response
// @Failure 404 {object} response
// @Router /api/articles/{slug} [get]
func GetArticle(svc service.ArticleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.Get(c.UserContext(), c.Params("slug"))
		if err != nil {
			return translateServiceError(c, err)
		}
		return c.JSON(response{Success: true, Data: a})
	}
}

// CreateArticle handles POST /api/admin/articles.
//
// @Summary Create an article
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param article body service.CreateArticleInput true "article fields"
// @Success 201 {object} mutationResponse
// @Failure 400 {object} response
// @Failure 409 {object} response
// @Router /api/admin/articles [post]
func CreateArticle(svc service.ArticleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateArticleInput
		if err := c.BodyParser(&in); err != nil {
			return fail(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(in); err != nil {
			return fail(c, fiber.StatusBadRequest, "slug, title and content are required")
		}

		a, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return translateServiceError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(mutationResponse{
			Success: true,
			Message: "article created",
			Slug:    a.Slug,
		})
	}
}

// UpdateArticle handles PUT /api/admin/articles.
//
// @Summary Partially update an article by slug
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param article body updateArticleRequest true "slug plus partial fields"
// @Success 200 {object} mutationResponse
// @Failure 400 {object} response
// @Failure 404 {object} response
// @Router /api/admin/articles [put]
func UpdateArticle(svc service.ArticleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateArticleRequest
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fail(c, fiber.StatusBadRequest, "slug is required")
		}

		if _, err := svc.Update(c.UserContext(), req.Slug, req.UpdateArticleInput); err != nil {
			return translateServiceError(c, err)
		}

		return c.JSON(mutationResponse{
			Success: true,
			Message: "article updated",
			Slug:    req.Slug,
		})
	}
}

// DeleteArticle handles DELETE /api/admin/articles.
//
// @Summary Delete an article by slug
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param article body deleteArticleRequest true "slug of the article to delete"
// @Success 200 {object} mutationResponse
// @Failure 404 {object} response
// @Router /api/admin/articles [delete]
func DeleteArticle(svc service.ArticleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req deleteArticleRequest
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fail(c, fiber.StatusBadRequest, "slug is required")
		}

		if err := svc.Delete(c.UserContext(), req.Slug); err != nil {
			return translateServiceError(c, err)
		}

		return c.JSON(mutationResponse{
			Success: true,
			Message: "article deleted",
			Slug:    req.Slug,
		})
	}
}
